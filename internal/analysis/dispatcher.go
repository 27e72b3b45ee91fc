// internal/analysis/dispatcher.go
package analysis

import (
	"context"

	"okura/internal/model"
)

// Annotator は Pipeline が満たすインターフェース
type Annotator interface {
	Annotate(ctx context.Context, raw string) model.Document
}

// Dispatcher は言語タグに応じてパイプラインを選ぶ
type Dispatcher struct {
	pipelines   map[string]Annotator
	defaultLang string
}

// NewDispatcher は言語タグとパイプラインの対応から Dispatcher を作る。
// 未知のタグや空のタグは defaultLang のパイプラインで解析する。
// defaultLang のパイプラインがなければ日本語を既定にする
func NewDispatcher(defaultLang string, pipelines map[string]Annotator) *Dispatcher {
	if _, ok := pipelines[defaultLang]; !ok {
		defaultLang = model.LangJapanese
	}
	return &Dispatcher{pipelines: pipelines, defaultLang: defaultLang}
}

// Analyze は lang のパイプラインで text を解析する。
// 使えるパイプラインが1つもなければ辞書を引かずに行だけ分ける
func (d *Dispatcher) Analyze(ctx context.Context, text, lang string) model.Document {
	p, ok := d.pipelines[lang]
	if !ok {
		p, ok = d.pipelines[d.defaultLang]
	}
	if !ok {
		return plainDocument(text)
	}
	return p.Annotate(ctx, text)
}

// DefaultLang は未知のタグを解析するときに使う言語
func (d *Dispatcher) DefaultLang() string {
	return d.defaultLang
}

// Supports は lang 用のパイプラインが登録されているか
func (d *Dispatcher) Supports(lang string) bool {
	_, ok := d.pipelines[lang]
	return ok
}
