// internal/lexicon/entry.go
package lexicon

import (
	"context"
	"strings"
)

// Form は表記または読みと、その頻度マーカー (news1, ichi1 など)
type Form struct {
	Text     string
	Priority []string
}

// Sense は1つの語義グループ
type Sense struct {
	Glosses []string
	POS     []string
}

// Entry は辞書の1エントリ。参照専用
type Entry struct {
	ID       int64
	Kanji    []Form
	Readings []Form
	Senses   []Sense
	Tags     []string // jlpt-n3 などのメタデータ
}

// PrimaryReading は先頭の読みを返す
func (e *Entry) PrimaryReading() string {
	if len(e.Readings) == 0 {
		return ""
	}
	return e.Readings[0].Text
}

// GlossLines は語義グループごとに1行へまとめた語義を最大 limit 件返す
func (e *Entry) GlossLines(limit int) []string {
	lines := make([]string, 0, limit)
	for _, s := range e.Senses {
		if len(lines) >= limit {
			break
		}
		if len(s.Glosses) == 0 {
			continue
		}
		lines = append(lines, strings.Join(s.Glosses, "; "))
	}
	return lines
}

// Result は辞書検索の結果。見つからない場合や検索に失敗した場合は Found() が false
type Result struct {
	Entry *Entry
	Err   error
}

// Found はエントリが見つかったかどうか
func (r Result) Found() bool {
	return r.Err == nil && r.Entry != nil
}

// Hit は見つかった結果を作る
func Hit(e *Entry) Result { return Result{Entry: e} }

// Miss は見つからなかった結果を作る
func Miss() Result { return Result{} }

// Failed は検索自体が失敗した結果を作る
func Failed(err error) Result { return Result{Err: err} }

// Dictionary は語形から辞書エントリを引く
type Dictionary interface {
	Lookup(ctx context.Context, form string) Result
}

// DictionaryFunc は関数を Dictionary として扱うためのアダプタ
type DictionaryFunc func(ctx context.Context, form string) Result

func (f DictionaryFunc) Lookup(ctx context.Context, form string) Result {
	return f(ctx, form)
}
