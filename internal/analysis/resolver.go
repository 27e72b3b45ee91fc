// internal/analysis/resolver.go
package analysis

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"okura/internal/lexicon"
	"okura/internal/middleware"
	"okura/internal/model"
	"okura/internal/tokenizer"
)

// MaxGlosses は1トークンに付ける語義の上限
const MaxGlosses = 4

// Resolver はトークンを辞書と照合して注釈付きトークンにする
type Resolver interface {
	Resolve(ctx context.Context, tok tokenizer.Token) model.AnnotatedToken
}

// contentCategories は辞書を引く対象の品詞 (内容語)
var contentCategories = map[string]bool{
	"名詞":  true,
	"代名詞": true,
	"動詞":  true,
	"形容詞": true,
	"形状詞": true,
	"副詞":  true,
	"助動詞": true,
	"連体詞": true,
}

// FirstMatchResolver は候補の語形を順に辞書で引き、最初に見つかったエントリを採用する
type FirstMatchResolver struct {
	dict lexicon.Dictionary
}

func NewFirstMatchResolver(dict lexicon.Dictionary) *FirstMatchResolver {
	return &FirstMatchResolver{dict: dict}
}

func (r *FirstMatchResolver) Resolve(ctx context.Context, tok tokenizer.Token) model.AnnotatedToken {
	plain := model.AnnotatedToken{Text: tok.Surface}
	if !contentCategories[tok.Category] {
		return plain
	}

	candidates := candidateForms(tok)
	if len(candidates) == 0 {
		return plain
	}

	logger := middleware.GetLogger(ctx)
	for _, form := range candidates {
		res := r.dict.Lookup(ctx, form)
		if res.Err != nil {
			logger.DebugContext(ctx, "dictionary lookup failed", slog.String("form", form), slog.Any("error", res.Err))
			continue
		}
		if !res.Found() {
			continue
		}
		at := annotate(tok.Surface, candidates[0], tok.Category, res.Entry)
		at.Reading = chooseReading(res.Entry, tok.Reading)
		return at
	}
	return plain
}

// candidateForms は原形、正規化形、表層形の順で重複を除いた候補を返す
func candidateForms(tok tokenizer.Token) []string {
	seen := make(map[string]bool, 3)
	forms := make([]string, 0, 3)
	for _, f := range []string{tok.DictionaryForm, tok.NormalizedForm, tok.Surface} {
		t := strings.TrimSpace(f)
		if t == "" || t == "*" || seen[f] {
			continue
		}
		seen[f] = true
		forms = append(forms, f)
	}
	return forms
}

func annotate(surface, lemma, pos string, e *lexicon.Entry) model.AnnotatedToken {
	id := e.ID
	return model.AnnotatedToken{
		Text:    surface,
		IsWord:  true,
		Lemma:   lemma,
		Reading: e.PrimaryReading(),
		POS:     pos,
		EntSeq:  &id,
		Glosses: e.GlossLines(MaxGlosses),
		Level:   lexicon.Estimate(e),
	}
}

// chooseReading はエントリの読みのうち形態素解析の読みと一致するものを選ぶ。
// 一致しなければ先頭の読み、エントリに読みがなければ形態素解析の読みを使う
func chooseReading(e *lexicon.Entry, tokReading string) string {
	hira := toHiragana(tokReading)
	if hira != "" {
		for _, r := range e.Readings {
			if r.Text == hira {
				return r.Text
			}
		}
	}
	if reading := e.PrimaryReading(); reading != "" {
		return reading
	}
	return hira
}

// toHiragana はカタカナをひらがなに変える (辞書の読みはひらがな)
func toHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - ('ァ' - 'ぁ')
		}
		return r
	}, s)
}

// Transliterator は表記から読みを作る
type Transliterator interface {
	Transliterate(text string) string
}

// ExactMatchResolver は表層形をそのまま辞書で引く (中国語用)
type ExactMatchResolver struct {
	dict  lexicon.Dictionary
	trans Transliterator
}

func NewExactMatchResolver(dict lexicon.Dictionary, trans Transliterator) *ExactMatchResolver {
	return &ExactMatchResolver{dict: dict, trans: trans}
}

func (r *ExactMatchResolver) Resolve(ctx context.Context, tok tokenizer.Token) model.AnnotatedToken {
	plain := model.AnnotatedToken{Text: tok.Surface}
	if !hasLetter(tok.Surface) {
		return plain
	}

	res := r.dict.Lookup(ctx, tok.Surface)
	if res.Err != nil {
		middleware.GetLogger(ctx).DebugContext(ctx, "dictionary lookup failed", slog.String("form", tok.Surface), slog.Any("error", res.Err))
		return plain
	}
	if !res.Found() {
		return plain
	}

	at := annotate(tok.Surface, tok.Surface, tok.Category, res.Entry)
	if r.trans != nil {
		if reading := r.trans.Transliterate(tok.Surface); reading != "" {
			at.Reading = reading
		}
	}
	return at
}

// hasLetter は句読点や空白だけのトークンを除外するための判定
func hasLetter(s string) bool {
	for _, c := range s {
		if unicode.IsLetter(c) || unicode.IsNumber(c) {
			return true
		}
	}
	return false
}
