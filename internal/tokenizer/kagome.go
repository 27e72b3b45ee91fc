// internal/tokenizer/kagome.go
package tokenizer

import (
	"fmt"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"
)

// Kagome は kagome による日本語の形態素解析器
type Kagome struct {
	t *kagome.Tokenizer
}

// NewKagome は IPA 辞書で解析器を作る
func NewKagome() (*Kagome, error) {
	return NewKagomeWithDict(ipa.Dict())
}

// NewKagomeWithDict は指定の辞書で解析器を作る
func NewKagomeWithDict(d *dict.Dict) (*Kagome, error) {
	t, err := kagome.New(d, kagome.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create kagome tokenizer: %w", err)
	}
	return &Kagome{t: t}, nil
}

func (k *Kagome) Tokenize(line string) []Token {
	raw := k.t.Tokenize(line)
	tokens := make([]Token, 0, len(raw))
	for _, r := range raw {
		tok := Token{
			Surface:        r.Surface,
			NormalizedForm: Normalize(r.Surface),
		}
		if pos := r.POS(); len(pos) > 0 && !unknown(pos[0]) {
			tok.Category = pos[0]
		}
		if base, ok := r.BaseForm(); ok && !unknown(base) {
			tok.DictionaryForm = base
		}
		if reading, ok := r.Reading(); ok && !unknown(reading) {
			tok.Reading = reading
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
