// internal/tokenizer/gse.go
package tokenizer

import (
	"fmt"

	"github.com/go-ego/gse"
)

// Gse は gse による中国語の分かち書き
type Gse struct {
	seg *gse.Segmenter
}

// NewGse は組み込みの辞書で分かち書き器を作る。files を渡すとその辞書を読む
func NewGse(files ...string) (*Gse, error) {
	seg, err := gse.New(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to load gse dictionary: %w", err)
	}
	return &Gse{seg: &seg}, nil
}

func (g *Gse) Tokenize(line string) []Token {
	segs := g.seg.Pos(line)
	tokens := make([]Token, 0, len(segs))
	for _, s := range segs {
		tokens = append(tokens, Token{
			Surface:        s.Text,
			Category:       s.Pos,
			DictionaryForm: s.Text,
			NormalizedForm: Normalize(s.Text),
		})
	}
	return tokens
}
