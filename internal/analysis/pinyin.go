// internal/analysis/pinyin.go
package analysis

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// PinyinTransliterator は漢字を声調記号付きのピンインにする
type PinyinTransliterator struct {
	args pinyin.Args
}

func NewPinyinTransliterator() *PinyinTransliterator {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone
	return &PinyinTransliterator{args: args}
}

func (p *PinyinTransliterator) Transliterate(text string) string {
	syllables := pinyin.LazyPinyin(text, p.args)
	return strings.Join(syllables, " ")
}
