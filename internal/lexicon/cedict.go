// internal/lexicon/cedict.go
package lexicon

import (
	"bufio"
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"regexp"
	"strings"
)

// cedictLine は "繁體 简体 [pin1 yin1] /gloss/gloss/" 形式の1行
var cedictLine = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\[([^\]]*)\]\s+/(.*)/\s*$`)

// CEDICT は CC-CEDICT を読み込んだメモリ上の辞書。完全一致のみで引く
// 簡体字の見出しを優先し、繁体字は別の索引で引く
type CEDICT struct {
	bySimp map[string]*Entry
	byTrad map[string]*Entry
}

// ParseCEDICT は CC-CEDICT 形式のテキストを読み込む。
// 簡体字の見出しが同じ行だけ語義を1つのエントリにまとめる
func ParseCEDICT(r io.Reader) (*CEDICT, error) {
	d := &CEDICT{
		bySimp: make(map[string]*Entry),
		byTrad: make(map[string]*Entry),
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := cedictLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		trad, simp, pinyin, glosses := m[1], m[2], m[3], m[4]

		var sense Sense
		for _, g := range strings.Split(glosses, "/") {
			if g = strings.TrimSpace(g); g != "" {
				sense.Glosses = append(sense.Glosses, g)
			}
		}
		if len(sense.Glosses) == 0 {
			continue
		}

		e, ok := d.bySimp[simp]
		if !ok {
			e = &Entry{
				ID:       headwordID(simp),
				Kanji:    []Form{{Text: simp}},
				Readings: []Form{{Text: pinyin}},
			}
			d.bySimp[simp] = e
		}
		if trad != simp && !hasForm(e.Kanji, trad) {
			e.Kanji = append(e.Kanji, Form{Text: trad})
		}
		e.Senses = append(e.Senses, sense)
		if _, exists := d.byTrad[trad]; !exists {
			d.byTrad[trad] = e
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read CEDICT: %w", err)
	}
	return d, nil
}

// Lookup は簡体字の見出しを先に引き、なければ繁体字で引く
func (d *CEDICT) Lookup(_ context.Context, form string) Result {
	if e, ok := d.bySimp[form]; ok {
		return Hit(e)
	}
	if e, ok := d.byTrad[form]; ok {
		return Hit(e)
	}
	return Miss()
}

// Len は引ける語形の数 (繁体字・簡体字を別に数える)
func (d *CEDICT) Len() int {
	n := len(d.bySimp)
	for form := range d.byTrad {
		if _, ok := d.bySimp[form]; !ok {
			n++
		}
	}
	return n
}

func hasForm(forms []Form, text string) bool {
	for _, f := range forms {
		if f.Text == text {
			return true
		}
	}
	return false
}

// headwordID は CC-CEDICT に番号がないため見出し語から安定したIDを作る
func headwordID(headword string) int64 {
	h := fnv.New64a()
	h.Write([]byte(headword))
	return int64(h.Sum64() >> 1)
}
