// internal/lexicon/jmdict_import.go
package lexicon

import (
	"bufio"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const importBatchSize = 1000

type jmdictEntry struct {
	Seq   int64 `xml:"ent_seq"`
	Kanji []struct {
		Text     string   `xml:"keb"`
		Priority []string `xml:"ke_pri"`
	} `xml:"k_ele"`
	Readings []struct {
		Text     string   `xml:"reb"`
		Priority []string `xml:"re_pri"`
	} `xml:"r_ele"`
	Senses []struct {
		POS     []string `xml:"pos"`
		Glosses []struct {
			Text string `xml:",chardata"`
			Lang string `xml:"http://www.w3.org/XML/1998/namespace lang,attr"`
		} `xml:"gloss"`
	} `xml:"sense"`
}

func (j *jmdictEntry) toEntry() *Entry {
	e := &Entry{ID: j.Seq}
	for _, k := range j.Kanji {
		e.Kanji = append(e.Kanji, Form{Text: k.Text, Priority: k.Priority})
	}
	for _, r := range j.Readings {
		e.Readings = append(e.Readings, Form{Text: r.Text, Priority: r.Priority})
	}
	for _, s := range j.Senses {
		var sense Sense
		for _, g := range s.Glosses {
			// 英語以外の訳語は取り込まない
			if g.Lang != "" && g.Lang != "eng" {
				continue
			}
			if text := strings.TrimSpace(g.Text); text != "" {
				sense.Glosses = append(sense.Glosses, text)
			}
		}
		for _, p := range s.POS {
			sense.POS = append(sense.POS, strings.Trim(strings.TrimSpace(p), "&;"))
		}
		if len(sense.Glosses) > 0 {
			e.Senses = append(e.Senses, sense)
		}
	}
	return e
}

// ImportJMdict は JMdict XML をストリームで読み、辞書に取り込む。取り込んだ件数を返す
func (d *SQLiteDictionary) ImportJMdict(ctx context.Context, r io.Reader, logger *slog.Logger) (int, error) {
	dec := xml.NewDecoder(bufio.NewReader(r))
	// JMdict は DTD 内で独自エンティティ (&n; など) を宣言している
	dec.Strict = false

	batch := make([]*Entry, 0, importBatchSize)
	total := 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := d.InsertEntries(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		logger.Debug("imported JMdict batch", slog.Int("total", total))
		batch = batch[:0]
		return nil
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("failed to read JMdict token: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "entry" {
			continue
		}

		var raw jmdictEntry
		if err := dec.DecodeElement(&raw, &start); err != nil {
			return total, fmt.Errorf("failed to decode JMdict entry: %w", err)
		}
		if raw.Seq == 0 {
			logger.Warn("skipping JMdict entry without ent_seq")
			continue
		}
		batch = append(batch, raw.toEntry())
		if len(batch) >= importBatchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}

	logger.Info("JMdict import finished", slog.Int("entries", total))
	return total, nil
}

// ImportTags は "語形<TAB>タグ" 形式の行を読み、一致するエントリにタグを付ける。
// タグ付けしたエントリの延べ数を返す
func (d *SQLiteDictionary) ImportTags(ctx context.Context, r io.Reader, logger *slog.Logger) (int, error) {
	scanner := bufio.NewScanner(r)
	tagged := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		form, tag, ok := strings.Cut(line, "\t")
		form, tag = strings.TrimSpace(form), strings.TrimSpace(tag)
		if !ok || form == "" || tag == "" {
			logger.Warn("skipping malformed tag line", slog.Int("line", lineNo))
			continue
		}
		n, err := d.TagForm(ctx, form, tag)
		if err != nil {
			return tagged, err
		}
		if n == 0 {
			logger.Debug("no entry for tagged form", slog.String("form", form))
		}
		tagged += n
	}
	if err := scanner.Err(); err != nil {
		return tagged, fmt.Errorf("failed to read tag file: %w", err)
	}
	return tagged, nil
}
