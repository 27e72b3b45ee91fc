// internal/extract/extract.go
package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"okura/internal/model"
)

// Format はアップロードされたファイルの種類
type Format string

const (
	FormatPlain Format = "plain"
	FormatHTML  Format = "html"
	FormatEPUB  Format = "epub"
)

// ErrUnsupportedFormat は対応していない拡張子の場合のエラー
var ErrUnsupportedFormat = fmt.Errorf("%w: unsupported file format", model.ErrInvalidInput)

// FormatFromFilename は拡張子からファイルの種類を判定する
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".text", "":
		return FormatPlain, nil
	case ".html", ".htm", ".xhtml":
		return FormatHTML, nil
	case ".epub":
		return FormatEPUB, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Text はファイルの中身から本文を取り出す
func Text(filename string, data []byte) (string, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatHTML:
		text, err = HTML(data)
	case FormatEPUB:
		text, err = EPUB(data)
	default:
		text, err = Plain(data)
	}
	if err != nil {
		return "", err
	}
	return tidy(StripRubyNotation(text)), nil
}

// Plain はテキストファイルを UTF-8 として読む
func Plain(data []byte) (string, error) {
	s := strings.TrimPrefix(string(data), "\uFEFF")
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", model.ErrInvalidInput)
	}
	return strings.ReplaceAll(s, "\r\n", "\n"), nil
}

var (
	// ｜漢字《かんじ》 の形式 (青空文庫など)
	rubyWithBar = regexp.MustCompile(`[｜|]([^｜|《》\n]+)《[^》\n]*》`)
	rubyBare    = regexp.MustCompile(`《[^》\n]*》`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// StripRubyNotation はテキスト中のルビ記法を取り除き、親文字だけを残す
func StripRubyNotation(s string) string {
	s = rubyWithBar.ReplaceAllString(s, "$1")
	return rubyBare.ReplaceAllString(s, "")
}

// tidy は行末の空白を削り、3行以上続く空行を1行にまとめる
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r　")
	}
	s = strings.Join(lines, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.Trim(s, "\n")
}
