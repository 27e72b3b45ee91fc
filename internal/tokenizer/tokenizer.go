// internal/tokenizer/tokenizer.go
package tokenizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Token は形態素解析の結果1つ分
type Token struct {
	Surface        string // 本文中の表記
	Category       string // 品詞の大分類 (名詞, 動詞 ...)
	DictionaryForm string // 原形。不明なら空
	NormalizedForm string // NFKC と全角半角の正規化をかけた表記
	Reading        string // 読み。不明なら空
}

// Tokenizer は1行のテキストを形態素の列に分割する
type Tokenizer interface {
	Tokenize(line string) []Token
}

// Normalize は全角英数や半角カナのゆれを吸収した表記を返す
func Normalize(s string) string {
	return width.Fold.String(norm.NFKC.String(s))
}

// unknown はフィールドが未定義かどうか (IPA辞書は "*" を使う)
func unknown(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "*"
}
