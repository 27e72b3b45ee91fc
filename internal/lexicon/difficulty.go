// internal/lexicon/difficulty.go
package lexicon

import (
	"regexp"
	"strconv"
)

// レベルは JLPT の N 番号と同じ向き (数字が大きいほど易しい・よく使われる)
const (
	LevelRare   = 1
	LevelCommon = 5
)

// commonMarkers は JMdict の最上位頻度マーカー
var commonMarkers = map[string]bool{
	"news1": true,
	"ichi1": true,
	"spec1": true,
	"gai1":  true,
}

var levelTagPattern = regexp.MustCompile(`(?i)^jlpt[-_ ]?n?([1-5])$`)

// Estimate はエントリの難易度レベルを返す。
// 1. jlpt タグがあればその数字
// 2. 表記か読みに最上位の頻度マーカーがあれば LevelCommon
// 3. それ以外は LevelRare
func Estimate(e *Entry) int {
	if e == nil {
		return LevelRare
	}
	for _, tag := range e.Tags {
		if m := levelTagPattern.FindStringSubmatch(tag); m != nil {
			level, _ := strconv.Atoi(m[1])
			return level
		}
	}
	if hasCommonMarker(e.Kanji) || hasCommonMarker(e.Readings) {
		return LevelCommon
	}
	return LevelRare
}

func hasCommonMarker(forms []Form) bool {
	for _, f := range forms {
		for _, p := range f.Priority {
			if commonMarkers[p] {
				return true
			}
		}
	}
	return false
}
