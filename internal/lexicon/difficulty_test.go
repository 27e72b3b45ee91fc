package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name  string
		entry *Entry
		want  int
	}{
		{
			name:  "jlptタグが最優先",
			entry: &Entry{Tags: []string{"jlpt-n3"}, Kanji: []Form{{Text: "勉強", Priority: []string{"ichi1"}}}},
			want:  3,
		},
		{
			name:  "jlptタグの表記ゆれ",
			entry: &Entry{Tags: []string{"uk", "JLPT_N2"}},
			want:  2,
		},
		{
			name:  "最も易しい: 表記に news1",
			entry: &Entry{Kanji: []Form{{Text: "日本", Priority: []string{"news1", "nf01"}}}},
			want:  LevelCommon,
		},
		{
			name:  "読みの頻度マーカーも見る",
			entry: &Entry{Readings: []Form{{Text: "これ", Priority: []string{"ichi1"}}}},
			want:  LevelCommon,
		},
		{
			name:  "最も難しい: マーカーなし",
			entry: &Entry{Kanji: []Form{{Text: "鬱陶しい"}}, Readings: []Form{{Text: "うっとうしい"}}},
			want:  LevelRare,
		},
		{
			name:  "下位マーカーは共通語扱いしない",
			entry: &Entry{Kanji: []Form{{Text: "語", Priority: []string{"news2", "ichi2", "nf30"}}}},
			want:  LevelRare,
		},
		{
			name:  "範囲外のjlpt番号は無視",
			entry: &Entry{Tags: []string{"jlpt-n7"}},
			want:  LevelRare,
		},
		{
			name:  "nil",
			entry: nil,
			want:  LevelRare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.entry))
		})
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	e := &Entry{Kanji: []Form{{Text: "食べる", Priority: []string{"ichi1"}}}}
	first := Estimate(e)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Estimate(e))
	}
}

func TestEntryGlossLines(t *testing.T) {
	e := &Entry{Senses: []Sense{
		{Glosses: []string{"to eat"}},
		{Glosses: []string{}},
		{Glosses: []string{"to live on", "to subsist on"}},
		{Glosses: []string{"a"}},
		{Glosses: []string{"b"}},
		{Glosses: []string{"c"}},
	}}

	assert.Equal(t, []string{"to eat", "to live on; to subsist on", "a", "b"}, e.GlossLines(4))
	assert.Empty(t, (&Entry{}).GlossLines(4))
}
