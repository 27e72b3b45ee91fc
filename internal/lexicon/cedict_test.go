package lexicon

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCEDICT = `# CC-CEDICT
#! version=1
中國 中国 [Zhong1 guo2] /China/Middle Kingdom/
學習 学习 [xue2 xi2] /to learn/to study/
學習 学习 [xue2 xi2] /learning/
你好 你好 [ni3 hao3] /hello/hi/
broken line without brackets
`

func TestParseCEDICT(t *testing.T) {
	d, err := ParseCEDICT(strings.NewReader(sampleCEDICT))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("正常系: 簡体字で引ける", func(t *testing.T) {
		res := d.Lookup(ctx, "中国")
		require.True(t, res.Found())
		assert.Equal(t, "Zhong1 guo2", res.Entry.PrimaryReading())
		assert.Equal(t, []string{"China; Middle Kingdom"}, res.Entry.GlossLines(4))
	})

	t.Run("正常系: 繁体字でも同じエントリ", func(t *testing.T) {
		trad := d.Lookup(ctx, "中國")
		simp := d.Lookup(ctx, "中国")
		require.True(t, trad.Found())
		assert.Same(t, simp.Entry, trad.Entry)
	})

	t.Run("正常系: 同じ見出し語の語義はまとめる", func(t *testing.T) {
		res := d.Lookup(ctx, "学习")
		require.True(t, res.Found())
		assert.Equal(t, []string{"to learn; to study", "learning"}, res.Entry.GlossLines(4))
	})

	t.Run("正常系: IDは見出し語から安定して決まる", func(t *testing.T) {
		again, err := ParseCEDICT(strings.NewReader(sampleCEDICT))
		require.NoError(t, err)
		assert.Equal(t, d.Lookup(ctx, "你好").Entry.ID, again.Lookup(ctx, "你好").Entry.ID)
		assert.Positive(t, d.Lookup(ctx, "你好").Entry.ID)
	})

	t.Run("異常系: 部分一致はしない", func(t *testing.T) {
		assert.False(t, d.Lookup(ctx, "中").Found())
	})

	// 中国/中國, 学习/學習, 你好
	assert.Equal(t, 5, d.Len())
}

func TestParseCEDICT_TraditionalCollidesWithSimplified(t *testing.T) {
	const input = "乾 干 [gan1] /dry/\n乾 乾 [qian2] /one of the Eight Trigrams/\n"
	d, err := ParseCEDICT(strings.NewReader(input))
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name        string
		form        string
		wantReading string
		wantGlosses []string
	}{
		{name: "正常系: 簡体字の見出しが繁体字より優先される", form: "乾", wantReading: "qian2", wantGlosses: []string{"one of the Eight Trigrams"}},
		{name: "正常系: 別の語の語義は混ざらない", form: "干", wantReading: "gan1", wantGlosses: []string{"dry"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Lookup(ctx, tt.form)
			require.True(t, res.Found())
			assert.Equal(t, tt.wantReading, res.Entry.PrimaryReading())
			assert.Equal(t, tt.wantGlosses, res.Entry.GlossLines(4))
		})
	}

	t.Run("正常系: 2語は別のIDになる", func(t *testing.T) {
		assert.NotEqual(t, d.Lookup(ctx, "乾").Entry.ID, d.Lookup(ctx, "干").Entry.ID)
	})
	assert.Equal(t, 2, d.Len())
}
