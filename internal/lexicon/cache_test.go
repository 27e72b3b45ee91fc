package lexicon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedDictionary(t *testing.T) {
	ctx := context.Background()
	calls := map[string]int{}
	fail := true
	next := DictionaryFunc(func(_ context.Context, form string) Result {
		calls[form]++
		switch form {
		case "猫":
			return Hit(&Entry{ID: 1})
		case "壊":
			if fail {
				return Failed(errors.New("disk error"))
			}
			return Hit(&Entry{ID: 2})
		default:
			return Miss()
		}
	})

	c, err := NewCachedDictionary(next, 8)
	require.NoError(t, err)

	t.Run("正常系: ヒットはキャッシュされる", func(t *testing.T) {
		assert.True(t, c.Lookup(ctx, "猫").Found())
		assert.True(t, c.Lookup(ctx, "猫").Found())
		assert.Equal(t, 1, calls["猫"])
	})

	t.Run("正常系: ミスもキャッシュされる", func(t *testing.T) {
		assert.False(t, c.Lookup(ctx, "犬").Found())
		assert.False(t, c.Lookup(ctx, "犬").Found())
		assert.Equal(t, 1, calls["犬"])
	})

	t.Run("異常系: エラーはキャッシュされない", func(t *testing.T) {
		assert.Error(t, c.Lookup(ctx, "壊").Err)
		fail = false
		res := c.Lookup(ctx, "壊")
		assert.True(t, res.Found())
		assert.Equal(t, 2, calls["壊"])
	})

	t.Run("正常系: 上限を超えると古いものから追い出される", func(t *testing.T) {
		small, err := NewCachedDictionary(next, 1)
		require.NoError(t, err)
		small.Lookup(ctx, "鳥")
		small.Lookup(ctx, "魚")
		small.Lookup(ctx, "鳥")
		assert.Equal(t, 2, calls["鳥"])
		assert.Equal(t, 1, calls["魚"])
	})
}

func TestNewCachedDictionary_InvalidSize(t *testing.T) {
	_, err := NewCachedDictionary(DictionaryFunc(func(context.Context, string) Result { return Miss() }), 0)
	assert.Error(t, err)
}
