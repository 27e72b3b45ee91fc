// internal/srs/sm2_test.go
package srs

import (
	"testing"
	"time"

	"okura/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	now := time.Date(2025, 6, 4, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		current      State
		quality      int
		wantStreak   int
		wantInterval int
		wantEase     float64
	}{
		{
			name:         "正常系: 新規カードに正解 -> interval 1",
			current:      State{Streak: 0, IntervalDays: 0, EaseFactor: 2.5},
			quality:      4,
			wantStreak:   1,
			wantInterval: 1,
			wantEase:     2.5,
		},
		{
			name:         "正常系: streak 1 で正解 -> interval 6",
			current:      State{Streak: 1, IntervalDays: 1, EaseFactor: 2.5},
			quality:      5,
			wantStreak:   2,
			wantInterval: 6,
			wantEase:     2.6,
		},
		{
			name:         "正常系: streak 2 以上は interval × ease (切り捨て)",
			current:      State{Streak: 2, IntervalDays: 6, EaseFactor: 2.3},
			quality:      4,
			wantStreak:   3,
			wantInterval: 13,
			wantEase:     2.3,
		},
		{
			name:         "正常系: quality 3 は ease が下がる",
			current:      State{Streak: 3, IntervalDays: 10, EaseFactor: 2.5},
			quality:      3,
			wantStreak:   4,
			wantInterval: 25,
			wantEase:     2.36,
		},
		{
			name:         "異常系: 不正解で streak と interval がリセット",
			current:      State{Streak: 0, IntervalDays: 0, EaseFactor: 2.5},
			quality:      2,
			wantStreak:   0,
			wantInterval: 0,
			wantEase:     2.5,
		},
		{
			name:         "異常系: 長い streak でも quality 0 ならリセット",
			current:      State{Streak: 7, IntervalDays: 120, EaseFactor: 2.8},
			quality:      0,
			wantStreak:   0,
			wantInterval: 0,
			wantEase:     2.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Schedule(tt.current, tt.quality, now)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStreak, got.Streak)
			assert.Equal(t, tt.wantInterval, got.IntervalDays)
			assert.InDelta(t, tt.wantEase, got.EaseFactor, 1e-9)
			assert.Equal(t, now.AddDate(0, 0, tt.wantInterval), got.NextReview)
		})
	}
}

func TestSchedule_FailureIsDueImmediately(t *testing.T) {
	now := time.Now()
	got, err := Schedule(State{Streak: 4, IntervalDays: 30, EaseFactor: 2.1}, 1, now)
	require.NoError(t, err)
	assert.True(t, got.NextReview.Equal(now), "不正解のカードは即時に復習対象になる")
}

func TestSchedule_EaseFactorLowerBound(t *testing.T) {
	now := time.Now()
	state := State{Streak: 2, IntervalDays: 6, EaseFactor: 1.3}

	// quality 3 を繰り返しても 1.3 を下回らない
	for i := 0; i < 20; i++ {
		next, err := Schedule(state, 3, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, next.EaseFactor, MinEaseFactor)
		state = next
	}

	// 全ての評価について下限を確認
	for q := MinQuality; q <= MaxQuality; q++ {
		next, err := Schedule(State{Streak: 5, IntervalDays: 40, EaseFactor: MinEaseFactor}, q, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, next.EaseFactor, MinEaseFactor, "quality=%d", q)
		assert.GreaterOrEqual(t, next.IntervalDays, 0)
	}
}

func TestSchedule_InvalidRating(t *testing.T) {
	current := State{Streak: 1, IntervalDays: 1, EaseFactor: 2.5}
	for _, q := range []int{-1, 6, 42} {
		got, err := Schedule(current, q, time.Now())
		assert.ErrorIs(t, err, model.ErrInvalidRating, "quality=%d", q)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Equal(t, current, got)
	}
}

func TestStateApply(t *testing.T) {
	card := &model.Card{Streak: 1, IntervalDays: 1, EaseFactor: 2.5}
	now := time.Now()

	next, err := Schedule(StateOf(card), 5, now)
	require.NoError(t, err)
	next.Apply(card)

	assert.Equal(t, 2, card.Streak)
	assert.Equal(t, 6, card.IntervalDays)
	assert.InDelta(t, 2.6, card.EaseFactor, 1e-9)
	assert.Equal(t, now.AddDate(0, 0, 6), card.NextReview)
}
