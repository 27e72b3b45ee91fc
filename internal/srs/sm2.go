// internal/srs/sm2.go
package srs

import (
	"math"
	"time"

	"okura/internal/model"
)

const (
	// MinEaseFactor は ease factor の下限
	MinEaseFactor = 1.3
	// PassingQuality 以上の評価を正解として扱う
	PassingQuality = 3

	MinQuality = 0
	MaxQuality = 5
)

// State はカードの復習状態
type State struct {
	Streak       int
	IntervalDays int
	EaseFactor   float64
	NextReview   time.Time
}

// StateOf はカードから復習状態を取り出す
func StateOf(card *model.Card) State {
	return State{
		Streak:       card.Streak,
		IntervalDays: card.IntervalDays,
		EaseFactor:   card.EaseFactor,
		NextReview:   card.NextReview,
	}
}

// Apply は計算した状態をカードに書き戻す
func (s State) Apply(card *model.Card) {
	card.Streak = s.Streak
	card.IntervalDays = s.IntervalDays
	card.EaseFactor = s.EaseFactor
	card.NextReview = s.NextReview
}

// ValidateQuality は評価が 0〜5 の範囲にあるか確認する
func ValidateQuality(quality int) error {
	if quality < MinQuality || quality > MaxQuality {
		return model.ErrInvalidRating
	}
	return nil
}

// Schedule は SM-2 をベースに次の復習状態を計算する。
// 不正解 (quality < 3) の場合は interval を 0 にし、カードはすぐに再出題対象になる。
func Schedule(current State, quality int, now time.Time) (State, error) {
	if err := ValidateQuality(quality); err != nil {
		return current, err
	}

	next := current
	if next.EaseFactor < MinEaseFactor {
		next.EaseFactor = MinEaseFactor
	}

	if quality < PassingQuality {
		next.Streak = 0
		next.IntervalDays = 0
	} else {
		switch next.Streak {
		case 0:
			next.IntervalDays = 1
		case 1:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Floor(float64(current.IntervalDays) * next.EaseFactor))
		}
		next.Streak++
		next.EaseFactor = nextEaseFactor(next.EaseFactor, quality)
	}

	if next.IntervalDays < 0 {
		next.IntervalDays = 0
	}
	next.NextReview = now.AddDate(0, 0, next.IntervalDays)
	return next, nil
}

func nextEaseFactor(ease float64, quality int) float64 {
	miss := float64(MaxQuality - quality)
	return math.Max(MinEaseFactor, ease+(0.1-miss*(0.08+miss*0.02)))
}
