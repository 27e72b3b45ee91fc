// internal/model/card.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultEaseFactor は新規カードの初期 ease factor
	DefaultEaseFactor = 2.5
	// GlossSeparator は definitions カラムに保存する際の区切り文字
	GlossSeparator = " | "
)

// Card は学習リストに属する単語カード
type Card struct {
	CardID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"card_id"`
	ListID      uuid.UUID `gorm:"type:uuid;not null;index" json:"list_id"`
	Term        string    `gorm:"not null" json:"term"` // 辞書形
	Reading     *string   `json:"reading,omitempty"`
	POS         *string   `gorm:"column:pos" json:"pos,omitempty"`
	EntSeq      *int64    `gorm:"index" json:"ent_seq,omitempty"` // 辞書エントリのID (JMdict ent_seq など)
	Definitions string    `json:"definitions"`                    // GlossSeparator で連結
	Context     *string   `json:"context,omitempty"`              // 出典の文

	Streak       int       `gorm:"not null;default:0" json:"streak"`
	IntervalDays int       `gorm:"not null;default:0" json:"interval_days"`
	EaseFactor   float64   `gorm:"not null;default:2.5" json:"ease_factor"`
	NextReview   time.Time `gorm:"not null;index" json:"next_review"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Card) TableName() string {
	return "cards"
}

// JoinGlosses は definitions カラム用に語義を連結する
func JoinGlosses(glosses []string) string {
	kept := make([]string, 0, len(glosses))
	for _, g := range glosses {
		if g = strings.TrimSpace(g); g != "" {
			kept = append(kept, g)
		}
	}
	return strings.Join(kept, GlossSeparator)
}

// カード作成リクエストDTO
type CreateCardRequest struct {
	Term        string   `json:"term" validate:"required"`
	Reading     *string  `json:"reading,omitempty"`
	POS         *string  `json:"pos,omitempty"`
	EntSeq      *int64   `json:"ent_seq,omitempty"`
	Definitions []string `json:"definitions,omitempty"`
	Context     *string  `json:"context,omitempty"`
}

// 一括追加リクエストDTO
type BulkAddCardsRequest struct {
	Cards []CreateCardRequest `json:"cards" validate:"required,min=1"`
}

// BulkAddResult は一括追加の結果件数
type BulkAddResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Errored int `json:"errored"`
}

// 復習結果送信リクエストDTO
type ReviewRequest struct {
	Quality *int `json:"quality" validate:"required"` // 範囲はサービスで検証する
}
