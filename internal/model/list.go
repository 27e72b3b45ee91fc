// internal/model/list.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// 対応言語
const (
	LangJapanese = "jp"
	LangChinese  = "zh"
)

// VocabList は単語カードをまとめる学習リスト
type VocabList struct {
	ListID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"list_id"`
	Title       string    `gorm:"not null;uniqueIndex" json:"title"`
	Description *string   `json:"description,omitempty"`
	Lang        string    `gorm:"type:varchar(8);not null;default:jp" json:"lang"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 関連 (Preload用)。リスト削除時はカードも削除する
	Cards []*Card `gorm:"foreignKey:ListID;references:ListID;constraint:OnDelete:CASCADE" json:"cards,omitempty"`
}

func (VocabList) TableName() string {
	return "vocab_lists"
}

// リスト作成リクエストDTO
type CreateListRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Lang        string  `json:"lang,omitempty" validate:"omitempty,oneof=jp zh"`
}
