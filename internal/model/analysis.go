// internal/model/analysis.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AnnotatedToken は解析結果の1トークン。IsWord が false の場合は Text 以外を持たない
type AnnotatedToken struct {
	Text    string   `json:"text"`
	IsWord  bool     `json:"is_word"`
	Lemma   string   `json:"lemma,omitempty"`
	Reading string   `json:"reading,omitempty"`
	POS     string   `json:"pos,omitempty"`
	EntSeq  *int64   `json:"ent_seq,omitempty"`
	Glosses []string `json:"definitions,omitempty"`
	Level   int      `json:"jlpt,omitempty"`
}

// Document は行ごとに分割された解析結果
type Document struct {
	Lines   [][]AnnotatedToken `json:"lines"`
	RawText string             `json:"raw_text"`
}

// 解析リクエストDTO
type AnalyzeRequest struct {
	Text string `json:"text"` // 空文字でも1行として解析する
	Lang string `json:"lang,omitempty" validate:"omitempty,max=16"` // 未知の言語は既定の言語で解析する
}

// ファイル解析リクエストの multipart フィールド
type AnalyzeFileRequest struct {
	Lang string `json:"lang" validate:"omitempty,max=16"`
}

// SavedAnalysis は後で再解析するために保存したテキスト
type SavedAnalysis struct {
	AnalysisID uuid.UUID `gorm:"type:uuid;primaryKey" json:"analysis_id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Lang       string    `gorm:"type:varchar(8);not null;default:jp" json:"lang"`
	CreatedAt  time.Time `json:"created_at"`
}

func (SavedAnalysis) TableName() string {
	return "saved_analyses"
}

// 解析保存リクエストDTO
type SaveAnalysisRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
	Lang    string `json:"lang,omitempty" validate:"omitempty,oneof=jp zh"`
}
