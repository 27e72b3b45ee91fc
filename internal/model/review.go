// internal/model/review.go
package model

import "time"

// ReviewDateLayout は日次ログのキーに使う日付フォーマット
const ReviewDateLayout = "2006-01-02"

// DailyReviewLog は日付ごとの復習件数
type DailyReviewLog struct {
	Date      string    `gorm:"type:varchar(10);primaryKey" json:"date"`
	Count     int       `gorm:"not null;default:0" json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailyReviewLog) TableName() string {
	return "daily_review_logs"
}

// StatsResponse はダッシュボード用の集計
type StatsResponse struct {
	TotalCards   int64          `json:"total_cards"`
	CardsLearned int64          `json:"cards_learned"`
	DueToday     int64          `json:"due_today"`
	Heatmap      map[string]int `json:"heatmap"`
}
