//go:generate mockery --name ReviewLogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"okura/internal/middleware"
	"okura/internal/model"
)

type ReviewLogRepository interface {
	// Increment は date の件数を1増やす。行がなければ件数1で作る
	Increment(ctx context.Context, db *gorm.DB, date string) error
	// FindSince は since 以降 (同日を含む) のログを日付順に返す
	FindSince(ctx context.Context, db *gorm.DB, since string) ([]*model.DailyReviewLog, error)
}

type gormReviewLogRepository struct{}

func NewGormReviewLogRepository() ReviewLogRepository {
	return &gormReviewLogRepository{}
}

func (r *gormReviewLogRepository) Increment(ctx context.Context, db *gorm.DB, date string) error {
	logger := middleware.GetLogger(ctx)
	entry := &model.DailyReviewLog{Date: date, Count: 1, UpdatedAt: time.Now()}

	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("daily_review_logs.count + ?", 1),
			"updated_at": entry.UpdatedAt,
		}),
	}).Create(entry)
	if result.Error != nil {
		logger.Error("Error incrementing review log in DB",
			"error", result.Error,
			"date", date,
		)
		return fmt.Errorf("gormReviewLogRepository.Increment: %w", result.Error)
	}
	return nil
}

func (r *gormReviewLogRepository) FindSince(ctx context.Context, db *gorm.DB, since string) ([]*model.DailyReviewLog, error) {
	logger := middleware.GetLogger(ctx)
	var logs []*model.DailyReviewLog
	result := db.WithContext(ctx).Where("date >= ?", since).Order("date ASC").Find(&logs)
	if result.Error != nil {
		logger.Error("Error finding review logs in DB",
			"error", result.Error,
			"since", since,
		)
		return nil, fmt.Errorf("gormReviewLogRepository.FindSince: %w", result.Error)
	}
	return logs, nil
}
