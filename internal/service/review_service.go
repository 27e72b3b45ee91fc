// internal/service/review_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"okura/internal/config"
	"okura/internal/middleware"
	"okura/internal/model"
	"okura/internal/repository"
	"okura/internal/srs"
)

type ReviewService interface {
	ReviewCard(ctx context.Context, cardID uuid.UUID, quality int) (*model.Card, error)
	DueCards(ctx context.Context, limit int, listID *uuid.UUID) ([]*model.Card, error)
	Stats(ctx context.Context) (*model.StatsResponse, error)
}

type reviewService struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
	logRepo  repository.ReviewLogRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewReviewService(db *gorm.DB, cardRepo repository.CardRepository, logRepo repository.ReviewLogRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:       db,
		cardRepo: cardRepo,
		logRepo:  logRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// ReviewCard は評価をもとにカードの次回復習日を計算して保存し、当日の復習件数を1増やす。
// カードの更新と件数の加算は同じトランザクションで行う
func (s *reviewService) ReviewCard(ctx context.Context, cardID uuid.UUID, quality int) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("card_id", cardID, "quality", quality)

	if err := srs.ValidateQuality(quality); err != nil {
		logger.Warn("Rejected review with out-of-range quality")
		return nil, model.NewAppError("INVALID_RATING", "評価(quality)は0から5の整数で指定してください。", "quality", err)
	}

	now := s.now()
	var reviewed *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, cardID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "カードが見つかりません。", "card_id", err)
			}
			logger.Error("Failed to find card for review", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの取得に失敗しました。", "", err)
		}

		next, err := srs.Schedule(srs.StateOf(card), quality, now)
		if err != nil {
			return model.NewAppError("INVALID_RATING", "評価(quality)は0から5の整数で指定してください。", "quality", err)
		}
		next.Apply(card)

		if err := s.cardRepo.Update(ctx, tx, card); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Card disappeared during review", "error", err)
				return model.NewAppError("NOT_FOUND", "カードが見つかりません。", "card_id", err)
			}
			logger.Error("Failed to update card schedule", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習結果の保存に失敗しました。", "", err)
		}

		if err := s.logRepo.Increment(ctx, tx, now.Format(model.ReviewDateLayout)); err != nil {
			logger.Error("Failed to increment daily review log", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習履歴の記録に失敗しました。", "", err)
		}

		reviewed = card
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card reviewed",
		"streak", reviewed.Streak,
		"interval_days", reviewed.IntervalDays,
		"ease_factor", reviewed.EaseFactor,
	)
	return reviewed, nil
}

// DueCards は復習期限が来たカードを期限の古い順に返す。limit が0以下なら設定値を使う
func (s *reviewService) DueCards(ctx context.Context, limit int, listID *uuid.UUID) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	if limit <= 0 {
		limit = s.cfg.App.ReviewLimit
	}

	cards, err := s.cardRepo.FindDue(ctx, s.db, s.now(), listID, limit)
	if err != nil {
		logger.Error("Failed to find due cards from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習カードの取得に失敗しました。", "", err)
	}

	logger.Debug("Retrieved due cards", "count", len(cards), "limit", limit)
	return cards, nil
}

// Stats はダッシュボード用の集計を返す。ヒートマップは今日を含む直近 HeatmapDays 日分
func (s *reviewService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx)
	now := s.now()

	internalErr := func(err error) error {
		logger.Error("Failed to aggregate stats", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "統計情報の取得に失敗しました。", "", err)
	}

	total, err := s.cardRepo.CountAll(ctx, s.db)
	if err != nil {
		return nil, internalErr(err)
	}
	learned, err := s.cardRepo.CountLearned(ctx, s.db)
	if err != nil {
		return nil, internalErr(err)
	}
	y, m, d := now.Date()
	endOfDay := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location()).Add(-time.Nanosecond)
	due, err := s.cardRepo.CountDue(ctx, s.db, endOfDay)
	if err != nil {
		return nil, internalErr(err)
	}

	days := s.cfg.App.HeatmapDays
	if days <= 0 {
		days = config.DefaultHeatmapDays
	}
	since := now.AddDate(0, 0, -(days - 1)).Format(model.ReviewDateLayout)
	logs, err := s.logRepo.FindSince(ctx, s.db, since)
	if err != nil {
		return nil, internalErr(err)
	}

	heatmap := make(map[string]int, len(logs))
	for _, l := range logs {
		heatmap[l.Date] = l.Count
	}

	return &model.StatsResponse{
		TotalCards:   total,
		CardsLearned: learned,
		DueToday:     due,
		Heatmap:      heatmap,
	}, nil
}
