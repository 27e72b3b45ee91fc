//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"okura/internal/middleware"
	"okura/internal/model"
)

// CreateBatchSize は一括追加時に1回の INSERT で送る件数
const CreateBatchSize = 100

type CardRepository interface {
	Create(ctx context.Context, db *gorm.DB, card *model.Card) error
	CreateBatch(ctx context.Context, db *gorm.DB, cards []*model.Card) error
	FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error)
	FindByList(ctx context.Context, db *gorm.DB, listID uuid.UUID) ([]*model.Card, error)
	ExistingEntSeqs(ctx context.Context, db *gorm.DB, listID uuid.UUID, entSeqs []int64) (map[int64]bool, error)
	Update(ctx context.Context, db *gorm.DB, card *model.Card) error
	Delete(ctx context.Context, db *gorm.DB, cardID uuid.UUID) error
	DeleteByList(ctx context.Context, db *gorm.DB, listID uuid.UUID) (int64, error)
	FindDue(ctx context.Context, db *gorm.DB, now time.Time, listID *uuid.UUID, limit int) ([]*model.Card, error)
	CountAll(ctx context.Context, db *gorm.DB) (int64, error)
	CountLearned(ctx context.Context, db *gorm.DB) (int64, error)
	CountDue(ctx context.Context, db *gorm.DB, until time.Time) (int64, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, db *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(card)
	if result.Error != nil {
		logger.Error("Error creating card in DB",
			"error", result.Error,
			"list_id", card.ListID.String(),
			"term", card.Term,
		)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

// CreateBatch は cards を1回の呼び出しでまとめて登録する
func (r *gormCardRepository) CreateBatch(ctx context.Context, db *gorm.DB, cards []*model.Card) error {
	if len(cards) == 0 {
		return nil
	}
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).CreateInBatches(cards, CreateBatchSize)
	if result.Error != nil {
		logger.Error("Error creating cards in batch",
			"error", result.Error,
			"count", len(cards),
		)
		return fmt.Errorf("gormCardRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).Where("card_id = ?", cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card by ID in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) FindByList(ctx context.Context, db *gorm.DB, listID uuid.UUID) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	result := db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at ASC, card_id ASC").
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding cards by list in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByList: %w", result.Error)
	}
	return cards, nil
}

// ExistingEntSeqs は entSeqs のうちリストに既に登録されているものを返す
func (r *gormCardRepository) ExistingEntSeqs(ctx context.Context, db *gorm.DB, listID uuid.UUID, entSeqs []int64) (map[int64]bool, error) {
	existing := make(map[int64]bool)
	if len(entSeqs) == 0 {
		return existing, nil
	}

	logger := middleware.GetLogger(ctx)
	var found []int64
	result := db.WithContext(ctx).
		Model(&model.Card{}).
		Where("list_id = ? AND ent_seq IN ?", listID, entSeqs).
		Pluck("ent_seq", &found)
	if result.Error != nil {
		logger.Error("Error finding existing ent_seqs in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.ExistingEntSeqs: %w", result.Error)
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

// Update はカード全体を保存する
func (r *gormCardRepository) Update(ctx context.Context, db *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Model(card).Select("*").Omit("card_id", "created_at").Updates(card)
	if result.Error != nil {
		logger.Error("Error updating card in DB",
			"error", result.Error,
			"card_id", card.CardID.String(),
		)
		return fmt.Errorf("gormCardRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) Delete(ctx context.Context, db *gorm.DB, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("card_id = ?", cardID).Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting card in DB",
			"error", result.Error,
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteByList はリストに属するカードを全て削除し、削除件数を返す
func (r *gormCardRepository) DeleteByList(ctx context.Context, db *gorm.DB, listID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("list_id = ?", listID).Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting cards by list in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return 0, fmt.Errorf("gormCardRepository.DeleteByList: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// FindDue は next_review が now 以前のカードを古い順に最大 limit 件返す
func (r *gormCardRepository) FindDue(ctx context.Context, db *gorm.DB, now time.Time, listID *uuid.UUID, limit int) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card

	query := db.WithContext(ctx).Where("next_review <= ?", now)
	if listID != nil {
		query = query.Where("list_id = ?", *listID)
	}
	result := query.
		Order("next_review ASC, card_id ASC").
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding due cards in DB",
			"error", result.Error,
			"limit", limit,
		)
		return nil, fmt.Errorf("gormCardRepository.FindDue: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) CountAll(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Card{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormCardRepository.CountAll: %w", err)
	}
	return count, nil
}

// CountLearned は1回以上連続正解しているカードの数
func (r *gormCardRepository) CountLearned(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Card{}).Where("streak >= ?", 1).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormCardRepository.CountLearned: %w", err)
	}
	return count, nil
}

func (r *gormCardRepository) CountDue(ctx context.Context, db *gorm.DB, until time.Time) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Card{}).Where("next_review <= ?", until).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormCardRepository.CountDue: %w", err)
	}
	return count, nil
}
