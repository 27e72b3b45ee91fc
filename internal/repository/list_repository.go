//go:generate mockery --name ListRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"okura/internal/middleware"
	"okura/internal/model"
)

type ListRepository interface {
	Create(ctx context.Context, db *gorm.DB, list *model.VocabList) error
	FindByID(ctx context.Context, db *gorm.DB, listID uuid.UUID) (*model.VocabList, error)
	FindByIDWithCards(ctx context.Context, db *gorm.DB, listID uuid.UUID) (*model.VocabList, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.VocabList, error)
	Delete(ctx context.Context, db *gorm.DB, listID uuid.UUID) error
}

type gormListRepository struct{}

func NewGormListRepository() ListRepository {
	return &gormListRepository{}
}

func (r *gormListRepository) Create(ctx context.Context, db *gorm.DB, list *model.VocabList) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Omit("Cards").Create(list)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Duplicate key error on create list",
				"error", result.Error,
				"title", list.Title,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating list in DB",
			"error", result.Error,
			"title", list.Title,
		)
		return fmt.Errorf("gormListRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormListRepository) FindByID(ctx context.Context, db *gorm.DB, listID uuid.UUID) (*model.VocabList, error) {
	logger := middleware.GetLogger(ctx)
	var list model.VocabList

	result := db.WithContext(ctx).Where("list_id = ?", listID).First(&list)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding list by ID in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return nil, fmt.Errorf("gormListRepository.FindByID: %w", result.Error)
	}
	return &list, nil
}

func (r *gormListRepository) FindByIDWithCards(ctx context.Context, db *gorm.DB, listID uuid.UUID) (*model.VocabList, error) {
	logger := middleware.GetLogger(ctx)
	var list model.VocabList

	result := db.WithContext(ctx).
		Preload("Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, card_id ASC")
		}).
		Where("list_id = ?", listID).
		First(&list)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding list with cards in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return nil, fmt.Errorf("gormListRepository.FindByIDWithCards: %w", result.Error)
	}
	return &list, nil
}

func (r *gormListRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.VocabList, error) {
	logger := middleware.GetLogger(ctx)
	var lists []*model.VocabList

	result := db.WithContext(ctx).Order("created_at DESC").Find(&lists)
	if result.Error != nil {
		logger.Error("Error finding lists in DB", "error", result.Error)
		return nil, fmt.Errorf("gormListRepository.FindAll: %w", result.Error)
	}
	return lists, nil
}

func (r *gormListRepository) Delete(ctx context.Context, db *gorm.DB, listID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("list_id = ?", listID).Delete(&model.VocabList{})
	if result.Error != nil {
		logger.Error("Error deleting list in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return fmt.Errorf("gormListRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// isUniqueViolation は一意制約違反かどうか。PostgreSQL は SQLSTATE 23505、SQLite はメッセージで判定する
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
