//go:generate mockery --name AnalysisRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"okura/internal/middleware"
	"okura/internal/model"
)

type AnalysisRepository interface {
	Create(ctx context.Context, db *gorm.DB, analysis *model.SavedAnalysis) error
	FindByID(ctx context.Context, db *gorm.DB, analysisID uuid.UUID) (*model.SavedAnalysis, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.SavedAnalysis, error)
	Delete(ctx context.Context, db *gorm.DB, analysisID uuid.UUID) error
}

type gormAnalysisRepository struct{}

func NewGormAnalysisRepository() AnalysisRepository {
	return &gormAnalysisRepository{}
}

func (r *gormAnalysisRepository) Create(ctx context.Context, db *gorm.DB, analysis *model.SavedAnalysis) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(analysis).Error; err != nil {
		logger.Error("Error creating saved analysis in DB",
			"error", err,
			"title", analysis.Title,
		)
		return fmt.Errorf("gormAnalysisRepository.Create: %w", err)
	}
	return nil
}

func (r *gormAnalysisRepository) FindByID(ctx context.Context, db *gorm.DB, analysisID uuid.UUID) (*model.SavedAnalysis, error) {
	logger := middleware.GetLogger(ctx)
	var analysis model.SavedAnalysis
	result := db.WithContext(ctx).Where("analysis_id = ?", analysisID).First(&analysis)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding saved analysis in DB",
			"error", result.Error,
			"analysis_id", analysisID.String(),
		)
		return nil, fmt.Errorf("gormAnalysisRepository.FindByID: %w", result.Error)
	}
	return &analysis, nil
}

// FindAll は本文を除いた一覧を新しい順に返す
func (r *gormAnalysisRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.SavedAnalysis, error) {
	logger := middleware.GetLogger(ctx)
	var analyses []*model.SavedAnalysis
	result := db.WithContext(ctx).
		Select("analysis_id", "title", "lang", "created_at").
		Order("created_at DESC").
		Find(&analyses)
	if result.Error != nil {
		logger.Error("Error finding saved analyses in DB", "error", result.Error)
		return nil, fmt.Errorf("gormAnalysisRepository.FindAll: %w", result.Error)
	}
	return analyses, nil
}

func (r *gormAnalysisRepository) Delete(ctx context.Context, db *gorm.DB, analysisID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("analysis_id = ?", analysisID).Delete(&model.SavedAnalysis{})
	if result.Error != nil {
		logger.Error("Error deleting saved analysis in DB",
			"error", result.Error,
			"analysis_id", analysisID.String(),
		)
		return fmt.Errorf("gormAnalysisRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
