// internal/service/analysis_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"okura/internal/config"
	"okura/internal/extract"
	"okura/internal/middleware"
	"okura/internal/model"
	"okura/internal/repository"
)

// TextAnalyzer は言語タグに応じてテキストを解析する (analysis.Dispatcher)
type TextAnalyzer interface {
	Analyze(ctx context.Context, text, lang string) model.Document
}

type AnalysisService interface {
	Analyze(ctx context.Context, req *model.AnalyzeRequest) (*model.Document, error)
	AnalyzeFile(ctx context.Context, filename string, data []byte, lang string) (*model.Document, error)
	SaveAnalysis(ctx context.Context, req *model.SaveAnalysisRequest) (*model.SavedAnalysis, error)
	ListAnalyses(ctx context.Context) ([]*model.SavedAnalysis, error)
	GetAnalysis(ctx context.Context, analysisID uuid.UUID) (*model.SavedAnalysis, error)
	AnalyzeSaved(ctx context.Context, analysisID uuid.UUID) (*model.Document, error)
	DeleteAnalysis(ctx context.Context, analysisID uuid.UUID) error
}

type analysisService struct {
	db       *gorm.DB
	repo     repository.AnalysisRepository
	analyzer TextAnalyzer
	cfg      *config.Config
}

func NewAnalysisService(db *gorm.DB, repo repository.AnalysisRepository, analyzer TextAnalyzer, cfg *config.Config) AnalysisService {
	return &analysisService{
		db:       db,
		repo:     repo,
		analyzer: analyzer,
		cfg:      cfg,
	}
}

func (s *analysisService) Analyze(ctx context.Context, req *model.AnalyzeRequest) (*model.Document, error) {
	lang := s.lang(req.Lang)
	doc := s.analyzer.Analyze(ctx, req.Text, lang)
	middleware.GetLogger(ctx).Debug("Text analyzed", "lang", lang, "lines", len(doc.Lines))
	return &doc, nil
}

// AnalyzeFile はアップロードされたファイルから本文を取り出して解析する
func (s *analysisService) AnalyzeFile(ctx context.Context, filename string, data []byte, lang string) (*model.Document, error) {
	logger := middleware.GetLogger(ctx).With("filename", filename)

	text, err := extract.Text(filename, data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return nil, model.NewAppError("UNSUPPORTED_FORMAT", "対応していないファイル形式です。(.txt, .html, .epub)", "file", err)
		}
		if errors.Is(err, model.ErrTooLarge) {
			logger.Warn("Upload expands too large", "error", err)
			return nil, model.NewAppError("FILE_TOO_LARGE", "ファイルの展開後のサイズが大きすぎます。", "file", err)
		}
		if errors.Is(err, model.ErrInvalidInput) {
			logger.Warn("Failed to extract text from upload", "error", err)
			return nil, model.NewAppError("INVALID_FILE", "ファイルの読み込みに失敗しました。", "file", err)
		}
		logger.Error("Unexpected error extracting text", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ファイルの処理に失敗しました。", "", err)
	}

	lang = s.lang(lang)
	doc := s.analyzer.Analyze(ctx, text, lang)
	logger.Info("File analyzed", "lang", lang, "bytes", len(data), "lines", len(doc.Lines))
	return &doc, nil
}

func (s *analysisService) SaveAnalysis(ctx context.Context, req *model.SaveAnalysisRequest) (*model.SavedAnalysis, error) {
	logger := middleware.GetLogger(ctx)

	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Content) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "タイトルと本文は必須です。", "", model.ErrInvalidInput)
	}

	saved := &model.SavedAnalysis{
		AnalysisID: uuid.New(),
		Title:      title,
		Content:    req.Content,
		Lang:       s.lang(req.Lang),
	}
	if err := s.repo.Create(ctx, s.db, saved); err != nil {
		logger.Error("Failed to save analysis", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テキストの保存に失敗しました。", "", err)
	}

	logger.Info("Analysis saved", "analysis_id", saved.AnalysisID)
	return saved, nil
}

func (s *analysisService) ListAnalyses(ctx context.Context) ([]*model.SavedAnalysis, error) {
	analyses, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list analyses", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "保存済みテキストの取得に失敗しました。", "", err)
	}
	return analyses, nil
}

func (s *analysisService) GetAnalysis(ctx context.Context, analysisID uuid.UUID) (*model.SavedAnalysis, error) {
	saved, err := s.repo.FindByID(ctx, s.db, analysisID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "保存済みテキストが見つかりません。", "analysis_id", err)
		}
		middleware.GetLogger(ctx).Error("Failed to get analysis", "error", err, "analysis_id", analysisID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "保存済みテキストの取得に失敗しました。", "", err)
	}
	return saved, nil
}

// AnalyzeSaved は保存済みテキストを保存時の言語で解析し直す
func (s *analysisService) AnalyzeSaved(ctx context.Context, analysisID uuid.UUID) (*model.Document, error) {
	saved, err := s.GetAnalysis(ctx, analysisID)
	if err != nil {
		return nil, err
	}
	doc := s.analyzer.Analyze(ctx, saved.Content, saved.Lang)
	return &doc, nil
}

func (s *analysisService) DeleteAnalysis(ctx context.Context, analysisID uuid.UUID) error {
	if err := s.repo.Delete(ctx, s.db, analysisID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", "保存済みテキストが見つかりません。", "analysis_id", err)
		}
		middleware.GetLogger(ctx).Error("Failed to delete analysis", "error", err, "analysis_id", analysisID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "保存済みテキストの削除に失敗しました。", "", err)
	}
	return nil
}

// lang は空の言語タグを設定の既定値で補う
func (s *analysisService) lang(lang string) string {
	if lang == "" {
		return s.cfg.App.DefaultLang
	}
	return lang
}
