package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"okura/internal/analysis"
	"okura/internal/config"
	"okura/internal/handlers"
	"okura/internal/lexicon"
	"okura/internal/middleware"
	"okura/internal/model"
	"okura/internal/repository"
	"okura/internal/service"
	"okura/internal/tokenizer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context(), &config.Cfg, slog.Default())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("error getting underlying sql.DB from GORM: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	if err := repository.Migrate(db); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	analyzer, closeLexicon, err := buildAnalyzer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLexicon()

	// Dependency Injection
	listRepo := repository.NewGormListRepository()
	cardRepo := repository.NewGormCardRepository()
	logRepo := repository.NewGormReviewLogRepository()
	analysisRepo := repository.NewGormAnalysisRepository()

	listService := service.NewListService(db, listRepo, cardRepo)
	reviewService := service.NewReviewService(db, cardRepo, logRepo, cfg)
	analysisService := service.NewAnalysisService(db, analysisRepo, analyzer, cfg)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	handlers.RegisterRoutes(r,
		handlers.NewListHandler(listService, logger),
		handlers.NewReviewHandler(reviewService, logger),
		handlers.NewAnalysisHandler(analysisService, cfg.Server.MaxUploadBytes, logger),
	)
	r.Get("/health", handlers.HealthHandler(db))

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	select {
	case err := <-errCh:
		return fmt.Errorf("could not listen on %s: %w", cfg.Server.Port, err)
	case <-ctx.Done():
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.Any("error", err))
	}
	logger.Info("Server exiting")
	return nil
}

// buildAnalyzer は辞書と形態素解析器を読み込み、言語ごとのパイプラインを組み立てる。
// 中国語は lexicon.cedict_path が設定されている場合だけ有効になる
func buildAnalyzer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*analysis.Dispatcher, func(), error) {
	jmdict, err := lexicon.OpenSQLite(cfg.Lexicon.JMdictPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening lexicon %s: %w", cfg.Lexicon.JMdictPath, err)
	}
	closeLexicon := func() {
		if err := jmdict.Close(); err != nil {
			logger.Error("Error closing lexicon", slog.Any("error", err))
		}
	}
	if n, err := jmdict.Count(ctx); err == nil {
		if n == 0 {
			logger.Warn("Lexicon is empty. Run `okura dict import --xml JMdict_e.xml` first.")
		}
		logger.Info("Lexicon opened", slog.String("path", cfg.Lexicon.JMdictPath), slog.Int64("entries", n))
	}

	var jpDict lexicon.Dictionary = jmdict
	if cfg.Lexicon.CacheSize > 0 {
		cached, err := lexicon.NewCachedDictionary(jmdict, cfg.Lexicon.CacheSize)
		if err != nil {
			closeLexicon()
			return nil, nil, err
		}
		jpDict = cached
	}

	kagome, err := tokenizer.NewKagome()
	if err != nil {
		closeLexicon()
		return nil, nil, err
	}
	pipelines := map[string]analysis.Annotator{
		model.LangJapanese: analysis.NewPipeline(kagome, analysis.NewFirstMatchResolver(jpDict)),
	}

	if cfg.Lexicon.CedictPath != "" {
		zh, err := buildChinesePipeline(cfg.Lexicon.CedictPath, logger)
		if err != nil {
			closeLexicon()
			return nil, nil, err
		}
		pipelines[model.LangChinese] = zh
	}

	dispatcher := analysis.NewDispatcher(cfg.App.DefaultLang, pipelines)
	if dispatcher.DefaultLang() != cfg.App.DefaultLang {
		logger.Warn("No pipeline for default language, falling back",
			slog.String("default_lang", cfg.App.DefaultLang),
			slog.String("fallback", dispatcher.DefaultLang()))
	}
	if !dispatcher.Supports(model.LangChinese) {
		logger.Info("Chinese analysis disabled. Set lexicon.cedict_path to enable it.")
	}
	return dispatcher, closeLexicon, nil
}

func buildChinesePipeline(path string, logger *slog.Logger) (*analysis.Pipeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening CC-CEDICT %s: %w", path, err)
	}
	defer f.Close()

	cedict, err := lexicon.ParseCEDICT(f)
	if err != nil {
		return nil, err
	}
	seg, err := tokenizer.NewGse()
	if err != nil {
		return nil, err
	}
	logger.Info("Chinese lexicon loaded", slog.String("path", path), slog.Int("headwords", cedict.Len()))

	resolver := analysis.NewExactMatchResolver(cedict, analysis.NewPinyinTransliterator())
	return analysis.NewPipeline(seg, resolver), nil
}
