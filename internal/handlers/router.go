// internal/handlers/router.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// RegisterRoutes は /api/v1 配下のルートを登録する
func RegisterRoutes(r chi.Router, lists *ListHandler, reviews *ReviewHandler, analyses *AnalysisHandler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", analyses.Analyze)
		r.Post("/analyze/file", analyses.AnalyzeFile)

		r.Route("/analyses", func(r chi.Router) {
			r.Post("/", analyses.SaveAnalysis)
			r.Get("/", analyses.GetAnalyses)
			r.Get("/{analysis_id}", analyses.GetAnalysis)
			r.Delete("/{analysis_id}", analyses.DeleteAnalysis)
			r.Post("/{analysis_id}/analyze", analyses.AnalyzeSaved)
		})

		r.Route("/lists", func(r chi.Router) {
			r.Post("/", lists.CreateList)
			r.Get("/", lists.GetLists)
			r.Get("/{list_id}", lists.GetList)
			r.Delete("/{list_id}", lists.DeleteList)
			r.Post("/{list_id}/cards", lists.AddCard)
			r.Post("/{list_id}/cards/bulk", lists.BulkAddCards)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/{card_id}", lists.GetCard)
			r.Delete("/{card_id}", lists.DeleteCard)
			r.Post("/{card_id}/review", reviews.ReviewCard)
		})

		r.Get("/reviews/due", reviews.GetDueCards)
		r.Get("/stats", reviews.GetStats)
	})
}

// HealthHandler は DB への疎通を確認する
func HealthHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
