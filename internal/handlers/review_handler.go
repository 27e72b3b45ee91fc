// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"okura/internal/model"
	"okura/internal/service"
	"okura/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// ReviewCard は復習結果 (quality 0〜5) を受け取り、次回の復習日を更新する
func (h *ReviewHandler) ReviewCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ReviewCard"))

	cardID, err := webutil.URLParamUUID(chi.URLParam(r, "card_id"), "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("card_id", cardID.String()))

	var req model.ReviewRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.ReviewCard(r.Context(), cardID, *req.Quality)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card reviewed",
		slog.Int("quality", *req.Quality),
		slog.Int("interval_days", card.IntervalDays),
	)
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// GetDueCards は ?limit= と ?list_id= で絞り込んだ復習対象を返す
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueCards"))

	limit, err := webutil.QueryInt(r, "limit")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var listID *uuid.UUID
	if raw := r.URL.Query().Get("list_id"); raw != "" {
		id, err := webutil.URLParamUUID(raw, "list_id")
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		listID = &id
	}

	cards, err := h.service.DueCards(r.Context(), limit, listID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if cards == nil {
		cards = []*model.Card{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

func (h *ReviewHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}
