// internal/handlers/list_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"okura/internal/model"
	"okura/internal/service"
	"okura/internal/webutil"
)

type ListHandler struct {
	service service.ListService
	logger  *slog.Logger
}

func NewListHandler(s service.ListService, logger *slog.Logger) *ListHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListHandler{
		service: s,
		logger:  logger,
	}
}

// CreateList は学習リストを作成するためのハンドラ
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateList"))

	var req model.CreateListRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	list, err := h.service.CreateList(r.Context(), &req)
	if err != nil {
		logger.Warn("Error creating list in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("List created successfully", slog.String("list_id", list.ListID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, list, logger)
}

func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLists"))

	lists, err := h.service.ListLists(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if lists == nil {
		lists = []*model.VocabList{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, lists, logger)
}

// GetList はカードを含むリストを返す
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetList"))

	listID, err := webutil.URLParamUUID(chi.URLParam(r, "list_id"), "list_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("list_id", listID.String()))

	list, err := h.service.GetList(r.Context(), listID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("List not found")
		}
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}

func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteList"))

	listID, err := webutil.URLParamUUID(chi.URLParam(r, "list_id"), "list_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteList(r.Context(), listID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("List deleted successfully", slog.String("list_id", listID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// AddCard はリストにカードを1枚追加する
func (h *ListHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddCard"))

	listID, err := webutil.URLParamUUID(chi.URLParam(r, "list_id"), "list_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("list_id", listID.String()))

	var req model.CreateCardRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.AddCard(r.Context(), listID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card added successfully", slog.String("card_id", card.CardID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// BulkAddCards は解析結果などからまとめてカードを追加する。重複は件数だけ返す
func (h *ListHandler) BulkAddCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "BulkAddCards"))

	listID, err := webutil.URLParamUUID(chi.URLParam(r, "list_id"), "list_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("list_id", listID.String()))

	var req model.BulkAddCardsRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	result, err := h.service.BulkAddCards(r.Context(), listID, req.Cards)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Cards bulk added",
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("errored", result.Errored),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

func (h *ListHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCard"))

	cardID, err := webutil.URLParamUUID(chi.URLParam(r, "card_id"), "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	card, err := h.service.GetCard(r.Context(), cardID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

func (h *ListHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCard"))

	cardID, err := webutil.URLParamUUID(chi.URLParam(r, "card_id"), "card_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteCard(r.Context(), cardID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
