// internal/handlers/analysis_handler.go
package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"okura/internal/model"
	"okura/internal/service"
	"okura/internal/webutil"
)

type AnalysisHandler struct {
	service        service.AnalysisService
	maxUploadBytes int64
	logger         *slog.Logger
}

func NewAnalysisHandler(s service.AnalysisService, maxUploadBytes int64, logger *slog.Logger) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		service:        s,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Analyze はテキストを行ごとに解析し、単語ごとの辞書情報を返す
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Analyze"))

	var req model.AnalyzeRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	doc, err := h.service.Analyze(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}

// AnalyzeFile は multipart の file (と任意の lang) を受け取り解析する
func (h *AnalysisHandler) AnalyzeFile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AnalyzeFile"))

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		webutil.HandleError(w, logger, uploadError(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Warn("File field missing", slog.Any("error", err))
		webutil.HandleError(w, logger, model.NewAppError("VALIDATION_ERROR", "fileは必須項目です。", "file", model.ErrInvalidInput))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		webutil.HandleError(w, logger, uploadError(err))
		return
	}

	req := model.AnalyzeFileRequest{Lang: r.FormValue("lang")}
	if err := webutil.Validate(&req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	doc, err := h.service.AnalyzeFile(r.Context(), header.Filename, data, req.Lang)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}

func (h *AnalysisHandler) SaveAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SaveAnalysis"))

	var req model.SaveAnalysisRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		logger.Warn("Invalid request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	saved, err := h.service.SaveAnalysis(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, saved, logger)
}

func (h *AnalysisHandler) GetAnalyses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAnalyses"))

	analyses, err := h.service.ListAnalyses(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if analyses == nil {
		analyses = []*model.SavedAnalysis{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, analyses, logger)
}

func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAnalysis"))

	analysisID, err := webutil.URLParamUUID(chi.URLParam(r, "analysis_id"), "analysis_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	saved, err := h.service.GetAnalysis(r.Context(), analysisID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, saved, logger)
}

// AnalyzeSaved は保存済みテキストを解析し直す
func (h *AnalysisHandler) AnalyzeSaved(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AnalyzeSaved"))

	analysisID, err := webutil.URLParamUUID(chi.URLParam(r, "analysis_id"), "analysis_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	doc, err := h.service.AnalyzeSaved(r.Context(), analysisID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}

func (h *AnalysisHandler) DeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteAnalysis"))

	analysisID, err := webutil.URLParamUUID(chi.URLParam(r, "analysis_id"), "analysis_id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteAnalysis(r.Context(), analysisID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// uploadError はアップロードの読み込み失敗を AppError に変換する
func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return model.NewAppError("FILE_TOO_LARGE", "ファイルサイズが上限を超えています。", "file", model.ErrTooLarge)
	}
	return model.NewAppError("INVALID_REQUEST_BODY", "multipart/form-data で file を送信してください。", "file", model.ErrInvalidInput)
}
