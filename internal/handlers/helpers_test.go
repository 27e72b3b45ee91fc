// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"okura/internal/handlers"
	"okura/internal/model"
	svc_mocks "okura/internal/service/mocks"
)

const testMaxUploadBytes = 1 << 10

// testServices はルーターに差し込むモックサービス一式
type testServices struct {
	lists    *svc_mocks.ListService
	reviews  *svc_mocks.ReviewService
	analyses *svc_mocks.AnalysisService
}

// setupTestRouter は本番と同じルート定義にモックサービスをつないだルーターを返す
func setupTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svcs := &testServices{
		lists:    svc_mocks.NewListService(t),
		reviews:  svc_mocks.NewReviewService(t),
		analyses: svc_mocks.NewAnalysisService(t),
	}

	r := chi.NewRouter()
	handlers.RegisterRoutes(r,
		handlers.NewListHandler(svcs.lists, testLogger),
		handlers.NewReviewHandler(svcs.reviews, testLogger),
		handlers.NewAnalysisHandler(svcs.analyses, testMaxUploadBytes, testLogger),
	)
	return r, svcs
}

// doRequest はJSONボディ (文字列ならそのまま) を付けてリクエストを実行する
func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// assertErrorCode はエラーレスポンスの code を検証する
func assertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, wantStatus int, wantCode string) {
	t.Helper()
	assert.Equal(t, wantStatus, rr.Code)
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp), rr.Body.String())
	assert.Equal(t, wantCode, errResp.Error.Code)
}
