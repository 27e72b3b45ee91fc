package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLines は JSON ハンドラの出力を1行ずつ読む
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		level     slog.Level
		wantLevel string
		wantLines int
	}{
		{name: "正常系: 2xx は INFO", status: http.StatusOK, level: slog.LevelInfo, wantLevel: "INFO", wantLines: 2},
		{name: "正常系: 4xx は WARN", status: http.StatusNotFound, level: slog.LevelInfo, wantLevel: "WARN", wantLines: 2},
		{name: "正常系: 5xx は ERROR", status: http.StatusInternalServerError, level: slog.LevelInfo, wantLevel: "ERROR", wantLines: 2},
		{name: "正常系: DEBUG では詳細も出す", status: http.StatusOK, level: slog.LevelDebug, wantLevel: "INFO", wantLines: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: tt.level}))

			var gotBody string
			handler := chimiddleware.RequestID(LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				gotBody = string(b)
				GetLogger(r.Context()).Debug("inside handler")
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"ok":true}`))
			})))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"text":"猫"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer secret")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, `{"text":"猫"}`, gotBody, "ボディはハンドラからも読める")

			lines := logLines(t, &buf)
			require.Len(t, lines, tt.wantLines)
			last := lines[len(lines)-1]
			if tt.level == slog.LevelDebug {
				last = lines[2]
			}
			assert.Equal(t, "Request completed", last["msg"])
			assert.Equal(t, tt.wantLevel, last["level"])
			assert.Equal(t, float64(len(`{"ok":true}`)), last["bytes_out"])
			for _, l := range lines {
				assert.NotEmpty(t, l["req_id"])
			}
			assert.NotContains(t, buf.String(), "Bearer secret")
		})
	}
}

func TestGetLogger(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLogger(context.Background()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, logger, GetLogger(WithLogger(context.Background(), logger)))
}
