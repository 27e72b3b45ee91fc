package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"okura/internal/model"
)

func TestReviewHandler_ReviewCard(t *testing.T) {
	cardID := uuid.New()
	path := "/api/v1/cards/" + cardID.String() + "/review"

	tests := []struct {
		name       string
		path       string
		body       interface{}
		setupMock  func(s *testServices)
		wantStatus int
		wantCode   string
	}{
		{
			name: "正常系: 評価を記録",
			path: path,
			body: `{"quality":4}`,
			setupMock: func(s *testServices) {
				s.reviews.On("ReviewCard", mock.Anything, cardID, 4).
					Return(&model.Card{CardID: cardID, Streak: 1, IntervalDays: 1}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "正常系: quality 0 も受け付ける",
			path: path,
			body: `{"quality":0}`,
			setupMock: func(s *testServices) {
				s.reviews.On("ReviewCard", mock.Anything, cardID, 0).Return(&model.Card{CardID: cardID}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: quality なし",
			path:       path,
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 範囲外の評価",
			path: path,
			body: `{"quality":9}`,
			setupMock: func(s *testServices) {
				s.reviews.On("ReviewCard", mock.Anything, cardID, 9).
					Return(nil, model.NewAppError("INVALID_RATING", "評価は0〜5で指定してください。", "quality", model.ErrInvalidRating)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_RATING",
		},
		{
			name:       "異常系: 不正なカードID",
			path:       "/api/v1/cards/xyz/review",
			body:       `{"quality":3}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_URL_PARAM",
		},
		{
			name: "異常系: カードが存在しない",
			path: path,
			body: `{"quality":3}`,
			setupMock: func(s *testServices) {
				s.reviews.On("ReviewCard", mock.Anything, cardID, 3).
					Return(nil, model.NewAppError("NOT_FOUND", "カードが見つかりません。", "card_id", model.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svcs := setupTestRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(svcs)
			}

			rr := doRequest(t, router, http.MethodPost, tt.path, tt.body)
			if tt.wantCode != "" {
				assertErrorCode(t, rr, tt.wantStatus, tt.wantCode)
				return
			}
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), cardID.String())
		})
	}
}

func TestReviewHandler_GetDueCards(t *testing.T) {
	listID := uuid.New()

	tests := []struct {
		name       string
		query      string
		setupMock  func(s *testServices)
		wantStatus int
		wantCode   string
		wantBody   string
	}{
		{
			name:  "正常系: 条件なし",
			query: "",
			setupMock: func(s *testServices) {
				s.reviews.On("DueCards", mock.Anything, 0, (*uuid.UUID)(nil)).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:  "正常系: limit と list_id",
			query: "?limit=5&list_id=" + listID.String(),
			setupMock: func(s *testServices) {
				s.reviews.On("DueCards", mock.Anything, 5, &listID).
					Return([]*model.Card{{CardID: uuid.New(), Term: "猫"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: limit が数値でない",
			query:      "?limit=ten",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_QUERY_PARAM",
		},
		{
			name:       "異常系: limit が負",
			query:      "?limit=-1",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_QUERY_PARAM",
		},
		{
			name:       "異常系: list_id が不正",
			query:      "?list_id=abc",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_URL_PARAM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svcs := setupTestRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(svcs)
			}

			rr := doRequest(t, router, http.MethodGet, "/api/v1/reviews/due"+tt.query, nil)
			if tt.wantCode != "" {
				assertErrorCode(t, rr, tt.wantStatus, tt.wantCode)
				return
			}
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestReviewHandler_GetStats(t *testing.T) {
	router, svcs := setupTestRouter(t)
	svcs.reviews.On("Stats", mock.Anything).Return(&model.StatsResponse{
		TotalCards:   3,
		CardsLearned: 1,
		DueToday:     2,
		Heatmap:      map[string]int{"2026-10-18": 3},
	}, nil).Once()

	rr := doRequest(t, router, http.MethodGet, "/api/v1/stats", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total_cards":3,"cards_learned":1,"due_today":2,"heatmap":{"2026-10-18":3}}`, rr.Body.String())
}
