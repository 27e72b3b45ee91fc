// internal/service/review_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"okura/internal/config"
	"okura/internal/model"
	"okura/internal/repository/mocks"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.ReviewLimit = 10
	cfg.App.DefaultLang = model.LangJapanese
	cfg.App.HeatmapDays = 30
	return cfg
}

func newTestReviewService(t *testing.T) (*reviewService, *mocks.CardRepository, *mocks.ReviewLogRepository) {
	db := setupTestDB(t)
	cardRepo := new(mocks.CardRepository)
	logRepo := new(mocks.ReviewLogRepository)
	svc := NewReviewService(db, cardRepo, logRepo, testConfig()).(*reviewService)
	svc.now = func() time.Time { return fixedNow }
	return svc, cardRepo, logRepo
}

func Test_reviewService_ReviewCard(t *testing.T) {
	ctx := context.Background()
	cardID := uuid.New()

	tests := []struct {
		name      string
		card      *model.Card
		quality   int
		setupMock func(cards *mocks.CardRepository, logs *mocks.ReviewLogRepository, card *model.Card)
		wantCode  string
		wantErr   error
		check     func(t *testing.T, got *model.Card)
	}{
		{
			name:    "正常系: 3回目の正解で interval = floor(6×2.3)",
			card:    &model.Card{CardID: cardID, Streak: 2, IntervalDays: 6, EaseFactor: 2.3},
			quality: 4,
			setupMock: func(cards *mocks.CardRepository, logs *mocks.ReviewLogRepository, card *model.Card) {
				cards.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), cardID).Return(card, nil).Once()
				cards.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), card).Return(nil).Once()
				logs.On("Increment", ctx, mock.AnythingOfType("*gorm.DB"), "2026-10-18").Return(nil).Once()
			},
			check: func(t *testing.T, got *model.Card) {
				assert.Equal(t, 3, got.Streak)
				assert.Equal(t, 13, got.IntervalDays)
				assert.InDelta(t, 2.3, got.EaseFactor, 1e-9)
				assert.Equal(t, fixedNow.AddDate(0, 0, 13), got.NextReview)
			},
		},
		{
			name:    "正常系: 新しいカードの不正解はすぐに再出題",
			card:    &model.Card{CardID: cardID, Streak: 0, EaseFactor: model.DefaultEaseFactor},
			quality: 2,
			setupMock: func(cards *mocks.CardRepository, logs *mocks.ReviewLogRepository, card *model.Card) {
				cards.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), cardID).Return(card, nil).Once()
				cards.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), card).Return(nil).Once()
				logs.On("Increment", ctx, mock.AnythingOfType("*gorm.DB"), "2026-10-18").Return(nil).Once()
			},
			check: func(t *testing.T, got *model.Card) {
				assert.Equal(t, 0, got.Streak)
				assert.Equal(t, 0, got.IntervalDays)
				assert.Equal(t, fixedNow, got.NextReview)
				assert.GreaterOrEqual(t, got.EaseFactor, 1.3)
			},
		},
		{
			name:     "異常系: 評価が範囲外",
			quality:  6,
			wantCode: "INVALID_RATING",
			wantErr:  model.ErrInvalidRating,
		},
		{
			name:     "異常系: 負の評価",
			quality:  -1,
			wantCode: "INVALID_RATING",
			wantErr:  model.ErrInvalidInput,
		},
		{
			name:    "異常系: カードが存在しない",
			quality: 5,
			setupMock: func(cards *mocks.CardRepository, logs *mocks.ReviewLogRepository, card *model.Card) {
				cards.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), cardID).Return(nil, model.ErrNotFound).Once()
			},
			wantCode: "NOT_FOUND",
			wantErr:  model.ErrNotFound,
		},
		{
			name:    "異常系: 履歴の記録に失敗",
			card:    &model.Card{CardID: cardID, Streak: 1, IntervalDays: 1, EaseFactor: 2.5},
			quality: 5,
			setupMock: func(cards *mocks.CardRepository, logs *mocks.ReviewLogRepository, card *model.Card) {
				cards.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), cardID).Return(card, nil).Once()
				cards.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), card).Return(nil).Once()
				logs.On("Increment", ctx, mock.AnythingOfType("*gorm.DB"), "2026-10-18").Return(errors.New("disk full")).Once()
			},
			wantCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, cardRepo, logRepo := newTestReviewService(t)
			if tt.setupMock != nil {
				tt.setupMock(cardRepo, logRepo, tt.card)
			}

			got, err := svc.ReviewCard(ctx, cardID, tt.quality)

			if tt.wantCode != "" {
				require.Error(t, err)
				assertAppErrorCode(t, err, tt.wantCode)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				tt.check(t, got)
			}
			if tt.setupMock == nil {
				cardRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
				logRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything)
			}
			cardRepo.AssertExpectations(t)
			logRepo.AssertExpectations(t)
		})
	}
}

func Test_reviewService_DueCards(t *testing.T) {
	ctx := context.Background()
	svc, cardRepo, _ := newTestReviewService(t)
	listID := uuid.New()
	due := []*model.Card{{CardID: uuid.New(), Term: "一"}, {CardID: uuid.New(), Term: "二"}}

	tests := []struct {
		name      string
		limit     int
		listID    *uuid.UUID
		setupMock func(m *mocks.CardRepository)
		wantLen   int
		wantErr   bool
	}{
		{
			name:  "正常系: limit 未指定は設定値",
			limit: 0,
			setupMock: func(m *mocks.CardRepository) {
				m.On("FindDue", ctx, mock.AnythingOfType("*gorm.DB"), fixedNow, (*uuid.UUID)(nil), 10).Return(due, nil).Once()
			},
			wantLen: 2,
		},
		{
			name:   "正常系: リスト指定",
			limit:  5,
			listID: &listID,
			setupMock: func(m *mocks.CardRepository) {
				m.On("FindDue", ctx, mock.AnythingOfType("*gorm.DB"), fixedNow, &listID, 5).Return(due[:1], nil).Once()
			},
			wantLen: 1,
		},
		{
			name:  "異常系: DBエラー",
			limit: 3,
			setupMock: func(m *mocks.CardRepository) {
				m.On("FindDue", ctx, mock.AnythingOfType("*gorm.DB"), fixedNow, (*uuid.UUID)(nil), 3).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cardRepo.Mock = mock.Mock{}
			tt.setupMock(cardRepo)

			got, err := svc.DueCards(ctx, tt.limit, tt.listID)
			if tt.wantErr {
				assertAppErrorCode(t, err, "INTERNAL_SERVER_ERROR")
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
			cardRepo.AssertExpectations(t)
		})
	}
}

func Test_reviewService_Stats(t *testing.T) {
	ctx := context.Background()
	svc, cardRepo, logRepo := newTestReviewService(t)

	endOfDay := time.Date(2026, 10, 18, 23, 59, 59, 999999999, time.UTC)
	cardRepo.On("CountAll", ctx, mock.AnythingOfType("*gorm.DB")).Return(int64(12), nil).Once()
	cardRepo.On("CountLearned", ctx, mock.AnythingOfType("*gorm.DB")).Return(int64(5), nil).Once()
	cardRepo.On("CountDue", ctx, mock.AnythingOfType("*gorm.DB"), endOfDay).Return(int64(4), nil).Once()
	logRepo.On("FindSince", ctx, mock.AnythingOfType("*gorm.DB"), "2026-09-19").Return([]*model.DailyReviewLog{
		{Date: "2026-10-01", Count: 7},
		{Date: "2026-10-18", Count: 2},
	}, nil).Once()

	got, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.TotalCards)
	assert.Equal(t, int64(5), got.CardsLearned)
	assert.Equal(t, int64(4), got.DueToday)
	assert.Equal(t, map[string]int{"2026-10-01": 7, "2026-10-18": 2}, got.Heatmap)

	cardRepo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
}

func Test_reviewService_StatsError(t *testing.T) {
	ctx := context.Background()
	svc, cardRepo, _ := newTestReviewService(t)
	cardRepo.On("CountAll", ctx, mock.AnythingOfType("*gorm.DB")).Return(int64(0), errors.New("db error")).Once()

	got, err := svc.Stats(ctx)
	assert.Nil(t, got)
	assertAppErrorCode(t, err, "INTERNAL_SERVER_ERROR")
}
