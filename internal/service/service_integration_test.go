// internal/service/service_integration_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"okura/internal/model"
	"okura/internal/repository"
)

// 実リポジトリ (SQLite) を使ったサービス間の結合テスト
type integrationEnv struct {
	db      *gorm.DB
	lists   *listService
	reviews *reviewService
	clock   time.Time
}

func newIntegrationEnv(t *testing.T) *integrationEnv {
	t.Helper()
	db := setupTestDB(t)
	cardRepo := repository.NewGormCardRepository()

	env := &integrationEnv{db: db, clock: fixedNow}
	env.lists = NewListService(db, repository.NewGormListRepository(), cardRepo).(*listService)
	env.reviews = NewReviewService(db, cardRepo, repository.NewGormReviewLogRepository(), testConfig()).(*reviewService)
	env.lists.now = func() time.Time { return env.clock }
	env.reviews.now = func() time.Time { return env.clock }
	return env
}

func TestIntegration_ReviewFlow(t *testing.T) {
	ctx := context.Background()
	env := newIntegrationEnv(t)

	list, err := env.lists.CreateList(ctx, &model.CreateListRequest{Title: "N5"})
	require.NoError(t, err)

	var ids []*model.Card
	for _, term := range []string{"猫", "犬", "鳥"} {
		c, err := env.lists.AddCard(ctx, list.ListID, &model.CreateCardRequest{Term: term})
		require.NoError(t, err)
		ids = append(ids, c)
	}

	t.Run("正常系: 追加直後は全て復習対象で、取得は何度でも同じ結果", func(t *testing.T) {
		first, err := env.reviews.DueCards(ctx, 0, nil)
		require.NoError(t, err)
		second, err := env.reviews.DueCards(ctx, 0, &list.ListID)
		require.NoError(t, err)
		assert.Len(t, first, 3)
		assert.Equal(t, first, second)
	})

	t.Run("正常系: 同じ日の復習回数が日次ログに積算される", func(t *testing.T) {
		_, err := env.reviews.ReviewCard(ctx, ids[0].CardID, 5)
		require.NoError(t, err)
		_, err = env.reviews.ReviewCard(ctx, ids[1].CardID, 1)
		require.NoError(t, err)
		_, err = env.reviews.ReviewCard(ctx, ids[0].CardID, 4)
		require.NoError(t, err)

		logs, err := repository.NewGormReviewLogRepository().FindSince(ctx, env.db, "2026-10-18")
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, 3, logs[0].Count)
	})

	t.Run("正常系: 正解したカードは復習対象から外れる", func(t *testing.T) {
		due, err := env.reviews.DueCards(ctx, 10, nil)
		require.NoError(t, err)
		terms := make([]string, 0, len(due))
		for _, c := range due {
			terms = append(terms, c.Term)
		}
		assert.ElementsMatch(t, []string{"犬", "鳥"}, terms)
	})

	t.Run("正常系: 集計", func(t *testing.T) {
		stats, err := env.reviews.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalCards)
		assert.Equal(t, int64(1), stats.CardsLearned)
		assert.Equal(t, int64(2), stats.DueToday)
		assert.Equal(t, map[string]int{"2026-10-18": 3}, stats.Heatmap)
	})

	t.Run("正常系: 6日後には2回正解したカードも対象", func(t *testing.T) {
		env.clock = fixedNow.AddDate(0, 0, 6)
		defer func() { env.clock = fixedNow }()

		due, err := env.reviews.DueCards(ctx, 10, nil)
		require.NoError(t, err)
		assert.Len(t, due, 3)
	})
}

func TestIntegration_BulkAddAndDelete(t *testing.T) {
	ctx := context.Background()
	env := newIntegrationEnv(t)

	list, err := env.lists.CreateList(ctx, &model.CreateListRequest{Title: "HSK 1", Lang: model.LangChinese})
	require.NoError(t, err)

	got, err := env.lists.BulkAddCards(ctx, list.ListID, []model.CreateCardRequest{
		{Term: "猫", EntSeq: ptr(int64(10))},
		{Term: "猫", EntSeq: ptr(int64(10))},
		{Term: "狗", EntSeq: ptr(int64(11))},
	})
	require.NoError(t, err)
	assert.Equal(t, model.BulkAddResult{Created: 2, Skipped: 1}, *got)

	// 同じ内容をもう一度送っても増えない
	got, err = env.lists.BulkAddCards(ctx, list.ListID, []model.CreateCardRequest{
		{Term: "猫", EntSeq: ptr(int64(10))},
		{Term: "狗", EntSeq: ptr(int64(11))},
		{Term: "鸟", EntSeq: ptr(int64(12))},
	})
	require.NoError(t, err)
	assert.Equal(t, model.BulkAddResult{Created: 1, Skipped: 2}, *got)

	withCards, err := env.lists.GetList(ctx, list.ListID)
	require.NoError(t, err)
	assert.Len(t, withCards.Cards, 3)

	require.NoError(t, env.lists.DeleteList(ctx, list.ListID))

	_, err = env.lists.GetList(ctx, list.ListID)
	assertAppErrorCode(t, err, "NOT_FOUND")

	var remaining int64
	require.NoError(t, env.db.Model(&model.Card{}).Where("list_id = ?", list.ListID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}
