package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"okura/internal/model"
	"okura/internal/repository"
)

// setupTestDB はテストごとに独立したインメモリDBを作る (トランザクション用)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr), "expected *model.AppError, got %v", err)
	assert.Equal(t, code, appErr.Detail.Code)
}

func ptr[T any](v T) *T { return &v }
