package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadConfig(t *testing.T) {
	t.Run("正常系: ファイルと環境変数", func(t *testing.T) {
		dir := t.TempDir()
		yaml := `
database:
  url: "sqlite://okura.db"
app:
  review_limit: 50
  default_lang: zh
log:
  level: debug
lexicon:
  cedict_path: /data/cedict_ts.u8
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
		t.Setenv("APP_SERVER_PORT", ":9999")

		require.NoError(t, LoadConfig(dir, testLogger()))

		assert.Equal(t, "sqlite://okura.db", Cfg.Database.URL)
		assert.Equal(t, ":9999", Cfg.Server.Port)
		assert.Equal(t, 50, Cfg.App.ReviewLimit)
		assert.Equal(t, "zh", Cfg.App.DefaultLang)
		assert.Equal(t, slog.LevelDebug, Cfg.LogLevel())
		assert.Equal(t, "/data/cedict_ts.u8", Cfg.Lexicon.CedictPath)
		assert.Equal(t, DefaultLexiconPath, Cfg.Lexicon.JMdictPath)
		assert.Equal(t, DefaultLookupCacheSize, Cfg.Lexicon.CacheSize)
	})

	t.Run("正常系: 不正値は既定値に補正", func(t *testing.T) {
		dir := t.TempDir()
		yaml := `
app:
  review_limit: -1
  default_lang: fr
log:
  level: verbose
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

		require.NoError(t, LoadConfig(dir, testLogger()))

		assert.Equal(t, DefaultAppReviewLimit, Cfg.App.ReviewLimit)
		assert.Equal(t, DefaultLang, Cfg.App.DefaultLang)
		assert.Equal(t, slog.LevelInfo, Cfg.LogLevel())
		assert.Equal(t, DefaultServerPort, Cfg.Server.Port)
	})

	t.Run("異常系: 壊れたYAML", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("app: [\n"), 0o600))
		assert.Error(t, LoadConfig(dir, testLogger()))
	})
}
