// internal/config/config.go
package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port           string `mapstructure:"port"`
		MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
	} `mapstructure:"server"`
	App struct {
		ReviewLimit int    `mapstructure:"review_limit"`
		DefaultLang string `mapstructure:"default_lang"`
		HeatmapDays int    `mapstructure:"heatmap_days"`
	} `mapstructure:"app"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Lexicon struct {
		JMdictPath string `mapstructure:"jmdict_path"` // 索引化済みの SQLite ファイル
		CedictPath string `mapstructure:"cedict_path"` // CC-CEDICT テキスト。空なら中国語は無効
		CacheSize  int    `mapstructure:"cache_size"`
	} `mapstructure:"lexicon"`
}

var Cfg Config

// LoadConfig は path (とカレントディレクトリ) の config.yaml と APP_ 接頭辞の環境変数から設定を読む。
// 例: APP_DATABASE_URL, APP_LEXICON_JMDICT_PATH
func LoadConfig(path string, logger *slog.Logger) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Warn("Config file not found. Using defaults and environment variables.")
		} else {
			logger.Error("Error reading config file", slog.Any("error", err))
			return err
		}
	} else {
		logger.Info("Config file loaded", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Error("Error unmarshalling config", slog.Any("error", err))
		return err
	}

	// --- 不正値の補正 ---
	if cfg.App.ReviewLimit <= 0 {
		logger.Warn("App review limit invalid, using default", slog.Int("default", DefaultAppReviewLimit))
		cfg.App.ReviewLimit = DefaultAppReviewLimit
	}
	if cfg.App.DefaultLang != "jp" && cfg.App.DefaultLang != "zh" {
		logger.Warn("Unknown default language, using default", slog.String("lang", cfg.App.DefaultLang))
		cfg.App.DefaultLang = DefaultLang
	}
	if cfg.Lexicon.CacheSize < 0 {
		cfg.Lexicon.CacheSize = 0
	}
	if cfg.Database.URL == "" {
		logger.Warn("Database URL is not set in config.")
	}

	Cfg = cfg

	logger.Info("Config loaded successfully",
		slog.String("server_port", Cfg.Server.Port),
		slog.Int("review_limit", Cfg.App.ReviewLimit),
		slog.String("default_lang", Cfg.App.DefaultLang),
		slog.String("jmdict_path", Cfg.Lexicon.JMdictPath),
		slog.Bool("chinese_enabled", Cfg.Lexicon.CedictPath != ""),
	)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.url", "")
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.max_upload_bytes", DefaultMaxUploadBytes)
	v.SetDefault("app.review_limit", DefaultAppReviewLimit)
	v.SetDefault("app.default_lang", DefaultLang)
	v.SetDefault("app.heatmap_days", DefaultHeatmapDays)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("lexicon.jmdict_path", DefaultLexiconPath)
	v.SetDefault("lexicon.cedict_path", "")
	v.SetDefault("lexicon.cache_size", DefaultLookupCacheSize)
}

// LogLevel は設定値を slog のレベルに変換する
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
