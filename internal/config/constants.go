// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "okura"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultAppReviewLimit  = 20
	DefaultLang            = "jp"
	DefaultLexiconPath     = "data/jmdict.sqlite"
	DefaultLookupCacheSize = 4096
	DefaultHeatmapDays     = 30
	DefaultMaxUploadBytes  = 10 << 20
)
