package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"okura/internal/config"
)

var (
	configPath string
	verbose    bool
)

// rootCmd はサブコマンドなしで呼ばれたときのコマンド
var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "Reading assistant that turns Japanese and Chinese text into spaced-repetition cards",
	Long: `okura は日本語・中国語のテキストを形態素解析して辞書情報を付け、
気になった単語を学習リストに追加して SM-2 で復習するためのサーバーです。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 設定ファイル読み込み用の一時的なロガー
		tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		if err := config.LoadConfig(configPath, tempLogger); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		level := config.Cfg.LogLevel()
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(newLogger(level))
		return nil
	},
}

// Execute はルートコマンドを実行する。main から呼ばれる
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&configPath, "config", "c", "", "config.yaml を探すディレクトリ (既定: ./configs, .)")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// newLogger は APP_ENV=dev なら tint、それ以外は JSON のロガーを作る
func newLogger(level slog.Level) *slog.Logger {
	var handler slog.Handler
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
	}
	return slog.New(handler)
}
