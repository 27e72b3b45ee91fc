package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"okura/internal/config"
	"okura/internal/lexicon"
)

var (
	jmdictXML string
	tagsFile  string
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the dictionary index used for text analysis",
}

var dictImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JMdict XML file into the lexicon index",
	Long: `JMdict (JMdict_e.xml) を読み込み、lexicon.jmdict_path の SQLite 索引に書き込みます。
同じファイルを何度取り込んでも結果は変わりません。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLexicon(cmd.Context(), jmdictXML, func(ctx context.Context, d *lexicon.SQLiteDictionary, r io.Reader) (int, error) {
			return d.ImportJMdict(ctx, r, slog.Default())
		}, "entries")
	},
}

var dictTagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Attach tags (e.g. jlpt-n3) to dictionary forms from a TSV file",
	Long:  `"見出し語<TAB>タグ" 形式のファイルを読み込み、該当するエントリにタグを付けます。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLexicon(cmd.Context(), tagsFile, func(ctx context.Context, d *lexicon.SQLiteDictionary, r io.Reader) (int, error) {
			return d.ImportTags(ctx, r, slog.Default())
		}, "tagged")
	},
}

func init() {
	dictImportCmd.Flags().StringVar(&jmdictXML, "xml", "", "path to JMdict XML")
	dictImportCmd.MarkFlagRequired("xml")
	dictTagCmd.Flags().StringVar(&tagsFile, "file", "", "path to tag TSV")
	dictTagCmd.MarkFlagRequired("file")

	dictCmd.AddCommand(dictImportCmd, dictTagCmd)
	rootCmd.AddCommand(dictCmd)
}

// withLexicon は入力ファイルと索引を開いて fn を実行する
func withLexicon(ctx context.Context, path string, fn func(context.Context, *lexicon.SQLiteDictionary, io.Reader) (int, error), unit string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	dest := config.Cfg.Lexicon.JMdictPath
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create lexicon directory: %w", err)
	}
	d, err := lexicon.OpenSQLite(dest)
	if err != nil {
		return fmt.Errorf("failed to open lexicon %s: %w", dest, err)
	}
	defer d.Close()

	n, err := fn(ctx, d, f)
	if err != nil {
		return err
	}
	slog.Info("Lexicon updated", slog.String("source", path), slog.String("lexicon", dest), slog.Int(unit, n))
	fmt.Printf("%d %s written to %s\n", n, unit, dest)
	return nil
}
