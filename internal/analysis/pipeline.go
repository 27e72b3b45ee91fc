// internal/analysis/pipeline.go
package analysis

import (
	"context"
	"strings"

	"okura/internal/model"
	"okura/internal/tokenizer"
)

// Pipeline はテキストを行ごとに分割し、トークン化と辞書照合を行う
type Pipeline struct {
	tokenizer tokenizer.Tokenizer
	resolver  Resolver
}

func NewPipeline(t tokenizer.Tokenizer, r Resolver) *Pipeline {
	return &Pipeline{tokenizer: t, resolver: r}
}

// Annotate は raw を解析する。空行は空のトークン1つで表し、行数を保つ
func (p *Pipeline) Annotate(ctx context.Context, raw string) model.Document {
	return annotateLines(raw, func(line string) []model.AnnotatedToken {
		tokens := p.tokenizer.Tokenize(line)
		annotated := make([]model.AnnotatedToken, 0, len(tokens))
		for _, tok := range tokens {
			annotated = append(annotated, p.resolver.Resolve(ctx, tok))
		}
		return annotated
	})
}

// plainDocument は各行を単語でないトークン1つにした Document を返す
func plainDocument(raw string) model.Document {
	return annotateLines(raw, func(line string) []model.AnnotatedToken {
		return []model.AnnotatedToken{{Text: line}}
	})
}

func annotateLines(raw string, fn func(line string) []model.AnnotatedToken) model.Document {
	doc := model.Document{RawText: raw, Lines: [][]model.AnnotatedToken{}}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			doc.Lines = append(doc.Lines, []model.AnnotatedToken{{Text: ""}})
			continue
		}
		doc.Lines = append(doc.Lines, fn(line))
	}
	return doc
}
