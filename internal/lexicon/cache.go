// internal/lexicon/cache.go
package lexicon

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedDictionary は検索結果を LRU でキャッシュする Dictionary。
// 見つからなかった結果もキャッシュするが、検索エラーはキャッシュしない
type CachedDictionary struct {
	next  Dictionary
	cache *lru.Cache[string, Result]
}

// NewCachedDictionary は size 件まで保持するキャッシュで next を包む
func NewCachedDictionary(next Dictionary, size int) (*CachedDictionary, error) {
	cache, err := lru.New[string, Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup cache: %w", err)
	}
	return &CachedDictionary{next: next, cache: cache}, nil
}

func (c *CachedDictionary) Lookup(ctx context.Context, form string) Result {
	if res, ok := c.cache.Get(form); ok {
		return res
	}
	res := c.next.Lookup(ctx, form)
	if res.Err == nil {
		c.cache.Add(form, res)
	}
	return res
}
