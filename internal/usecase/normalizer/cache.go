package normalizer

import (
	"sync"

	"locheck/internal/domain"
)

type direction string

const (
	dirSource direction = "source"
	dirTarget direction = "target"
)

// tokenKey identifies one memoized tokenization. The key covers every input
// that affects the result, so a stale entry can never be served.
type tokenKey struct {
	segKey  string
	dir     direction
	text    string
	version int64
}

// tokenCache memoizes Tokenize results for a single document version.
// Entries are dropped wholesale when the version stamp moves. The mutex makes
// a shared Service safe to call from the UI binding and a background job at
// the same time; callers racing with different version stamps just pay
// recomputation.
type tokenCache struct {
	mu      sync.Mutex
	version int64
	entries map[tokenKey][]domain.SegmentToken
}

func newTokenCache() *tokenCache {
	return &tokenCache{entries: map[tokenKey][]domain.SegmentToken{}}
}

func (c *tokenCache) tokens(segKey string, dir direction, text string, version int64) []domain.SegmentToken {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version != c.version {
		c.version = version
		c.entries = map[tokenKey][]domain.SegmentToken{}
	}
	k := tokenKey{segKey: segKey, dir: dir, text: text, version: version}
	if toks, ok := c.entries[k]; ok {
		return toks
	}
	toks := Tokenize(text)
	c.entries[k] = toks
	return toks
}
