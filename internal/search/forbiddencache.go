package search

import (
	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/rules"
)

// forbiddenKey is the composite key spec §3's ForbiddenCache uses:
// (position hash, row, col).
type forbiddenKey struct {
	hash    uint64
	rowCol  int32
}

func makeForbiddenKey(hash uint64, r, c int) forbiddenKey {
	return forbiddenKey{hash: hash, rowCol: int32(r)<<16 | int32(c)}
}

// forbiddenCacheLimit is spec §4.7's "when size exceeds 100_000, wipe the
// table".
const forbiddenCacheLimit = 100_000

// ForbiddenCache memoizes CheckForbiddenMove results per position hash
// (spec §4.7 / C8). Cleared at the start of every top-level search (spec
// §3: "cleared at the start of each top-level search").
type ForbiddenCache struct {
	entries map[forbiddenKey]rules.ForbiddenResult
}

// NewForbiddenCache returns an empty cache.
func NewForbiddenCache() *ForbiddenCache {
	return &ForbiddenCache{entries: make(map[forbiddenKey]rules.ForbiddenResult)}
}

// Clear empties the cache; Set calls it when the cache is full.
// NewContext builds a fresh cache for every top-level search.
func (fc *ForbiddenCache) Clear() {
	fc.entries = make(map[forbiddenKey]rules.ForbiddenResult)
}

// Get returns the memoized result for (hash, r, c), if any.
func (fc *ForbiddenCache) Get(hash uint64, r, c int) (rules.ForbiddenResult, bool) {
	res, ok := fc.entries[makeForbiddenKey(hash, r, c)]
	return res, ok
}

// Set stores result for (hash, r, c), wiping the whole table first if it
// has grown past forbiddenCacheLimit (spec §4.7: "simpler than LRU and
// cheap").
func (fc *ForbiddenCache) Set(hash uint64, r, c int, result rules.ForbiddenResult) {
	if len(fc.entries) >= forbiddenCacheLimit {
		fc.Clear()
	}
	fc.entries[makeForbiddenKey(hash, r, c)] = result
}

// CheckForbiddenMoveWithCache is spec §4.7's wrapper: a memoized
// checkForbiddenMove, falling back to the rule predicate on a cache miss.
func (fc *ForbiddenCache) CheckForbiddenMoveWithCache(b *board.Board, hash uint64, r, c int) rules.ForbiddenResult {
	if res, ok := fc.Get(hash, r, c); ok {
		return res
	}
	res := rules.Default.CheckForbiddenMove(b, r, c)
	fc.Set(hash, r, c, res)
	return res
}
