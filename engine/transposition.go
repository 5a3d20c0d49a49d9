package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

// Optional within-search position cache. Off by default; enable through
// Options.UseCache. Entries never survive a search: every probe requires
// the current age, so a hit can only come from the search that wrote it.
// Single-owner, no locking needed.

type boundKind int8

const (
	boundExact boundKind = iota
	boundLower
	boundUpper
)

type cacheEntry struct {
	hash  uint64
	score int32
	move  dragon.Move
	depth int8
	bound boundKind
	age   uint8
}

type positionCache struct {
	entries []cacheEntry
	age     uint8
}

func newPositionCache(size int) *positionCache {
	if size < 1 {
		size = 1
	}
	return &positionCache{entries: make([]cacheEntry, size)}
}

// nextSearch invalidates all stored entries by bumping the age; stale
// entries become eviction victims.
func (c *positionCache) nextSearch() {
	c.age++
}

// probe returns an entry usable at the given draft: same position, written
// by the current search, searched at least as deep.
func (c *positionCache) probe(hash uint64, depth int8) (cacheEntry, bool) {
	e := c.entries[hash%uint64(len(c.entries))]
	if e.hash != hash || e.age != c.age || e.depth < depth {
		return cacheEntry{}, false
	}
	return e, true
}

// store writes at most once per key per search: the first write for a hash
// within one age wins. Colliding keys evict stale ages or shallower drafts.
func (c *positionCache) store(hash uint64, depth int8, score int32, move dragon.Move, bound boundKind) {
	slot := &c.entries[hash%uint64(len(c.entries))]
	if slot.hash == hash && slot.age == c.age {
		return
	}
	if slot.age == c.age && slot.depth > depth {
		return
	}
	*slot = cacheEntry{
		hash:  hash,
		score: score,
		move:  move,
		depth: depth,
		bound: bound,
		age:   c.age,
	}
}
