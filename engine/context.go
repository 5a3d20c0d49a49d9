package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

// searchContext is the per-Engine mutable search state. One instance per
// Engine, reset at the start of every top-level request, never shared.
type searchContext struct {
	nodes   uint64
	killers killerTable
	history historyTable
	cache   *positionCache // nil unless Options.UseCache
	aborted bool
}

func (sc *searchContext) reset() {
	sc.nodes = 0
	sc.aborted = false
	sc.killers.reset()
	sc.history.reset()
	if sc.cache != nil {
		sc.cache.nextSearch()
	}
}

// killerTable holds the last two distinct moves that caused a beta cutoff
// anywhere in the current search, most recent first.
// Killers are tracked for the whole search rather than per ply; per-ply
// slots are the usual refinement if that ever changes.
type killerTable struct {
	slots [2]dragon.Move
}

func (k *killerTable) insert(m dragon.Move) {
	if m == k.slots[0] || m == k.slots[1] {
		return
	}
	k.slots[1] = k.slots[0]
	k.slots[0] = m
}

func (k *killerTable) contains(m dragon.Move) bool {
	return m != dragon.Move(0) && (m == k.slots[0] || m == k.slots[1])
}

func (k *killerTable) reset() {
	k.slots[0] = dragon.Move(0)
	k.slots[1] = dragon.Move(0)
}

// historyTable accumulates cutoff credit per (from, to) square pair. Each
// beta cutoff adds depth squared, so deeper cutoffs weigh more. Values only
// grow within a search run; the table is zeroed between requests.
type historyTable [64][64]int32

func (h *historyTable) add(m dragon.Move, depth int8) {
	h[m.From()][m.To()] += int32(depth) * int32(depth)
}

func (h *historyTable) get(m dragon.Move) int32 {
	return h[m.From()][m.To()]
}

func (h *historyTable) reset() {
	*h = historyTable{}
}
