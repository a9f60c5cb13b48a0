package search

import "github.com/ef81sp/holorenju/internal/board"

// MaxKillerDepth bounds the killer table (spec §3's D_MAX); depths beyond
// it are a no-op, per spec.
const MaxKillerDepth = 128

// killersPerDepth is spec §3's "LIFO list of up to two moves".
const killersPerDepth = 2

// KillerTable records, per search depth, up to two moves that caused a
// beta cutoff (spec §3). count tracks how many of each depth's two slots
// are actually populated, since the zero Move is itself a valid board
// cell (board.Move.IsZero's caveat) and so cannot double as "unset".
type KillerTable struct {
	slots [MaxKillerDepth][killersPerDepth]board.Move
	count [MaxKillerDepth]int
}

// NewKillerTable returns an empty killer table.
func NewKillerTable() *KillerTable {
	return &KillerTable{}
}

// At returns the killer moves recorded for depth, best (most recent)
// first.
func (kt *KillerTable) At(depth int) []board.Move {
	if depth < 0 || depth >= MaxKillerDepth {
		return nil
	}
	return kt.slots[depth][:kt.count[depth]]
}

// Record pushes m to the front of depth's killer list, rejecting
// duplicates, and is a no-op beyond MaxKillerDepth.
func (kt *KillerTable) Record(depth int, m board.Move) {
	if depth < 0 || depth >= MaxKillerDepth {
		return
	}
	slot := &kt.slots[depth]
	n := kt.count[depth]
	if n > 0 && slot[0] == m {
		return
	}
	if n > 1 && slot[1] == m {
		slot[0], slot[1] = m, slot[0]
		return
	}
	slot[1] = slot[0]
	slot[0] = m
	if kt.count[depth] < killersPerDepth {
		kt.count[depth]++
	}
}

// HistoryTable is the 15x15 additive history-heuristic grid (spec §3).
type HistoryTable struct {
	Grid [board.Size][board.Size]int
}

// NewHistoryTable returns a zeroed history table.
func NewHistoryTable() *HistoryTable {
	return &HistoryTable{}
}

// Record adds depth^2 to m's history score on a beta cutoff (spec §3).
func (ht *HistoryTable) Record(m board.Move, depth int) {
	ht.Grid[m.Row][m.Col] += depth * depth
}

// Clear zeroes the table. NewContext builds a fresh table for every
// top-level search instead of clearing a shared one.
func (ht *HistoryTable) Clear() {
	ht.Grid = [board.Size][board.Size]int{}
}
