// Package shape classifies the pattern a just-placed stone forms along a
// single axis — two, three, four, or five in a row, consecutive or with
// the single gap of a jump pattern (spec GLOSSARY) — and whether each end
// of the run is open. Both the pattern scorer (C4) and the threat
// detector (C5) build on this single classification so the two agree on
// what counts as, say, an open three; duplicating the classification in
// each package risked exactly the drift spec §9's "per-axis direction
// tables" design note warns against.
package shape

import (
	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
)

// Kind ranks pattern strength; comparing Kind values with > tells you
// which of two patterns on the same axis is stronger.
type Kind int

const (
	None Kind = iota
	Two
	Three
	Four
	Five
)

// Axis is a classified pattern on one axis through the just-placed stone.
type Axis struct {
	Kind         Kind
	Open1, Open2 bool
	IsJump       bool
	// Gap is the single defense/completion square of a jump pattern; zero
	// value when IsJump is false.
	Gap board.Move
	// End1, End2 are the cells just past each end of a consecutive run —
	// the completion squares of an open three/four, or the single
	// defense square of a closed four. Zero value when IsJump is true
	// (Gap is the relevant square there instead).
	End1, End2 board.Move
}

// IsOpen reports whether both ends of a consecutive (non-jump) pattern are
// open — the "open three" / "open four" condition of spec GLOSSARY. Jump
// patterns are never "open": their unique completion point is the gap.
func (a Axis) IsOpen() bool {
	return !a.IsJump && a.Open1 && a.Open2
}

// Classify inspects the axis (dr,dc) through (r,c), which must already
// hold color, and returns the strongest pattern found — preferring a
// longer consecutive run, and falling back to a jump pattern only when it
// would outrank the consecutive classification.
func Classify(b *board.Board, r, c, dr, dc int, color board.Color) Axis {
	n := lineutil.CountLine(b, r, c, dr, dc, color)

	best := Axis{Kind: None}
	switch {
	case n >= 5:
		best = Axis{Kind: Five}
	case n == 4:
		ends := lineutil.CheckEnds(b, r, c, dr, dc, color)
		best = Axis{Kind: Four, Open1: ends.End1Open, Open2: ends.End2Open, End1: ends.End1, End2: ends.End2}
	case n == 3:
		ends := lineutil.CheckEnds(b, r, c, dr, dc, color)
		best = Axis{Kind: Three, Open1: ends.End1Open, Open2: ends.End2Open, End1: ends.End1, End2: ends.End2}
	case n == 2:
		ends := lineutil.CheckEnds(b, r, c, dr, dc, color)
		best = Axis{Kind: Two, Open1: ends.End1Open, Open2: ends.End2Open, End1: ends.End1, End2: ends.End2}
	}

	if best.Kind < Four {
		if gap, ok := lineutil.FindJumpGap(b, r, c, dr, dc, color); ok {
			jump := Axis{Kind: Four, IsJump: true, Gap: gap}
			if jump.Kind > best.Kind {
				best = jump
			}
		}
	}
	if best.Kind < Three {
		if gap, ok := findJumpThreeGap(b, r, c, dr, dc, color); ok {
			jump := Axis{Kind: Three, IsJump: true, Gap: gap}
			if jump.Kind > best.Kind {
				best = jump
			}
		}
	}
	return best
}

// findJumpThreeGap looks for a live jump-three pattern — three stones of
// color within a 4-cell window with a single gap, where filling the gap
// would leave at least one open extension beyond the window (so the
// resulting four is not dead). Returns the gap cell.
func findJumpThreeGap(b *board.Board, r, c, dr, dc int, color board.Color) (board.Move, bool) {
	for start := -3; start <= 0; start++ {
		cells := make([]board.Move, 4)
		stones, gapIdx, contains, ok := 0, -1, false, true
		for i := 0; i < 4; i++ {
			rr, cc := r+dr*(start+i), c+dc*(start+i)
			if !board.IsValidPosition(rr, cc) {
				ok = false
				break
			}
			cells[i] = board.Move{Row: rr, Col: cc}
			if rr == r && cc == c {
				contains = true
			}
			switch b.At(rr, cc) {
			case color:
				stones++
			case board.Empty:
				if gapIdx != -1 {
					ok = false
				}
				gapIdx = i
			default:
				ok = false
			}
			if !ok {
				break
			}
		}
		if !ok || !contains || stones != 3 || gapIdx == -1 {
			continue
		}
		beforeR, beforeC := cells[0].Row-dr, cells[0].Col-dc
		afterR, afterC := cells[3].Row+dr, cells[3].Col+dc
		beforeOpen := board.IsValidPosition(beforeR, beforeC) && b.At(beforeR, beforeC) == board.Empty
		afterOpen := board.IsValidPosition(afterR, afterC) && b.At(afterR, afterC) == board.Empty
		if beforeOpen || afterOpen {
			return cells[gapIdx], true
		}
	}
	return board.Move{}, false
}
