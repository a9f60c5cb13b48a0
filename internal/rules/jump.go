package rules

import (
	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
)

func jumpFourAt(b *board.Board, r, c, axisIndex int, color board.Color) bool {
	ax := lineutil.Axes[axisIndex]
	_, ok := lineutil.FindJumpGap(b, r, c, ax.DR, ax.DC, color)
	return ok
}

// CheckJumpFour reports whether playing color at empty cell (r,c)
// produces a jump-four pattern (●●●·● / ●●·●● / ●·●●●, spec GLOSSARY) on
// the given axis — four stones of color with a single interior gap that
// would complete five if filled.
func (defaultChecker) CheckJumpFour(b *board.Board, r, c, axisIndex int, color board.Color) bool {
	b.Place(r, c, color)
	defer b.Undo(r, c)
	return jumpFourAt(b, r, c, axisIndex, color)
}

func jumpThreeAt(b *board.Board, r, c, axisIndex int, color board.Color) bool {
	ax := lineutil.Axes[axisIndex]

	for start := -3; start <= 0; start++ {
		cells := make([]board.Move, 4)
		stones, gapIdx, contains, ok := 0, -1, false, true
		for i := 0; i < 4; i++ {
			rr, cc := r+ax.DR*(start+i), c+ax.DC*(start+i)
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
		if !ok || !contains || stones != 3 || gapIdx <= 0 || gapIdx == 3 {
			continue
		}
		// The gap must have at least one empty cell beyond the window on
		// either side once filled, so the resulting four is not dead
		// (mirrors the "live" requirement of an open three).
		beforeR, beforeC := cells[0].Row-ax.DR, cells[0].Col-ax.DC
		afterR, afterC := cells[3].Row+ax.DR, cells[3].Col+ax.DC
		beforeOpen := board.IsValidPosition(beforeR, beforeC) && b.At(beforeR, beforeC) == board.Empty
		afterOpen := board.IsValidPosition(afterR, afterC) && b.At(afterR, afterC) == board.Empty
		if beforeOpen || afterOpen {
			return true
		}
	}
	return false
}

// CheckJumpThree reports whether playing color at empty cell (r,c)
// produces a jump-three pattern on the given axis: three stones of color
// within a 4-cell window with a single interior gap, such that filling
// the gap produces four in a row with at least one open end (i.e. the
// jump-three is "live", capable of becoming an open four one move later —
// the three-stone analogue of findJumpGap's four-stone window).
func (defaultChecker) CheckJumpThree(b *board.Board, r, c, axisIndex int, color board.Color) bool {
	b.Place(r, c, color)
	defer b.Undo(r, c)
	return jumpThreeAt(b, r, c, axisIndex, color)
}
