package rules

import (
	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
)

// CheckForbiddenMove reports whether empty cell (r,c) is forbidden for
// black: double-three, double-four, or overline (spec GLOSSARY). White
// never has forbidden moves. Completing an exact five overrides every
// forbidden category (spec §4.5 step 2, §6).
func (defaultChecker) CheckForbiddenMove(b *board.Board, r, c int) ForbiddenResult {
	b.Place(r, c, board.Black)
	defer b.Undo(r, c)

	if fiveAt(b, r, c, board.Black) {
		return ForbiddenResult{}
	}

	fourAxes := make([]int, 0, 4)
	threeAxes := make([]int, 0, 4)

	for axIdx, ax := range lineutil.Axes {
		n := lineutil.CountLine(b, r, c, ax.DR, ax.DC, board.Black)
		if n >= 6 {
			return ForbiddenResult{
				IsForbidden: true,
				Kind:        Overline,
				Positions:   []board.Move{{Row: r, Col: c}},
			}
		}
		if n == 4 {
			ends := lineutil.CheckEnds(b, r, c, ax.DR, ax.DC, board.Black)
			if ends.End1Open || ends.End2Open {
				fourAxes = append(fourAxes, axIdx)
				continue
			}
		}
		if n == 3 {
			ends := lineutil.CheckEnds(b, r, c, ax.DR, ax.DC, board.Black)
			if ends.End1Open && ends.End2Open {
				threeAxes = append(threeAxes, axIdx)
				continue
			}
		}
		if jumpFourAt(b, r, c, axIdx, board.Black) {
			fourAxes = append(fourAxes, axIdx)
			continue
		}
		if jumpThreeAt(b, r, c, axIdx, board.Black) {
			threeAxes = append(threeAxes, axIdx)
		}
	}

	if len(fourAxes) >= 2 {
		return ForbiddenResult{
			IsForbidden: true,
			Kind:        DoubleFour,
			Positions:   []board.Move{{Row: r, Col: c}},
		}
	}
	if len(threeAxes) >= 2 {
		return ForbiddenResult{
			IsForbidden: true,
			Kind:        DoubleThree,
			Positions:   []board.Move{{Row: r, Col: c}},
		}
	}
	return ForbiddenResult{}
}
