// Package threat implements the threat detector (spec §4.4 / C5): given a
// board and a color, it enumerates the deduplicated squares where that
// color would complete an open four, a four, an open three, or a
// four-three ("mise") setup. The iterative-deepening driver calls this
// with color = opponent to find what the side to move must defend
// against; the pattern scorer's mandatory-defense gate also reuses it.
package threat

import (
	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
	"github.com/ef81sp/holorenju/internal/shape"
)

// Set holds the deduplicated threat squares for one color, in the scan
// order spec §4.4 specifies: open-four first, then four, then open-three.
// A square recorded in OpenFours is not repeated in Fours; OpenThrees and
// Mises are filled independently of both, so a square can appear there
// as well as in OpenFours or Fours.
type Set struct {
	OpenFours  []board.Move
	Fours      []board.Move
	OpenThrees []board.Move
	Mises      []board.Move
}

// Detect scans every empty cell adjacent to an existing stone and
// classifies what color achieves by playing there.
func Detect(b *board.Board, color board.Color) Set {
	var set Set
	for _, m := range b.CandidateCells() {
		b.Place(m.Row, m.Col, color)
		axes := classifyAll(b, m.Row, m.Col, color)
		b.Undo(m.Row, m.Col)

		bestFour := shape.None
		bestThree := shape.None
		openFour := false
		for _, ax := range axes {
			if ax.Kind == shape.Five {
				continue // five is a win, not a threat to enumerate here
			}
			if ax.Kind == shape.Four {
				bestFour = shape.Four
				if ax.IsOpen() {
					openFour = true
				}
			}
			if ax.Kind == shape.Three && ax.IsOpen() {
				bestThree = shape.Three
			}
		}

		if openFour {
			set.OpenFours = append(set.OpenFours, m)
		} else if bestFour == shape.Four {
			set.Fours = append(set.Fours, m)
		}
		if bestThree == shape.Three {
			set.OpenThrees = append(set.OpenThrees, m)
		}
		if bestFour == shape.Four && bestThree == shape.Three {
			set.Mises = append(set.Mises, m)
		}
	}
	return set
}

func classifyAll(b *board.Board, r, c int, color board.Color) [4]shape.Axis {
	var out [4]shape.Axis
	for i, ax := range lineutil.Axes {
		out[i] = shape.Classify(b, r, c, ax.DR, ax.DC, color)
	}
	return out
}

// DefenseSquares returns the squares that neutralize the single strongest
// threat in set, in the priority order open-four > four > open-three,
// matching the mandatory-defense gate's exception ranking (spec §4.3).
// Used by the pattern scorer's mandatory-defense gate.
func (s Set) DefenseSquares() []board.Move {
	switch {
	case len(s.OpenFours) > 0:
		return s.OpenFours
	case len(s.Fours) > 0:
		return s.Fours
	case len(s.OpenThrees) > 0:
		return s.OpenThrees
	default:
		return nil
	}
}

// HasAny reports whether any threat was detected at all.
func (s Set) HasAny() bool {
	return len(s.OpenFours) > 0 || len(s.Fours) > 0 || len(s.OpenThrees) > 0
}
