// Package rules implements the Renju rule predicates that spec.md §6
// treats as external, black-box collaborators consumed through a narrow
// interface: five-in-a-row detection, black's forbidden-move detection
// (double-three, double-four, overline), and jump-four/jump-three
// detection. The component table (spec §2, C1) gives this a budget of its
// own, so — per the process's direction to resolve spec tension by
// recording the decision — this module implements the predicates
// concretely rather than leaving them unimplemented, but still exposes
// them behind the Checker interface spec §6 calls for, so an alternate
// rule engine could be substituted without touching package search.
//
// Every exported predicate here is self-contained: the candidate cell is
// Empty on entry, the predicate places the hypothetical stone, inspects
// it, and undoes it before returning, so "must not mutate the board"
// (spec §6) holds as an external contract while callers never have to
// pre-place. The unexported *At helpers assume the stone is already on
// the board (matching spec §4.1's "assumes board[r][c] == color" wording
// for countLine) and are shared between the exported predicates and
// CheckForbiddenMove, which places once and probes several patterns.
package rules

import (
	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
)

// ForbiddenKind classifies why a black move is forbidden.
type ForbiddenKind int

const (
	None ForbiddenKind = iota
	DoubleThree
	DoubleFour
	Overline
)

func (k ForbiddenKind) String() string {
	switch k {
	case DoubleThree:
		return "double-three"
	case DoubleFour:
		return "double-four"
	case Overline:
		return "overline"
	default:
		return "null"
	}
}

// ForbiddenResult is the outcome of a forbidden-move test.
type ForbiddenResult struct {
	IsForbidden bool
	Kind        ForbiddenKind
	// Positions lists the stones (including the candidate) that
	// participate in the violating pattern, for annotation purposes.
	Positions []board.Move
}

// Checker is the narrow rule interface spec §6 describes: the search core
// consumes Renju rule knowledge only through this seam.
type Checker interface {
	CheckFive(b *board.Board, r, c int, color board.Color) bool
	CheckWin(b *board.Board, m board.Move, color board.Color) bool
	CheckForbiddenMove(b *board.Board, r, c int) ForbiddenResult
	CheckJumpFour(b *board.Board, r, c, axisIndex int, color board.Color) bool
	CheckJumpThree(b *board.Board, r, c, axisIndex int, color board.Color) bool
}

// Default is the package-level Checker implementation; stateless, so a
// single instance can be shared across goroutines/searches.
var Default Checker = defaultChecker{}

type defaultChecker struct{}

func fiveAt(b *board.Board, r, c int, color board.Color) bool {
	for _, ax := range lineutil.Axes {
		if lineutil.CountLine(b, r, c, ax.DR, ax.DC, color) == 5 {
			return true
		}
	}
	return false
}

// CheckFive reports whether playing color at empty cell (r,c) produces
// exactly five in a row on some axis.
func (defaultChecker) CheckFive(b *board.Board, r, c int, color board.Color) bool {
	b.Place(r, c, color)
	defer b.Undo(r, c)
	return fiveAt(b, r, c, color)
}

// FiveAt reports whether the stone already on the board at (r,c) completes
// a win for color — exactly five for black (an overline is forbidden, not
// a win), any run of five or more for white, matching CheckWin. Unlike
// CheckFive/CheckWin, it does not place or undo — the search core uses it
// to test a move that has already been applied in place (spec §4.8 step
// 2), where placing again would double-place the stone.
func FiveAt(b *board.Board, r, c int, color board.Color) bool {
	if color == board.Black {
		return fiveAt(b, r, c, color)
	}
	for _, ax := range lineutil.Axes {
		if lineutil.CountLine(b, r, c, ax.DR, ax.DC, color) >= 5 {
			return true
		}
	}
	return false
}

// CheckWin reports whether m completes a win for color. For black this is
// exactly five (an overline is forbidden, not a win); for white any run
// of five or more wins.
func (c defaultChecker) CheckWin(b *board.Board, m board.Move, color board.Color) bool {
	if color == board.Black {
		return c.CheckFive(b, m.Row, m.Col, color)
	}
	b.Place(m.Row, m.Col, color)
	defer b.Undo(m.Row, m.Col)
	for _, ax := range lineutil.Axes {
		if lineutil.CountLine(b, m.Row, m.Col, ax.DR, ax.DC, color) >= 5 {
			return true
		}
	}
	return false
}
