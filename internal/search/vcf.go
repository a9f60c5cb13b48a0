package search

import (
	"time"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
	"github.com/ef81sp/holorenju/internal/rules"
	"github.com/ef81sp/holorenju/internal/shape"
)

// TimeLimiter is spec §4.10's "TimeLimiter{startTime, timeLimit}" threaded
// through the VCF/VCT/Mise-VCF recursions.
type TimeLimiter struct {
	Start time.Time
	Limit time.Duration
}

// Expired reports whether the limiter's budget has elapsed.
func (tl TimeLimiter) Expired() bool {
	return time.Since(tl.Start) >= tl.Limit
}

// Sequence is spec §3's VCF/VCT sequence: an ordered list of attacking
// and defending moves starting and ending with an attacker move.
type Sequence struct {
	Moves           []board.Move
	FirstMove       board.Move
	IsForbiddenTrap bool
	// Branches holds, for VCT sequences built with collectBranches=true,
	// alternative defender replies at a given even index (spec §3).
	Branches []Branch
}

// Branch is an alternative defender continuation recorded by the VCT
// prover when collectBranches is enabled (spec §4.11 step 4).
type Branch struct {
	DefenseIndex int
	Moves        []board.Move
}

// DefaultVCFMaxDepth is spec §4.10's "default 8".
const DefaultVCFMaxDepth = 8

// ReviewVCFMaxDepth is spec §4.10's "extended to 16 for review".
const ReviewVCFMaxDepth = 16

// FindVCFSequence is the VCF prover (spec §4.10 / C11): iterative
// deepening over findVCFMoveRecursive, returning the shortest winning
// four-threat chain for color, or nil if none is found within maxDepth
// and tl's time budget.
func FindVCFSequence(b *board.Board, color board.Color, maxDepth int, tl TimeLimiter) *Sequence {
	for d := 1; d <= maxDepth; d++ {
		if tl.Expired() {
			return nil
		}
		if seq := findVCFMoveRecursive(b, color, d, tl, nil); seq != nil {
			seq.FirstMove = seq.Moves[0]
			return seq
		}
	}
	return nil
}

// findFourMoves enumerates every empty cell adjacent to a stone which,
// placing color there, creates at least one four (consecutive or jump);
// for black, forbidden moves are dropped unless they complete a five
// (spec §4.10 step 1).
func findFourMoves(b *board.Board, color board.Color) []board.Move {
	var out []board.Move
	for _, m := range b.CandidateCells() {
		b.Place(m.Row, m.Col, color)
		four := false
		for _, ax := range lineutil.Axes {
			if shape.Classify(b, m.Row, m.Col, ax.DR, ax.DC, color).Kind >= shape.Four {
				four = true
				break
			}
		}
		five := four && rules.FiveAt(b, m.Row, m.Col, color)
		b.Undo(m.Row, m.Col)

		if !four {
			continue
		}
		if color == board.Black && !five {
			if res := rules.Default.CheckForbiddenMove(b, m.Row, m.Col); res.IsForbidden {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// defenseSquareForFour returns the unique cell that refutes the four
// axis just created at (r,c,axis), or false if the four is open (no
// defense exists, spec §4.10 step 2c).
func defenseSquareForFour(b *board.Board, r, c, dr, dc int, color board.Color) (board.Move, bool) {
	ax := shape.Classify(b, r, c, dr, dc, color)
	if ax.Kind != shape.Four {
		return board.Move{}, false
	}
	if ax.IsJump {
		return ax.Gap, true
	}
	if ax.Open1 && ax.Open2 {
		return board.Move{}, false // open four: no single defense
	}
	if ax.Open1 {
		return ax.End1, true
	}
	if ax.Open2 {
		return ax.End2, true
	}
	return board.Move{}, false
}

func findVCFMoveRecursive(b *board.Board, color board.Color, depthBudget int, tl TimeLimiter, path []board.Move) *Sequence {
	if tl.Expired() || depthBudget <= 0 {
		return nil
	}

	for _, m := range findFourMoves(b, color) {
		b.Place(m.Row, m.Col, color)
		seq := tryFourMove(b, m, color, depthBudget, tl, append(path, m))
		b.Undo(m.Row, m.Col)
		if seq != nil {
			return seq
		}
	}
	return nil
}

func tryFourMove(b *board.Board, m board.Move, color board.Color, depthBudget int, tl TimeLimiter, path []board.Move) *Sequence {
	if rules.FiveAt(b, m.Row, m.Col, color) {
		return &Sequence{Moves: append([]board.Move{}, path...)}
	}

	var defense board.Move
	found := false
	for _, ax := range lineutil.Axes {
		if d, ok := defenseSquareForFour(b, m.Row, m.Col, ax.DR, ax.DC, color); ok {
			defense = d
			found = true
			break
		}
	}
	if !found {
		// Open four: unstoppable.
		return &Sequence{Moves: append([]board.Move{}, path...)}
	}

	if color == board.White {
		if res := rules.Default.CheckForbiddenMove(b, defense.Row, defense.Col); res.IsForbidden {
			seq := append([]board.Move{}, path...)
			return &Sequence{Moves: seq, IsForbiddenTrap: true}
		}
	}

	opp := color.Opponent()
	b.Place(defense.Row, defense.Col, opp)
	defer b.Undo(defense.Row, defense.Col)

	if rules.FiveAt(b, defense.Row, defense.Col, opp) {
		return nil // attacker loses
	}
	if createsCounterFour(b, defense, opp) {
		return nil // attacker cannot continue
	}

	continuation := findVCFMoveRecursive(b, color, depthBudget-1, tl, append(path, defense))
	if continuation == nil {
		return nil
	}
	return continuation
}

func createsCounterFour(b *board.Board, m board.Move, color board.Color) bool {
	for _, ax := range lineutil.Axes {
		if shape.Classify(b, m.Row, m.Col, ax.DR, ax.DC, color).Kind >= shape.Four {
			return true
		}
	}
	return false
}
