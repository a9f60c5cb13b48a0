package pattern

import (
	"math"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
	"github.com/ef81sp/holorenju/internal/rules"
	"github.com/ef81sp/holorenju/internal/shape"
	"github.com/ef81sp/holorenju/internal/threat"
)

// NegInf stands in for spec §4.3's "score = −∞" mandatory-defense gate
// result. A true -Inf would poison every arithmetic combination
// (aggregate sums, the ×1.5/×1.05 multipliers); this is negative enough
// to always lose a comparison against any real pattern score yet still
// survive being summed or scaled without overflowing.
const NegInf = math.MinInt32 / 4

// axesOf classifies all four axes through (r,c), which must already hold
// color.
func axesOf(b *board.Board, r, c int, color board.Color) [4]shape.Axis {
	var out [4]shape.Axis
	for i, ax := range lineutil.Axes {
		out[i] = shape.Classify(b, r, c, ax.DR, ax.DC, color)
	}
	return out
}

func isFakeThree(b *board.Board, ax shape.Axis, color board.Color) bool {
	if color != board.Black || ax.IsJump || ax.Kind != shape.Three || !ax.IsOpen() {
		return false
	}
	end1 := rules.Default.CheckForbiddenMove(b, ax.End1.Row, ax.End1.Col)
	end2 := rules.Default.CheckForbiddenMove(b, ax.End2.Row, ax.End2.Col)
	return end1.IsForbidden && end2.IsForbidden
}

// EvaluateMove scores the stone color just placed at (r,c) — (r,c) must
// already hold color on entry, and holds color again on return; any
// bookkeeping EvaluateMove needs to peek at the pre-move board is undone
// before it returns (spec §6: rule predicates must not leave the board
// mutated). It implements spec §4.3's evaluatePosition(board, r, c,
// color, options): per-axis pattern scores, diagonal bias, center bonus,
// and every aggregate bonus/penalty, finishing with the mandatory-defense
// gate.
func EvaluateMove(b *board.Board, r, c int, color board.Color, opts Options) (int, Breakdown) {
	axes := axesOf(b, r, c, color)

	var bk Breakdown
	base := 0.0
	fourAxisCount := 0
	openThreeAxisCount := 0
	fakeThreeAxisCount := 0

	for i, ax := range axes {
		if ax.Kind == shape.None {
			continue
		}
		s := float64(axisScore(ax))
		diag := lineutil.IsDiagonal(i)
		if diag {
			s *= DiagonalMultiplier
		}
		base += s
		bk.Axes = append(bk.Axes, AxisDetail{
			AxisIndex: i, Kind: ax.Kind, Open1: ax.Open1, Open2: ax.Open2,
			IsJump: ax.IsJump, BaseScore: axisScore(ax), Diagonal: diag,
		})

		if ax.Kind == shape.Four {
			fourAxisCount++
		}
		if ax.Kind == shape.Three && ax.IsOpen() {
			if isFakeThree(b, ax, color) {
				fakeThreeAxisCount++
			} else {
				openThreeAxisCount++
			}
		}
	}

	bk.CenterBonus = centerBonus(r, c)
	total := base + float64(bk.CenterBonus)

	// Single-four penalty: an isolated four with no companion open three
	// is discouraged so the search doesn't waste tempo on checks with no
	// follow-up.
	if opts.EnableSingleFourPenalty && fourAxisCount == 1 && openThreeAxisCount == 0 {
		for _, ax := range axes {
			if ax.Kind == shape.Four {
				penalty := float64(axisScore(ax)) * (1 - opts.SingleFourPenaltyMultiplier)
				total -= penalty
				bk.SingleFourPenaltyApplied = true
			}
		}
	}

	// Four-three bonus: a four on one axis plus a genuine (non-fake)
	// open three on another wins outright for either color.
	if fourAxisCount >= 1 && openThreeAxisCount >= 1 {
		bk.FourThreeBonus = FourThreeBonus
		total += float64(FourThreeBonus)
	}

	if opts.EnableMultiThreat {
		strongAxes := fourAxisCount + openThreeAxisCount
		if strongAxes >= 2 {
			bk.MultiThreatBonus = MultiThreatPerAxisBonus * (strongAxes - 1)
			total += float64(bk.MultiThreatBonus)
		}
	}

	// Peek at the pre-move board to learn what the opponent already
	// threatened and whether this move defends it; undo/redo nets zero.
	b.Undo(r, c)
	oppThreatsBefore := threat.Detect(b, color.Opponent())
	blocksOpenThree := containsMove(oppThreatsBefore.OpenThrees, r, c)
	mandatoryDefenseSquares := oppThreatsBefore.DefenseSquares()
	occupiesDefense := containsMove(mandatoryDefenseSquares, r, c)
	if opts.EnableMiseThreat && containsMove(oppThreatsBefore.Mises, r, c) {
		occupiesDefense = true
	}
	b.Place(r, c, color)

	if opts.EnableCounterFour && blocksOpenThree && fourAxisCount >= 1 {
		total *= CounterFourMultiplier
		bk.CounterFourApplied = true
	}

	if opts.EnableForbiddenTrap && color == board.White {
		bk.ForbiddenTrapBonus = forbiddenTrapBonus(b, axes, fourAxisCount, fakeThreeAxisCount)
		total += float64(bk.ForbiddenTrapBonus)
	}

	if opts.EnableFukumi && fourAxisCount == 0 && openThreeAxisCount == 0 && hasOpenTwo(axes) {
		bk.FukumiBonus = FukumiBonus
		total += float64(FukumiBonus)
	}

	if opts.EnableMise {
		b.Undo(r, c)
		b.Place(r, c, color)
		after := threat.Detect(b, color)
		if len(after.Mises) > 0 {
			bk.MiseBonus = MiseBonus
			total += float64(MiseBonus)
		}
	}

	if opts.EnableVCT && openThreeAxisCount >= 1 && fourAxisCount == 0 && hasExistingOpenThree(b, r, c, color) {
		bk.VCTBonus = VCTBonus
		total += float64(VCTBonus)
	}

	if opts.EnableForbiddenVulnerability {
		if penalty := forbiddenVulnerability(b, axes, color); penalty > 0 {
			bk.ForbiddenVulnerabilityPenalty = penalty
			total -= float64(penalty)
		}
	}

	// Mandatory-defense gate: if the opponent already holds a
	// ranked threat, this move must either neutralize it or itself
	// create a five/open-four/four-three.
	if opts.EnableMandatoryDefense && oppThreatsBefore.HasAny() {
		createsFive := false
		createsOpenFour := false
		for _, ax := range axes {
			if ax.Kind == shape.Five {
				createsFive = true
			}
			if ax.Kind == shape.Four && ax.IsOpen() {
				createsOpenFour = true
			}
		}
		createsFourThree := fourAxisCount >= 1 && openThreeAxisCount >= 1
		if !createsFive && !createsOpenFour && !createsFourThree && !occupiesDefense {
			bk.MandatoryDefenseGated = true
			bk.Total = NegInf
			return NegInf, bk
		}
	}

	bk.Total = int(total)
	return bk.Total, bk
}

func containsMove(moves []board.Move, r, c int) bool {
	for _, m := range moves {
		if m.Row == r && m.Col == c {
			return true
		}
	}
	return false
}

func hasOpenTwo(axes [4]shape.Axis) bool {
	for _, ax := range axes {
		if ax.Kind == shape.Two && ax.IsOpen() {
			return true
		}
	}
	return false
}

// hasExistingOpenThree reports whether color holds more open threes than
// just the one created at (r,c) — a compounding VCT-style attack rather
// than an isolated three. Detect reports open threes by their completion
// squares, two per three, so a lone new three contributes exactly two
// entries; anything beyond that means another open three is already on
// the board.
func hasExistingOpenThree(b *board.Board, r, c int, color board.Color) bool {
	set := threat.Detect(b, color)
	return len(set.OpenThrees) > 2
}

// forbiddenVulnerability is spec §4.13's "consider black's forbidden
// geometry as a weakness term": an axis whose only completion square(s)
// are themselves forbidden for black is weaker than its raw pattern score
// suggests, since black could never legally finish it. Only black's own
// moves carry this weakness; white's stones have no forbidden rule to be
// undercut by.
func forbiddenVulnerability(b *board.Board, axes [4]shape.Axis, color board.Color) int {
	if color != board.Black {
		return 0
	}
	penalty := 0
	for _, ax := range axes {
		switch ax.Kind {
		case shape.Three:
			if !ax.IsOpen() {
				continue
			}
			end1 := rules.Default.CheckForbiddenMove(b, ax.End1.Row, ax.End1.Col)
			end2 := rules.Default.CheckForbiddenMove(b, ax.End2.Row, ax.End2.Col)
			if end1.IsForbidden && end2.IsForbidden {
				penalty += ClosedThreeScore
			}
		case shape.Four:
			if ax.IsOpen() {
				continue
			}
			target := ax.End1
			if !ax.Open1 {
				target = ax.End2
			}
			if ax.IsJump {
				target = ax.Gap
			}
			if rules.Default.CheckForbiddenMove(b, target.Row, target.Col).IsForbidden {
				penalty += ClosedThreeScore * 4
			}
		}
	}
	return penalty
}

func forbiddenTrapBonus(b *board.Board, axes [4]shape.Axis, fourAxisCount, fakeThreeAxisCount int) int {
	for _, ax := range axes {
		if ax.Kind != shape.Four || ax.IsOpen() {
			continue
		}
		defSquare := ax.End1
		if !ax.Open1 {
			defSquare = ax.End2
		}
		if ax.IsJump {
			defSquare = ax.Gap
		}
		if res := rules.Default.CheckForbiddenMove(b, defSquare.Row, defSquare.Col); res.IsForbidden {
			return ForbiddenTrapStrongBonus
		}
	}
	if fakeThreeAxisCount > 0 {
		return ForbiddenTrapThreeBonus
	}
	if fourAxisCount > 0 {
		return ForbiddenTrapSetupBonus
	}
	return ForbiddenTrapBonus
}

// EvaluateBoard is the whole-board aggregator (spec §4.3): sums every
// stone's per-axis pattern score (each run counted once, from its
// lowest-indexed stone) for the side to move, subtracts the same for the
// opponent, and returns the result from color's perspective.
func EvaluateBoard(b *board.Board, color board.Color, opts Options) int {
	mine := sumStones(b, color)
	theirs := sumStones(b, color.Opponent())
	return mine - theirs
}

func sumStones(b *board.Board, color board.Color) int {
	total := 0.0
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.At(r, c) != color {
				continue
			}
			total += float64(centerBonus(r, c)) / 4 // per-stone share, avoids over-weighting long runs
			for i, ax := range lineutil.Axes {
				if board.IsValidPosition(r-ax.DR, c-ax.DC) && b.At(r-ax.DR, c-ax.DC) == color {
					continue // not the run's start on this axis; counted from its start instead
				}
				shp := shape.Classify(b, r, c, ax.DR, ax.DC, color)
				if shp.Kind == shape.None {
					continue
				}
				s := float64(axisScore(shp))
				if lineutil.IsDiagonal(i) {
					s *= DiagonalMultiplier
				}
				total += s
			}
		}
	}
	return int(total)
}
