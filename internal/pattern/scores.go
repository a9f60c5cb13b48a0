package pattern

import "github.com/ef81sp/holorenju/internal/shape"

// Base pattern scores (spec §4.3 table). Kept as named constants rather
// than literals downstream (spec §9 design note) because the spec itself
// flags FOUR and OPEN_THREE as ambiguous between 1000 and 1500 in its
// source fragments — OpenThreeScore is defined as an alias of FourScore
// so that ambiguity is resolved in exactly one place.
const (
	FiveScore        = 100_000
	OpenFourScore    = 10_000
	FourScore        = 1_000
	OpenThreeScore   = FourScore
	ClosedThreeScore = 30
	OpenTwoScore     = 50
	ClosedTwoScore   = 10
)

// Aggregate bonus constants (spec §4.3).
const (
	ForbiddenTrapBonus       = 100
	ForbiddenTrapThreeBonus  = 3_000
	ForbiddenTrapSetupBonus  = 1_500
	ForbiddenTrapStrongBonus = 8_000
	FukumiBonus              = 1_500
	MiseBonus                = 1_000
	VCTBonus                 = 8_000
	MultiThreatPerAxisBonus  = 500
	FourThreeBonus           = 5_000

	DiagonalMultiplier    = 1.05
	CounterFourMultiplier = 1.5

	// CenterBonusMax is the bonus at the exact center (7,7); it decays
	// linearly with Chebyshev distance and is clamped at 0 (spec §4.3:
	// "capped at the edge").
	CenterBonusMax = 5
)

// axisScore returns the base score for a single classified axis pattern,
// with no multipliers applied.
func axisScore(ax shape.Axis) int {
	switch ax.Kind {
	case shape.Five:
		return FiveScore
	case shape.Four:
		if ax.IsOpen() {
			return OpenFourScore
		}
		return FourScore
	case shape.Three:
		if ax.IsOpen() {
			return OpenThreeScore
		}
		return ClosedThreeScore
	case shape.Two:
		if ax.IsOpen() {
			return OpenTwoScore
		}
		return ClosedTwoScore
	default:
		return 0
	}
}

// chebyshev returns the Chebyshev distance between two cells.
func chebyshev(r1, c1, r2, c2 int) int {
	dr, dc := r1-r2, c1-c2
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// centerBonus returns the decaying center-proximity bonus for (r,c).
func centerBonus(r, c int) int {
	d := chebyshev(r, c, 7, 7)
	b := CenterBonusMax - d
	if b < 0 {
		return 0
	}
	return b
}
