package pattern

import "github.com/ef81sp/holorenju/internal/shape"

// AxisDetail is one axis's contribution to a move's score, used by the
// breakdown form for the review/annotation pipeline (spec §4.3: "The
// scorer provides a second form that returns a breakdown record").
type AxisDetail struct {
	AxisIndex  int
	Kind       shape.Kind
	Open1      bool
	Open2      bool
	IsJump     bool
	BaseScore  int
	Diagonal   bool
}

// Breakdown records every term evaluateMove folded into its final score,
// for callers (the review worker's ReviewCandidate.breakdown field) that
// need to explain rather than just use the number.
type Breakdown struct {
	Axes []AxisDetail

	CenterBonus int

	FourThreeBonus   int
	MultiThreatBonus int
	CounterFourApplied bool

	ForbiddenTrapBonus int
	FukumiBonus        int
	MiseBonus          int
	VCTBonus           int

	SingleFourPenaltyApplied      bool
	ForbiddenVulnerabilityPenalty int

	MandatoryDefenseGated bool

	Total int
}
