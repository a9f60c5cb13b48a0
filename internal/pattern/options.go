package pattern

// Options bundles every scoring knob as a plain, explicitly-threaded
// struct (spec §4.13 / §9 design note: "do not use global mutable scoring
// coefficients"). Every call site that affects scoring — the move
// generator, the search core, the evaluator itself — takes one of these
// rather than reading package-level state.
type Options struct {
	EnableFukumi                 bool
	EnableMise                   bool
	EnableForbiddenTrap          bool
	EnableMultiThreat            bool
	EnableCounterFour            bool
	EnableVCT                    bool
	EnableMandatoryDefense       bool
	EnableSingleFourPenalty      bool
	SingleFourPenaltyMultiplier  float64
	EnableMiseThreat             bool
	EnableNullMovePruning        bool
	EnableFutilityPruning        bool
	EnableForbiddenVulnerability bool
}

// Default returns the "hard" preset: every option on, matching spec §6's
// "the hard preset enables every option except debug-only gates" — there
// are no debug-only gates in this option set, so all of them are enabled.
func Default() Options {
	return Options{
		EnableFukumi:                 true,
		EnableMise:                   true,
		EnableForbiddenTrap:          true,
		EnableMultiThreat:            true,
		EnableCounterFour:            true,
		EnableVCT:                    true,
		EnableMandatoryDefense:       true,
		EnableSingleFourPenalty:      true,
		SingleFourPenaltyMultiplier:  0.5,
		EnableMiseThreat:             true,
		EnableNullMovePruning:        true,
		EnableFutilityPruning:        true,
		EnableForbiddenVulnerability: true,
	}
}
