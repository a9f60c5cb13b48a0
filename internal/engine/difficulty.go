package engine

import "github.com/ef81sp/holorenju/internal/pattern"

// Difficulty selects one of the three conventional presets (spec §6).
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Settings is the (depth, softTimeMs, maxNodes) triple plus the
// evaluation options a difficulty preset maps to (spec §6's
// DifficultySettings).
type Settings struct {
	Depth      int
	SoftTimeMs int
	MaxNodes   int64
	Options    pattern.Options
}

// PresetFor returns d's settings. Hard enables every scoring and search
// option pattern.Default offers, per spec §6's "the hard preset enables
// every option except debug-only gates"; easy and medium progressively
// narrow the search and turn off the more expensive heuristics rather
// than reimplementing a separate, weaker evaluator.
func PresetFor(d Difficulty) Settings {
	switch d {
	case Easy:
		opts := pattern.Default()
		opts.EnableFukumi = false
		opts.EnableMise = false
		opts.EnableMiseThreat = false
		opts.EnableVCT = false
		opts.EnableForbiddenTrap = false
		opts.EnableMultiThreat = false
		return Settings{Depth: 4, SoftTimeMs: 800, MaxNodes: 60_000, Options: opts}
	case Medium:
		opts := pattern.Default()
		opts.EnableMiseThreat = false
		return Settings{Depth: 8, SoftTimeMs: 2_000, MaxNodes: 400_000, Options: opts}
	default:
		return Settings{Depth: 14, SoftTimeMs: 5_000, MaxNodes: 2_000_000, Options: pattern.Default()}
	}
}
