// Package movegen implements the move generator (spec §4.5 / C6): raw
// candidate enumeration plus the ordered, scored candidate list the
// search core iterates. It combines board, rules and pattern (and so
// reaches threat through the pattern scorer), matching spec §2's
// data-flow note that C6 "calls C4" on the search's behalf.
package movegen

import (
	"sort"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/pattern"
	"github.com/ef81sp/holorenju/internal/rules"
)

// NegInf mirrors pattern.NegInf: the sentinel a mandatory-defense-gated
// move scores, used here to decide whether to drop or keep it.
const NegInf = pattern.NegInf

// Candidate is one scored, orderable move (spec §3 "Candidate entry").
type Candidate struct {
	Move  board.Move
	Score int
}

// Options configures generateSortedMoves beyond the pattern-scoring
// Options it embeds.
type Options struct {
	pattern.Options

	// TTMove, when non-zero (IsZero()==false), earns the largest
	// ordering bonus.
	TTMove board.Move
	// Killers lists this depth's killer-table entries, best first.
	Killers []board.Move
	// History is the 15x15 history-heuristic grid; nil is treated as
	// all-zero.
	History *[board.Size][board.Size]int
	// Depth is the current search depth, used only for logging/labels
	// by callers; the generator itself does not need it beyond what
	// Killers/History already encode.
	Depth int
	// SkipForbiddenCheck, when true, does not filter black's forbidden
	// squares (the recursive search does this lazily per move instead,
	// spec §4.5: "the recursion performs forbidden checks lazily").
	SkipForbiddenCheck bool
	// MaxStaticEvalCount caps how many candidates receive a static
	// pattern-score component; 0 means unlimited.
	MaxStaticEvalCount int
}

const (
	ttMoveBonus     = 1_000_000
	killerBase      = 100_000
	killerStep      = 10_000
	historyWeight   = 1
)

// GenerateMoves is spec §4.5's generateMoves: every empty cell within
// Chebyshev distance 2 of an existing stone, or just the center on an
// empty board.
func GenerateMoves(b *board.Board) []board.Move {
	return b.CandidateCells()
}

// GenerateSortedMoves is spec §4.5's generateSortedMoves: raw candidates,
// forbidden-filtered for black, scored, and sorted descending.
func GenerateSortedMoves(b *board.Board, color board.Color, opts Options) []Candidate {
	raw := GenerateMoves(b)

	if color == board.Black && !opts.SkipForbiddenCheck {
		filtered := raw[:0:0]
		for _, m := range raw {
			res := rules.Default.CheckForbiddenMove(b, m.Row, m.Col)
			if res.IsForbidden && !completesFive(b, m, color) {
				continue
			}
			filtered = append(filtered, m)
		}
		raw = filtered
	}

	candidates := make([]Candidate, len(raw))
	for i, m := range raw {
		candidates[i] = Candidate{Move: m, Score: orderingScore(m, opts)}
	}

	staticCount := len(candidates)
	if opts.MaxStaticEvalCount > 0 && opts.MaxStaticEvalCount < staticCount {
		sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })
		staticCount = opts.MaxStaticEvalCount
	}

	for i := 0; i < staticCount; i++ {
		m := candidates[i].Move
		b.Place(m.Row, m.Col, color)
		staticScore, _ := pattern.EvaluateMove(b, m.Row, m.Col, color, opts.Options)
		b.Undo(m.Row, m.Col)
		if staticScore == NegInf {
			candidates[i].Score = NegInf
		} else {
			candidates[i].Score += staticScore
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })

	filtered := candidates[:0:0]
	for _, cand := range candidates {
		if cand.Score != NegInf {
			filtered = append(filtered, cand)
		}
	}
	if len(filtered) == 0 {
		return candidates
	}
	return filtered
}

func completesFive(b *board.Board, m board.Move, color board.Color) bool {
	b.Place(m.Row, m.Col, color)
	defer b.Undo(m.Row, m.Col)
	return rules.Default.CheckFive(b, m.Row, m.Col, color)
}

func orderingScore(m board.Move, opts Options) int {
	score := 0
	if !opts.TTMove.IsZero() && m == opts.TTMove {
		score += ttMoveBonus
	}
	for k, killer := range opts.Killers {
		if killer == m {
			score += killerBase - killerStep*k
			break
		}
	}
	if opts.History != nil {
		score += historyWeight * opts.History[m.Row][m.Col]
	}
	return score
}
