package search

import (
	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
	"github.com/ef81sp/holorenju/internal/rules"
	"github.com/ef81sp/holorenju/internal/shape"
)

// DefaultMiseVCFTimeBudgetMs is spec §4.12 step 3's "overall time budget
// default 500 ms".
const DefaultMiseVCFTimeBudgetMs = 500

// FindMiseVCFSequence is the Mise-VCF prover (spec §4.12 / C13): a single
// "setup" move followed by the opponent's forced four-three defense,
// followed by a VCF proof. Returns the chain [M, T, vcfSeq...] on
// success, or nil.
func FindMiseVCFSequence(b *board.Board, color board.Color, tl TimeLimiter) *Sequence {
	opp := color.Opponent()

	for _, m := range miseCandidates(b, color) {
		b.Place(m.Row, m.Col, color)
		seq := tryMiseMove(b, m, color, opp, tl)
		b.Undo(m.Row, m.Col)
		if tl.Expired() {
			return nil
		}
		if seq != nil {
			return seq
		}
	}
	return nil
}

// miseCandidates is spec §4.12 step 1: empty cells adjacent to an
// existing stone, not black-forbidden.
func miseCandidates(b *board.Board, color board.Color) []board.Move {
	cells := b.CandidateCells()
	if color != board.Black {
		return cells
	}
	out := cells[:0:0]
	for _, m := range cells {
		if res := rules.Default.CheckForbiddenMove(b, m.Row, m.Col); !res.IsForbidden {
			out = append(out, m)
		}
	}
	return out
}

func tryMiseMove(b *board.Board, m board.Move, color, opp board.Color, tl TimeLimiter) *Sequence {
	for _, target := range miseTargets(b, color) {
		if tl.Expired() {
			return nil
		}

		b.Place(target.Row, target.Col, opp)
		vcf := FindVCFSequence(b, color, DefaultVCFMaxDepth, tl)
		b.Undo(target.Row, target.Col)

		if vcf != nil {
			chain := make([]board.Move, 0, len(vcf.Moves)+2)
			chain = append(chain, m, target)
			chain = append(chain, vcf.Moves...)
			return &Sequence{Moves: chain, FirstMove: m, IsForbiddenTrap: vcf.IsForbiddenTrap}
		}
	}
	return nil
}

// miseTargets finds squares T where, after color's setup move, the
// opponent is forced to defend a four-three: empty cells where color
// holds both a four threat and an open-three threat simultaneously (spec
// §4.12 step 2's "ask the evaluator for mise targets").
func miseTargets(b *board.Board, color board.Color) []board.Move {
	var out []board.Move
	for _, m := range b.CandidateCells() {
		b.Place(m.Row, m.Col, color)
		four, three := false, false
		for _, ax := range lineutil.Axes {
			a := shape.Classify(b, m.Row, m.Col, ax.DR, ax.DC, color)
			if a.Kind == shape.Four {
				four = true
			}
			if a.Kind == shape.Three && a.IsOpen() {
				three = true
			}
		}
		b.Undo(m.Row, m.Col)
		if four && three {
			out = append(out, m)
		}
	}
	return out
}
