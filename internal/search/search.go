package search

import (
	"time"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
	"github.com/ef81sp/holorenju/internal/movegen"
	"github.com/ef81sp/holorenju/internal/pattern"
	"github.com/ef81sp/holorenju/internal/rules"
	"github.com/ef81sp/holorenju/internal/shape"
)

// Five is the win score (spec §4.3's FiveScore, reused here as the
// search's "mate score" the way the pattern table already defines it —
// spec §9 asks every downstream magic number to be expressed as a
// function of the pattern-score table rather than a new literal).
const Five = pattern.FiveScore

// maxStaticEvalCount bounds how many candidates per node receive a
// static pattern-score component (spec §4.5 step 4): deep in the tree,
// scoring every candidate is the dominant cost, so only a handful get
// the expensive treatment and the rest rely on TT/killer/history
// ordering alone.
const maxStaticEvalCount = 14

// nullMoveReduction is spec §4.8 step 5's "depth − 1 − 2".
const nullMoveReduction = 2

// lmrMoveIndexThreshold, lmrDepthThreshold, lmrScoreFloor are spec §4.8
// step 7's LMR eligibility test: "move index ≥ 3 AND depth ≥ 3 AND
// bestScore > −FIVE + 1000".
const (
	lmrMoveIndexThreshold = 3
	lmrDepthThreshold     = 3
	lmrScoreFloor         = -Five + 1000
)

// futilityMarginSelf is spec §4.8 step 7's margin table, indexed by
// depth 1..3, for moves by the side searching this node. (Spec also
// calls for a larger table for "the opponent side"; this implementation
// only ever prunes the side to move's own candidates, so only one table
// is needed — see DESIGN.md.)
var futilityMarginSelf = [4]int{0, 150, 300, 500}

// decisiveScoreFloor marks a score "near decisive" for the futility
// gate's "not near a decisive score" exclusion.
const decisiveScoreFloor = Five / 2

// Negamax is the search core (spec §4.8 / C9). It returns a score from
// color's perspective (positive favors the side to move at this node).
// The board must already reflect every move up to and including the
// caller's frame; Negamax places and undoes each candidate it tries,
// leaving the board exactly as it found it on every exit path.
//
// lastMove/lastMoveColor describe the move that led to this node (the
// zero value/Empty pair at the root, where there is none).
func Negamax(ctx *Context, b *board.Board, hash uint64, color board.Color, depth, alpha, beta, ply int, lastMove board.Move, lastMoveColor board.Color, allowNullMove bool) int {
	ctx.Stats.Nodes++
	if ctx.NodeBudget > 0 && ctx.Stats.Nodes >= ctx.NodeBudget {
		ctx.nodeExceeded.Store(true)
	}
	if ctx.Stats.Nodes%4 == 0 {
		ctx.CheckDeadlines(time.Now())
	}
	if ctx.Interrupted() {
		return pattern.EvaluateBoard(b, color, ctx.Options)
	}

	if lastMoveColor != board.Empty && rules.FiveAt(b, lastMove.Row, lastMove.Col, lastMoveColor) {
		if lastMoveColor == color {
			return Five
		}
		return -Five
	}

	var ttMove board.Move
	if entry, ok := ctx.TT.Probe(hash); ok {
		ctx.Stats.TTHits++
		ttMove = entry.BestMove
		if entry.Depth >= depth {
			switch entry.Bound {
			case Exact:
				ctx.Stats.TTCutoffs++
				return entry.Score
			case LowerBound:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			case UpperBound:
				if entry.Score < beta {
					beta = entry.Score
				}
			}
			if alpha >= beta {
				ctx.Stats.TTCutoffs++
				return entry.Score
			}
		}
	}

	if depth == 0 {
		eval := pattern.EvaluateBoard(b, color, ctx.Options)
		ctx.Stats.EvalCalls++
		ctx.TT.Store(hash, eval, depth, Exact, board.Move{})
		return eval
	}

	if ctx.Options.EnableNullMovePruning && allowNullMove && depth >= 3 && !opponentHasFour(b, color) {
		nullHash := board.WithSide(hash, color.Opponent())
		reduced := Negamax(ctx, b, nullHash, color.Opponent(), depth-1-nullMoveReduction, -beta, -beta+1, ply+1, board.Move{}, board.Empty, false)
		score := -reduced
		if score >= beta {
			ctx.Stats.NullMoveCutoffs++
			return score
		}
	}

	genOpts := movegen.Options{
		Options:            ctx.Options,
		TTMove:             ttMove,
		Killers:            ctx.Killers.At(ply),
		History:            &ctx.History.Grid,
		Depth:              ply,
		SkipForbiddenCheck: true,
		MaxStaticEvalCount: maxStaticEvalCount,
	}
	candidates := movegen.GenerateSortedMoves(b, color, genOpts)
	if len(candidates) == 0 {
		return 0
	}

	alphaOrig := alpha
	bestScore := -Five - 1
	var bestMove board.Move

	for i, cand := range candidates {
		m := cand.Move

		if color == board.Black {
			res := ctx.Forbidden.CheckForbiddenMoveWithCache(b, hash, m.Row, m.Col)
			ctx.Stats.ForbiddenChecks++
			if res.IsForbidden && !rules.Default.CheckFive(b, m.Row, m.Col, color) {
				continue
			}
		}

		if ctx.Options.EnableFutilityPruning && depth >= 1 && depth <= 3 && i > 0 &&
			bestScore > -decisiveScoreFloor && bestScore < decisiveScoreFloor &&
			!isTactical(b, m, color) {
			staticEval := pattern.EvaluateBoard(b, color, ctx.Options)
			if staticEval+futilityMarginSelf[depth] <= alpha {
				ctx.Stats.FutilityPrunes++
				continue
			}
		}

		lmrEligible := i >= lmrMoveIndexThreshold && depth >= lmrDepthThreshold && bestScore > lmrScoreFloor

		b.Place(m.Row, m.Col, color)
		childHash := board.Update(hash, m.Row, m.Col, color)

		var score int
		if lmrEligible {
			reduced := Negamax(ctx, b, childHash, color.Opponent(), depth-2, -beta, -alpha, ply+1, m, color, true)
			score = -reduced
			if score > alpha {
				full := Negamax(ctx, b, childHash, color.Opponent(), depth-1, -beta, -alpha, ply+1, m, color, true)
				score = -full
			}
		} else {
			full := Negamax(ctx, b, childHash, color.Opponent(), depth-1, -beta, -alpha, ply+1, m, color, true)
			score = -full
		}
		b.Undo(m.Row, m.Col)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			ctx.Stats.BetaCutoffs++
			ctx.Killers.Record(ply, m)
			ctx.History.Record(m, depth)
			break
		}
	}

	var boundType Bound
	switch {
	case bestScore <= alphaOrig:
		boundType = UpperBound
	case bestScore >= beta:
		boundType = LowerBound
	default:
		boundType = Exact
	}
	ctx.TT.Store(hash, bestScore, depth, boundType, bestMove)
	return bestScore
}

// opponentHasFour reports whether color's opponent already threatens an
// immediate four, the condition that disqualifies null-move pruning
// (spec §4.8 step 5: "the opponent has no immediate four threat").
func opponentHasFour(b *board.Board, color board.Color) bool {
	for _, m := range b.CandidateCells() {
		b.Place(m.Row, m.Col, color.Opponent())
		four := false
		for _, ax := range lineutil.Axes {
			if shape.Classify(b, m.Row, m.Col, ax.DR, ax.DC, color.Opponent()).Kind >= shape.Four {
				four = true
				break
			}
		}
		b.Undo(m.Row, m.Col)
		if four {
			return true
		}
	}
	return false
}

// isTactical reports whether playing color at m creates at least a four
// on some axis — the futility gate's "non-tactical" exclusion keeps such
// moves from ever being pruned.
func isTactical(b *board.Board, m board.Move, color board.Color) bool {
	b.Place(m.Row, m.Col, color)
	tactical := false
	for _, ax := range lineutil.Axes {
		if shape.Classify(b, m.Row, m.Col, ax.DR, ax.DC, color).Kind >= shape.Four {
			tactical = true
			break
		}
	}
	b.Undo(m.Row, m.Col)
	return tactical
}
