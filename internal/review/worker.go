package review

import (
	"time"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/engine"
	"github.com/ef81sp/holorenju/internal/pattern"
	"github.com/ef81sp/holorenju/internal/search"
)

// lightEvalDepth/lightEvalSoftTimeMs/lightEvalMaxNodes are the budget
// isLightEval asks for — a quick pass suitable for scrubbing through a
// whole game record, rather than the hard preset's full search.
const (
	lightEvalDepth      = 4
	lightEvalSoftTimeMs = 300
	lightEvalMaxNodes   = 30_000
)

// forcedWinProbeBudget bounds the wall-clock time the forced-win/forced-
// loss VCF/VCT/Mise-VCF probes below get, on top of whatever the main
// search already spent (spec §4.10/4.11's "extended to 16 (6 for VCT) for
// review").
const forcedWinProbeBudget = 400 * time.Millisecond

// Evaluate is the review worker's dispatcher (spec §6). It never panics
// out to the caller: spec §7's "the review worker wraps its dispatcher in
// a try-style guard and returns a safe default... on any thrown error"
// is implemented here with a recover, mirroring Go's idiom for the same
// intent.
func Evaluate(req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = safeDefault(req)
		}
	}()

	moves, err := ParseMoveHistory(req.MoveHistory)
	if err != nil {
		return safeDefault(req)
	}

	idx := req.MoveIndex
	if idx < 0 {
		idx = 0
	}
	if idx > len(moves) {
		idx = len(moves)
	}

	b := board.FromMoves(moves[:idx], board.Black)
	color := board.Black
	if idx%2 == 1 {
		color = board.White
	}

	opts := pattern.Default()
	var playedScore int
	if idx < len(moves) {
		played := moves[idx]
		b.Place(played.Row, played.Col, color)
		playedScore, _ = pattern.EvaluateMove(b, played.Row, played.Col, color, opts)
		b.Undo(played.Row, played.Col)
	}

	depth, softTimeMs, maxNodes := engine.PresetFor(engine.Hard).Depth, engine.PresetFor(engine.Hard).SoftTimeMs, engine.PresetFor(engine.Hard).MaxNodes
	if req.IsLightEval {
		depth, softTimeMs, maxNodes = lightEvalDepth, lightEvalSoftTimeMs, lightEvalMaxNodes
	}

	tt := search.NewTranspositionTable(search.DefaultTTCapacity)
	result := engine.FindBestMoveIterativeWithTT(tt, b, color, depth, softTimeMs, 0, opts, maxNodes, engine.DefaultAbsTimeMs, engine.DefaultScoreThreshold)

	resp = Response{
		MoveIndex:      req.MoveIndex,
		BestMove:       toPosition(result.Position),
		BestScore:      result.Score,
		PlayedScore:    playedScore,
		CompletedDepth: result.CompletedDepth,
		IsLightEval:    req.IsLightEval,
	}
	for _, c := range result.Candidates {
		b.Place(c.Move.Row, c.Move.Col, color)
		_, breakdown := pattern.EvaluateMove(b, c.Move.Row, c.Move.Col, color, opts)
		b.Undo(c.Move.Row, c.Move.Col)
		resp.Candidates = append(resp.Candidates, ReviewCandidate{
			Position:           toPosition(c.Move),
			Score:              breakdown.Total,
			SearchScore:        c.Score,
			Breakdown:          breakdown,
			PrincipalVariation: toPositions(c.PrincipalVariation),
		})
	}

	if !req.IsLightEval {
		attachForcedOutcomes(&resp, b, color)
	}
	return resp
}

// attachForcedOutcomes runs the VCF/VCT/Mise-VCF provers at review depth
// to fill forcedWinType/forcedWinBranches/forcedLossType/
// forcedLossSequence (spec §6).
func attachForcedOutcomes(resp *Response, b *board.Board, color board.Color) {
	start := time.Now()
	tl := search.TimeLimiter{Start: start, Limit: forcedWinProbeBudget}

	if seq := search.FindVCFSequence(b, color, search.ReviewVCFMaxDepth, tl); seq != nil {
		kind := "vcf"
		resp.ForcedWinType = &kind
		return
	}
	if seq := search.FindVCTSequence(b, color, search.ReviewVCTMaxDepth, tl, true); seq != nil {
		kind := "vct"
		if seq.IsForbiddenTrap {
			kind = "forbidden-trap"
		}
		resp.ForcedWinType = &kind
		resp.ForcedWinBranches = toBranches(seq.Branches)
		return
	}
	miseTL := search.TimeLimiter{Start: start, Limit: search.DefaultMiseVCFTimeBudgetMs * time.Millisecond}
	if seq := search.FindMiseVCFSequence(b, color, miseTL); seq != nil {
		kind := "mise-vcf"
		resp.ForcedWinType = &kind
		return
	}

	oppTL := search.TimeLimiter{Start: start, Limit: forcedWinProbeBudget}
	if seq := search.FindVCFSequence(b, color.Opponent(), search.ReviewVCFMaxDepth, oppTL); seq != nil {
		kind := "vcf"
		resp.ForcedLossType = &kind
		resp.ForcedLossSequence = toPositions(seq.Moves)
	}
}

func safeDefault(req Request) Response {
	return Response{
		MoveIndex:   req.MoveIndex,
		BestMove:    Position{Row: board.Center, Col: board.Center},
		IsLightEval: req.IsLightEval,
	}
}

func toPosition(m board.Move) Position {
	return Position{Row: m.Row, Col: m.Col}
}

func toPositions(moves []board.Move) []Position {
	out := make([]Position, len(moves))
	for i, m := range moves {
		out[i] = toPosition(m)
	}
	return out
}

func toBranches(branches []search.Branch) []ForcedWinBranch {
	out := make([]ForcedWinBranch, len(branches))
	for i, br := range branches {
		out[i] = ForcedWinBranch{DefenseIndex: br.DefenseIndex, Moves: toPositions(br.Moves)}
	}
	return out
}
