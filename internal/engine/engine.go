// Package engine implements the iterative-deepening driver (spec §4.9 /
// C10): the root entry point game play actually calls. It owns the
// pre-search gate (immediate win, mandatory defense, VCF/Mise-VCF/VCT),
// the aspiration-window deepening loop over package search's negamax
// core, and the difficulty presets that map an easy/medium/hard choice
// to a depth/time/option triple.
package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/lineutil"
	"github.com/ef81sp/holorenju/internal/movegen"
	"github.com/ef81sp/holorenju/internal/pattern"
	"github.com/ef81sp/holorenju/internal/rules"
	"github.com/ef81sp/holorenju/internal/search"
	"github.com/ef81sp/holorenju/internal/shape"
	"github.com/ef81sp/holorenju/internal/threat"
)

// DefaultAbsTimeMs / DefaultScoreThreshold are findBestMoveIterativeWithTT's
// documented defaults (spec §4.9).
const (
	DefaultAbsTimeMs       = 10_000
	DefaultScoreThreshold  = 200
	aspirationWindow       = 75 // spec §9 open question: 75 is the value the spec body states
	pvMaxPlies             = 10
)

// RootCandidate is one root move's search result (spec §6's
// ReviewCandidate feeds from this).
type RootCandidate struct {
	Move                board.Move
	Score               int
	PrincipalVariation  []board.Move
}

// DepthRecord is one completed iterative-deepening iteration (spec §4.9's
// depthHistory).
type DepthRecord struct {
	Depth int
	Score int
	Move  board.Move
}

// Result is spec §6's IterativeResult.
type Result struct {
	Position             board.Move
	Score                int
	Candidates           []RootCandidate
	RandomSelection      *board.Move
	WasTieBreak          bool
	CompletedDepth        int
	Interrupted          bool
	ElapsedTime          time.Duration
	DepthHistory         []DepthRecord
	Stats                search.Stats
	ForcedMove           bool
	TimePressureFallback bool
	FallbackFromDepth    int
}

// FindBestMoveIterativeWithTT is spec §4.9 / §6's root entry point.
func FindBestMoveIterativeWithTT(
	tt *search.TranspositionTable,
	b *board.Board,
	color board.Color,
	maxDepth int,
	softTimeMs int,
	randomFactor float64,
	evalOptions pattern.Options,
	maxNodes int64,
	absTimeMs int,
	scoreThreshold int,
) Result {
	start := time.Now()
	if absTimeMs <= 0 {
		absTimeMs = DefaultAbsTimeMs
	}
	if scoreThreshold <= 0 {
		scoreThreshold = DefaultScoreThreshold
	}
	absoluteDeadline := start.Add(time.Duration(absTimeMs) * time.Millisecond)

	ctx := search.NewContext(tt, evalOptions)
	ctx.NodeBudget = maxNodes
	ctx.AbsoluteDeadline = absoluteDeadline
	hash := board.Compute(b)

	// 3a: if we are already past the absolute deadline, fall back to a
	// statically sorted top candidate.
	if time.Now().After(absoluteDeadline) {
		return staticFallback(b, color, evalOptions, start)
	}

	// 3b: immediate win.
	if m, ok := findWinningMove(b, color); ok {
		return Result{Position: m, Score: search.Five, CompletedDepth: 0, ElapsedTime: time.Since(start)}
	}

	// Opponent already holding an unstoppable (or single-defense) four on
	// the board right now — more urgent than the C5 potential-threat scan
	// below, since it can complete five on the very next ply.
	if m, forbidden, ok := opponentImmediateFourDefense(b, color); ok {
		if !(color == board.Black && forbidden) {
			return Result{Position: m, Score: -search.Five, CompletedDepth: 0, ElapsedTime: time.Since(start)}
		}
	}

	oppThreats := threat.Detect(b, color.Opponent())
	var restrictedByDefense []board.Move
	if len(oppThreats.OpenFours) > 0 {
		restrictedByDefense = oppThreats.OpenFours
	} else if len(oppThreats.Fours) > 0 {
		restrictedByDefense = oppThreats.Fours
	}

	tl := search.TimeLimiter{Start: start, Limit: 200 * time.Millisecond}
	if seq := search.FindVCFSequence(b, color, search.DefaultVCFMaxDepth, tl); seq != nil {
		return Result{Position: seq.FirstMove, Score: search.Five, CompletedDepth: 0, ElapsedTime: time.Since(start)}
	}

	oppTL := search.TimeLimiter{Start: start, Limit: 100 * time.Millisecond}
	oppVCF := search.FindVCFSequence(b, color.Opponent(), search.DefaultVCFMaxDepth, oppTL)

	if oppVCF == nil {
		miseTL := search.TimeLimiter{Start: start, Limit: search.DefaultMiseVCFTimeBudgetMs * time.Millisecond}
		if seq := search.FindMiseVCFSequence(b, color, miseTL); seq != nil {
			if !(color == board.Black && isForbiddenForBlack(b, seq.FirstMove)) {
				return Result{Position: seq.FirstMove, Score: search.Five, CompletedDepth: 0, ElapsedTime: time.Since(start)}
			}
		}
	}

	var vctHintMove *board.Move
	if evalOptions.EnableVCT && b.Count >= search.VCTStoneThreshold {
		vctTL := search.TimeLimiter{Start: start, Limit: 150 * time.Millisecond}
		if seq := search.FindVCTSequence(b, color, search.DefaultVCTMaxDepth, vctTL, false); seq != nil {
			m := seq.FirstMove
			vctHintMove = &m
		}
	}

	var restrictedMoves []board.Move
	if oppVCF != nil {
		counterFours := ownCounterFourMoves(b, color)
		restrictedMoves = append(restrictedMoves, counterFours...)
		if len(oppVCF.Moves) > 0 {
			restrictedMoves = append(restrictedMoves, oppVCF.Moves[0])
		}
	}

	genOpts := movegen.Options{Options: evalOptions, SkipForbiddenCheck: false, MaxStaticEvalCount: 20}
	candidates := movegen.GenerateSortedMoves(b, color, genOpts)
	candidates = applyRestriction(candidates, restrictedByDefense)
	candidates = applyRestriction(candidates, restrictedMoves)

	if len(candidates) == 0 {
		return Result{Position: board.Move{Row: board.Center, Col: board.Center}, Score: 0, ElapsedTime: time.Since(start)}
	}
	if len(candidates) == 1 {
		return Result{Position: candidates[0].Move, Score: 0, ForcedMove: true, ElapsedTime: time.Since(start)}
	}

	dynamicTimeLimit := time.Duration(softTimeMs) * time.Millisecond
	switch {
	case b.Count <= 6:
		dynamicTimeLimit = time.Duration(float64(dynamicTimeLimit) * 0.7)
	case len(candidates) <= 3:
		dynamicTimeLimit = time.Duration(float64(dynamicTimeLimit) * 0.3)
	}

	ctx.SoftDeadline = start.Add(dynamicTimeLimit)
	loopCutoff := start.Add(time.Duration(float64(dynamicTimeLimit) * 0.8))

	moveList := make([]board.Move, len(candidates))
	for i, c := range candidates {
		moveList[i] = c.Move
	}
	if vctHintMove != nil {
		moveList = append([]board.Move{*vctHintMove}, moveList...)
	}

	var depthHistory []DepthRecord
	var lastRoot rootSearchResult
	completedDepth := 0
	interrupted := false

	lastRoot = findBestMoveWithTT(ctx, b, hash, color, 1, randomFactor, moveList, nil, scoreThreshold)
	depthHistory = append(depthHistory, DepthRecord{Depth: 1, Score: lastRoot.Score, Move: lastRoot.Move})
	completedDepth = 1

	for d := 2; d <= maxDepth; d++ {
		if time.Now().After(loopCutoff) || ctx.Interrupted() {
			interrupted = true
			break
		}
		ordered := movePVFront(moveList, lastRoot.Move)
		window := []int{lastRoot.Score - aspirationWindow, lastRoot.Score + aspirationWindow}
		result := findBestMoveWithTT(ctx, b, hash, color, d, randomFactor, ordered, window, scoreThreshold)
		if result.FailedAspiration {
			result = findBestMoveWithTT(ctx, b, hash, color, d, randomFactor, ordered, nil, scoreThreshold)
		}
		lastRoot = result
		depthHistory = append(depthHistory, DepthRecord{Depth: d, Score: result.Score, Move: result.Move})
		completedDepth = d
		if ctx.Interrupted() {
			interrupted = true
			break
		}
	}

	res := Result{
		Position:        lastRoot.Move,
		Score:           lastRoot.Score,
		Candidates:      lastRoot.Candidates,
		RandomSelection: lastRoot.RandomSelection,
		WasTieBreak:     lastRoot.WasTieBreak,
		CompletedDepth:  completedDepth,
		Interrupted:     interrupted,
		ElapsedTime:     time.Since(start),
		DepthHistory:    depthHistory,
		Stats:           ctx.Stats,
	}

	if interrupted {
		applyTimePressureFallback(&res, depthHistory)
	}
	return res
}

// findWinningMove looks for a move that completes five for color right
// now (spec §4.9 step 3b).
func findWinningMove(b *board.Board, color board.Color) (board.Move, bool) {
	for _, m := range b.CandidateCells() {
		if rules.Default.CheckWin(b, m, color) {
			return m, true
		}
	}
	return board.Move{}, false
}

// opponentImmediateFourDefense scans the opponent's existing stones for
// an already-formed four (open or closed) and returns a defense square —
// open fours return either end (both would be accepted; the first found
// is returned) since neither actually stops the win; closed fours return
// their unique defense square.
func opponentImmediateFourDefense(b *board.Board, color board.Color) (board.Move, bool, bool) {
	opp := color.Opponent()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if b.At(r, c) != opp {
				continue
			}
			for _, ax := range lineutil.Axes {
				shp := shape.Classify(b, r, c, ax.DR, ax.DC, opp)
				if shp.Kind != shape.Four {
					continue
				}
				if shp.IsOpen() {
					return shp.End1, false, true
				}
				if shp.IsJump {
					return shp.Gap, isForbiddenForBlack(b, shp.Gap) && color == board.Black, true
				}
				if shp.Open1 {
					return shp.End1, isForbiddenForBlack(b, shp.End1) && color == board.Black, true
				}
				if shp.Open2 {
					return shp.End2, isForbiddenForBlack(b, shp.End2) && color == board.Black, true
				}
			}
		}
	}
	return board.Move{}, false, false
}

func isForbiddenForBlack(b *board.Board, m board.Move) bool {
	return rules.Default.CheckForbiddenMove(b, m.Row, m.Col).IsForbidden
}

// ownCounterFourMoves finds color's own four-creating moves, used to
// build the restricted candidate set when the opponent holds a VCF (spec
// §4.9 step h).
func ownCounterFourMoves(b *board.Board, color board.Color) []board.Move {
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
		b.Undo(m.Row, m.Col)
		if four {
			out = append(out, m)
		}
	}
	return out
}

// applyRestriction narrows candidates to restriction's intersection, but
// only when that intersection is non-empty (spec §4.9 step 4).
func applyRestriction(candidates []movegen.Candidate, restriction []board.Move) []movegen.Candidate {
	if len(restriction) == 0 {
		return candidates
	}
	allowed := make(map[board.Move]bool, len(restriction))
	for _, m := range restriction {
		allowed[m] = true
	}
	var out []movegen.Candidate
	for _, c := range candidates {
		if allowed[c.Move] {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return candidates
	}
	return out
}

func movePVFront(moves []board.Move, pv board.Move) []board.Move {
	out := make([]board.Move, 0, len(moves))
	out = append(out, pv)
	for _, m := range moves {
		if m != pv {
			out = append(out, m)
		}
	}
	return out
}

func staticFallback(b *board.Board, color board.Color, opts pattern.Options, start time.Time) Result {
	candidates := movegen.GenerateSortedMoves(b, color, movegen.Options{Options: opts, MaxStaticEvalCount: 5})
	if len(candidates) == 0 {
		return Result{Position: board.Move{Row: board.Center, Col: board.Center}, ElapsedTime: time.Since(start)}
	}
	top := candidates
	if len(top) > 5 {
		top = top[:5]
	}
	return Result{Position: top[0].Move, Score: top[0].Score, ElapsedTime: time.Since(start), Interrupted: true}
}

func applyTimePressureFallback(res *Result, history []DepthRecord) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Score >= 2500 && history[i].Score > res.Score+1500 {
			res.Position = history[i].Move
			res.Score = history[i].Score
			res.TimePressureFallback = true
			res.FallbackFromDepth = history[i].Depth
			return
		}
	}
}

// rootSearchResult is findBestMoveWithTT's internal return shape.
type rootSearchResult struct {
	Move              board.Move
	Score             int
	Candidates        []RootCandidate
	RandomSelection   *board.Move
	WasTieBreak       bool
	FailedAspiration  bool
}

// findBestMoveWithTT is spec §4.9's root-level search: one ply of
// negamax inlined so per-candidate scores and PVs can be collected,
// followed by optional randomized selection among near-best moves.
func findBestMoveWithTT(ctx *search.Context, b *board.Board, hash uint64, color board.Color, depth int, randomFactor float64, moves []board.Move, aspiration []int, threshold int) rootSearchResult {
	alpha, beta := -search.Five-1, search.Five+1
	if len(aspiration) == 2 {
		alpha, beta = aspiration[0], aspiration[1]
	}

	type scored struct {
		move  board.Move
		score int
	}
	var results []scored
	best := -search.Five - 1

	for _, m := range moves {
		if b.At(m.Row, m.Col) != board.Empty {
			continue
		}
		b.Place(m.Row, m.Col, color)
		childHash := board.Update(hash, m.Row, m.Col, color)
		childScore := -search.Negamax(ctx, b, childHash, color.Opponent(), depth-1, -beta, -alpha, 1, m, color, true)
		b.Undo(m.Row, m.Col)

		results = append(results, scored{move: m, score: childScore})
		if childScore > best {
			best = childScore
		}
		if childScore > alpha {
			alpha = childScore
		}
	}

	if len(results) == 0 {
		return rootSearchResult{}
	}
	if len(aspiration) == 2 && (best <= aspiration[0] || best >= aspiration[1]) {
		return rootSearchResult{FailedAspiration: true}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	candidates := make([]RootCandidate, len(results))
	for i, r := range results {
		candidates[i] = RootCandidate{Move: r.move, Score: r.score, PrincipalVariation: extractPV(ctx, b, hash, r.move, color)}
	}

	chosen := candidates[0].Move
	chosenScore := candidates[0].Score
	var randomSelection *board.Move
	wasTieBreak := false

	tied := []RootCandidate{candidates[0]}
	for _, c := range candidates[1:] {
		if c.Score == candidates[0].Score {
			tied = append(tied, c)
		}
	}
	if len(tied) > 1 {
		pick := tied[rand.Intn(len(tied))]
		chosen, chosenScore = pick.Move, pick.Score
		wasTieBreak = true
		randomSelection = &chosen
	} else if randomFactor > 0 && rand.Float64() < randomFactor {
		var within []RootCandidate
		for _, c := range candidates {
			if candidates[0].Score-c.Score <= threshold {
				within = append(within, c)
			}
		}
		if len(within) > 0 {
			pick := within[rand.Intn(len(within))]
			chosen, chosenScore = pick.Move, pick.Score
			randomSelection = &chosen
		}
	}

	return rootSearchResult{
		Move: chosen, Score: chosenScore, Candidates: candidates,
		RandomSelection: randomSelection, WasTieBreak: wasTieBreak,
	}
}

// extractPV walks the TT's bestMove chain from the position after m
// (spec §4.9's "PV extraction"), stopping at an occupied target, a
// mandatory-defense violation, or pvMaxPlies.
func extractPV(ctx *search.Context, b *board.Board, hash uint64, m board.Move, color board.Color) []board.Move {
	pv := []board.Move{m}
	b.Place(m.Row, m.Col, color)
	h := board.Update(hash, m.Row, m.Col, color)
	cur := color.Opponent()
	defer func() {
		for i := len(pv) - 1; i >= 1; i-- {
			b.Undo(pv[i].Row, pv[i].Col)
		}
		b.Undo(m.Row, m.Col)
	}()

	for len(pv) < pvMaxPlies {
		entry, ok := ctx.TT.Probe(h)
		if !ok {
			break
		}
		next := entry.BestMove
		if b.At(next.Row, next.Col) != board.Empty {
			break
		}
		b.Place(next.Row, next.Col, cur)
		if s, _ := pattern.EvaluateMove(b, next.Row, next.Col, cur, pattern.Options{EnableMandatoryDefense: true}); s == pattern.NegInf {
			b.Undo(next.Row, next.Col)
			break
		}
		pv = append(pv, next)
		h = board.Update(h, next.Row, next.Col, cur)
		cur = cur.Opponent()
	}
	return trimUnproductivePairs(b, pv, m, color)
}

// trimUnproductivePairs drops trailing attacker-move/defense pairs whose
// attacker move creates a plain four with no follow-up open three (spec
// §4.9's PV-extraction cleanup). pv's moves are already applied to b by
// the caller, so this walks the live board directly.
func trimUnproductivePairs(b *board.Board, pv []board.Move, root board.Move, rootColor board.Color) []board.Move {
	for len(pv) >= 2 && len(pv)%2 == 0 {
		attacker := pv[len(pv)-2]
		attackerColor := rootColor
		if (len(pv)-2)%2 == 1 {
			attackerColor = rootColor.Opponent()
		}
		four, three := false, false
		for _, ax := range lineutil.Axes {
			a := shape.Classify(b, attacker.Row, attacker.Col, ax.DR, ax.DC, attackerColor)
			if a.Kind == shape.Four {
				four = true
			}
			if a.Kind == shape.Three && a.IsOpen() {
				three = true
			}
		}
		if four && !three {
			pv = pv[:len(pv)-2]
			continue
		}
		break
	}
	return pv
}
