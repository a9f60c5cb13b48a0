// Command selfplay is a smoke-test CLI exercising
// engine.FindBestMoveIterativeWithTT end to end, grounded on the
// teacher's cmd/chessplay-uci/main.go wiring pattern: construct the
// engine's dependencies, feed it a position, print the result.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/engine"
	"github.com/ef81sp/holorenju/internal/review"
	"github.com/ef81sp/holorenju/internal/search"
)

var (
	moves      = flag.String("moves", "", "space-separated letter-number move history to seed the board, e.g. \"H8 I7 G7\"")
	difficulty = flag.String("difficulty", "hard", "easy, medium, or hard")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	history, err := review.ParseMoveHistory(*moves)
	if err != nil {
		log.Fatalf("invalid -moves: %v", err)
	}
	b := board.FromMoves(history, board.Black)
	color := board.Black
	if len(history)%2 == 1 {
		color = board.White
	}

	preset := engine.PresetFor(parseDifficulty(*difficulty))
	tt := search.NewTranspositionTable(search.DefaultTTCapacity)

	result := engine.FindBestMoveIterativeWithTT(tt, b, color, preset.Depth, preset.SoftTimeMs, 0, preset.Options, preset.MaxNodes, engine.DefaultAbsTimeMs, engine.DefaultScoreThreshold)

	log.Printf("played %d moves, %s to move", len(history), color)
	log.Printf("best move %s score %d depth %d nodes %d elapsed %s",
		review.FormatMove(result.Position), result.Score, result.CompletedDepth, result.Stats.Nodes, result.ElapsedTime)
	if result.ForcedMove {
		log.Printf("forced move: only one legal candidate")
	}
	if result.TimePressureFallback {
		log.Printf("time-pressure fallback from depth %d", result.FallbackFromDepth)
	}
}

func parseDifficulty(s string) engine.Difficulty {
	switch strings.ToLower(s) {
	case "easy":
		return engine.Easy
	case "medium":
		return engine.Medium
	default:
		return engine.Hard
	}
}
