package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/pattern"
)

func TestGenerateMovesEmptyBoardReturnsCenter(t *testing.T) {
	b := board.New()
	moves := GenerateMoves(b)
	assert.Equal(t, []board.Move{{Row: board.Center, Col: board.Center}}, moves)
}

func TestGenerateSortedMovesTTMoveFirst(t *testing.T) {
	b := board.New()
	b.Place(7, 7, board.Black)

	opts := Options{TTMove: board.Move{Row: 6, Col: 6}}
	cands := GenerateSortedMoves(b, board.White, opts)
	assert.NotEmpty(t, cands)
	assert.Equal(t, opts.TTMove, cands[0].Move)
}

func TestGenerateSortedMovesDropsForbiddenForBlack(t *testing.T) {
	b := board.New()
	// Build a double-three trap for black at (7,7): two open twos that
	// would each become an open three through it.
	for _, m := range []board.Move{{7, 5}, {7, 6}, {5, 7}, {6, 7}} {
		b.Place(m.Row, m.Col, board.Black)
	}
	opts := Options{}
	cands := GenerateSortedMoves(b, board.Black, opts)
	for _, cand := range cands {
		assert.False(t, cand.Move.Row == 7 && cand.Move.Col == 7)
	}
}

func TestGenerateSortedMovesSkipForbiddenCheckKeepsIt(t *testing.T) {
	b := board.New()
	for _, m := range []board.Move{{7, 5}, {7, 6}, {5, 7}, {6, 7}} {
		b.Place(m.Row, m.Col, board.Black)
	}
	opts := Options{SkipForbiddenCheck: true}
	cands := GenerateSortedMoves(b, board.Black, opts)
	found := false
	for _, cand := range cands {
		if cand.Move.Row == 7 && cand.Move.Col == 7 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerateSortedMovesStaticEvalOrdersByStrength(t *testing.T) {
	b := board.New()
	b.Place(7, 6, board.Black)
	b.Place(7, 7, board.Black)
	b.Place(7, 8, board.Black)

	opts := Options{Options: pattern.Options{}, MaxStaticEvalCount: 50}
	cands := GenerateSortedMoves(b, board.Black, opts)
	assert.NotEmpty(t, cands)
	best := cands[0].Move
	assert.True(t, (best.Row == 7 && best.Col == 5) || (best.Row == 7 && best.Col == 9))
}
