package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ef81sp/holorenju/internal/board"
)

func TestParseMoveDecodesLetterAndDisplayRow(t *testing.T) {
	m, err := ParseMove("H8")
	require.NoError(t, err)
	assert.Equal(t, board.Move{Row: board.Center, Col: board.Center}, m)
}

func TestParseMoveTopAndBottomRows(t *testing.T) {
	top, err := ParseMove("A15")
	require.NoError(t, err)
	assert.Equal(t, board.Move{Row: 0, Col: 0}, top)

	bottom, err := ParseMove("A1")
	require.NoError(t, err)
	assert.Equal(t, board.Move{Row: 14, Col: 0}, bottom)
}

func TestParseMoveRejectsOutOfRange(t *testing.T) {
	_, err := ParseMove("P8")
	assert.Error(t, err)
}

func TestParseMoveHistorySplitsOnWhitespace(t *testing.T) {
	moves, err := ParseMoveHistory("H8 I7 G7")
	require.NoError(t, err)
	require.Len(t, moves, 3)
	assert.Equal(t, board.Move{Row: board.Center, Col: board.Center}, moves[0])
}

func TestFormatMoveRoundTrips(t *testing.T) {
	m, err := ParseMove("J9")
	require.NoError(t, err)
	assert.Equal(t, "J9", FormatMove(m))
}
