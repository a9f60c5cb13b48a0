package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/pattern"
	"github.com/ef81sp/holorenju/internal/search"
)

func TestFindBestMoveIterativeWithTTEmptyBoardPlaysCenter(t *testing.T) {
	b := board.New()
	tt := search.NewTranspositionTable(1024)

	res := FindBestMoveIterativeWithTT(tt, b, board.Black, 2, 300, 0, pattern.Default(), 0, 0, 0)
	assert.Equal(t, board.Move{Row: board.Center, Col: board.Center}, res.Position)
}

func TestFindBestMoveIterativeWithTTTakesImmediateWin(t *testing.T) {
	b := board.New()
	for _, m := range []board.Move{{Row: 7, Col: 4}, {Row: 7, Col: 5}, {Row: 7, Col: 6}, {Row: 7, Col: 7}} {
		b.Place(m.Row, m.Col, board.White)
	}
	tt := search.NewTranspositionTable(1024)

	res := FindBestMoveIterativeWithTT(tt, b, board.White, 4, 500, 0, pattern.Default(), 0, 0, 0)
	require.Equal(t, search.Five, res.Score)
	assert.True(t, res.Position == board.Move{Row: 7, Col: 3} || res.Position == board.Move{Row: 7, Col: 8})
}

func TestFindBestMoveIterativeWithTTDefendsOpponentOpenFour(t *testing.T) {
	b := board.New()
	for _, m := range []board.Move{{Row: 7, Col: 4}, {Row: 7, Col: 5}, {Row: 7, Col: 6}, {Row: 7, Col: 7}} {
		b.Place(m.Row, m.Col, board.Black)
	}
	tt := search.NewTranspositionTable(1024)

	res := FindBestMoveIterativeWithTT(tt, b, board.White, 4, 500, 0, pattern.Default(), 0, 0, 0)
	assert.True(t, res.Position == board.Move{Row: 7, Col: 3} || res.Position == board.Move{Row: 7, Col: 8})
	assert.Equal(t, -search.Five, res.Score)
}

func TestPresetForHardEnablesEveryOption(t *testing.T) {
	hard := PresetFor(Hard)
	assert.Equal(t, pattern.Default(), hard.Options)
	assert.Greater(t, hard.Depth, PresetFor(Medium).Depth)
}

func TestPresetForEasyNarrowsOptionsAndBudget(t *testing.T) {
	easy := PresetFor(Easy)
	assert.False(t, easy.Options.EnableVCT)
	assert.False(t, easy.Options.EnableFukumi)
	assert.Less(t, easy.MaxNodes, PresetFor(Medium).MaxNodes)
}
