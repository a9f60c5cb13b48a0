package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ef81sp/holorenju/internal/board"
)

func TestCheckFive(t *testing.T) {
	b := board.New()
	for _, m := range []board.Move{{7, 3}, {7, 4}, {7, 5}, {7, 6}} {
		b.Place(m.Row, m.Col, board.Black)
	}
	assert.True(t, Default.CheckFive(b, 7, 7, board.Black))
	assert.False(t, Default.CheckFive(b, 6, 7, board.Black))
	// board must be unchanged after the call
	assert.Equal(t, board.Empty, b.At(7, 7))
}

func TestCheckWinOverlineDoesNotWinForBlack(t *testing.T) {
	b := board.New()
	for _, c := range []int{2, 3, 4, 5, 6} {
		b.Place(7, c, board.Black)
	}
	// Playing (7,7) makes six in a row: overline, not a win for black.
	assert.False(t, Default.CheckWin(b, board.Move{Row: 7, Col: 7}, board.Black))
}

func TestCheckWinWhiteOverlineWins(t *testing.T) {
	b := board.New()
	for _, c := range []int{2, 3, 4, 5, 6} {
		b.Place(7, c, board.White)
	}
	assert.True(t, Default.CheckWin(b, board.Move{Row: 7, Col: 7}, board.White))
}

func TestOverlineForbidden(t *testing.T) {
	b := board.New()
	for _, c := range []int{2, 3, 4, 5, 6} {
		b.Place(7, c, board.Black)
	}
	res := Default.CheckForbiddenMove(b, 7, 7)
	assert.True(t, res.IsForbidden)
	assert.Equal(t, Overline, res.Kind)
	assert.Equal(t, board.Empty, b.At(7, 7))
}

func TestFiveOverridesForbidden(t *testing.T) {
	// The candidate move completes an exact five; per spec §4.5/§6 that
	// always overrides a forbidden verdict, even though the same move
	// would otherwise also read as a four on this axis.
	b := board.New()
	for _, c := range []int{4, 5, 6, 7} {
		b.Place(7, c, board.Black)
	}
	res := Default.CheckForbiddenMove(b, 7, 8)
	assert.False(t, res.IsForbidden)
}

func TestDoubleThreeForbidden(t *testing.T) {
	b := board.New()
	// Horizontal open pair through (7,7): (7,6)-(7,5) with (7,7) empty.
	b.Place(7, 5, board.Black)
	b.Place(7, 6, board.Black)
	// Vertical open pair through (7,7): (6,7)-(5,7).
	b.Place(6, 7, board.Black)
	b.Place(5, 7, board.Black)
	res := Default.CheckForbiddenMove(b, 7, 7)
	assert.True(t, res.IsForbidden)
	assert.Equal(t, DoubleThree, res.Kind)
}

func TestSingleOpenThreeNotForbidden(t *testing.T) {
	b := board.New()
	b.Place(7, 5, board.Black)
	b.Place(7, 6, board.Black)
	res := Default.CheckForbiddenMove(b, 7, 7)
	assert.False(t, res.IsForbidden)
}

func TestDoubleFourForbidden(t *testing.T) {
	b := board.New()
	// Horizontal three stones leaving (7,7) to complete a four with one
	// open end: (7,4),(7,5),(7,6).
	b.Place(7, 4, board.Black)
	b.Place(7, 5, board.Black)
	b.Place(7, 6, board.Black)
	// Vertical three stones leaving (7,7) to complete a four with one
	// open end: (4,7),(5,7),(6,7).
	b.Place(4, 7, board.Black)
	b.Place(5, 7, board.Black)
	b.Place(6, 7, board.Black)
	// Block the far ends so neither axis is itself a five-completing
	// move or an open three independently of the (7,7) play.
	b.Place(7, 3, board.White)
	b.Place(3, 7, board.White)
	res := Default.CheckForbiddenMove(b, 7, 7)
	assert.True(t, res.IsForbidden)
	assert.Equal(t, DoubleFour, res.Kind)
}

func TestWhiteNeverForbidden(t *testing.T) {
	b := board.New()
	for _, c := range []int{2, 3, 4, 5, 6} {
		b.Place(7, c, board.White)
	}
	// White has no forbidden-move concept; this package only defines it
	// for black, so calling it on a white-stone-heavy board for a
	// candidate black move should simply reflect the black patterns.
	res := Default.CheckForbiddenMove(b, 7, 7)
	assert.False(t, res.IsForbidden)
}

func TestCheckJumpFour(t *testing.T) {
	b := board.New()
	b.Place(7, 4, board.Black)
	b.Place(7, 5, board.Black)
	b.Place(7, 6, board.Black)
	// playing (7,8) leaves the gap at (7,7): ● ● ● · ●
	assert.True(t, Default.CheckJumpFour(b, 7, 8, 0, board.Black))
	assert.Equal(t, board.Empty, b.At(7, 8))
}
