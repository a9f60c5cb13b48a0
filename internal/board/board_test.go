package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceUndoSymmetry(t *testing.T) {
	b := New()
	before := b.Snapshot()

	b.Place(7, 7, Black)
	b.Place(7, 8, White)
	b.Undo(7, 8)
	b.Undo(7, 7)

	assert.Equal(t, before, b.Snapshot())
	assert.Equal(t, 0, b.Count)
}

func TestCopyIsIndependent(t *testing.T) {
	b := New()
	b.Place(3, 3, Black)
	cp := b.Copy()
	cp.Place(4, 4, White)

	assert.Equal(t, Empty, b.At(4, 4))
	assert.Equal(t, White, cp.At(4, 4))
	assert.True(t, b.Equal(b.Copy()))
	assert.False(t, b.Equal(cp))
}

func TestFromMoves(t *testing.T) {
	b := FromMoves([]Move{{7, 7}, {7, 8}, {8, 7}}, Black)
	assert.Equal(t, Black, b.At(7, 7))
	assert.Equal(t, White, b.At(7, 8))
	assert.Equal(t, Black, b.At(8, 7))
	require.Equal(t, 3, b.Count)
}

func TestIsValidPosition(t *testing.T) {
	assert.True(t, IsValidPosition(0, 0))
	assert.True(t, IsValidPosition(14, 14))
	assert.False(t, IsValidPosition(-1, 0))
	assert.False(t, IsValidPosition(0, 15))
	assert.False(t, IsValidPosition(15, 15))
}

func TestZobristSelfInverse(t *testing.T) {
	h := Compute(New())
	h2 := Update(h, 5, 5, Black)
	h3 := Update(h2, 5, 5, Black)
	assert.Equal(t, h, h3)
}

func TestZobristPlaceCommutesWithCompute(t *testing.T) {
	b := New()
	h := Compute(b)
	b.Place(7, 7, Black)
	h = Update(h, 7, 7, Black)
	assert.Equal(t, Compute(b), h)

	b.Place(7, 8, White)
	h = Update(h, 7, 8, White)
	assert.Equal(t, Compute(b), h)

	b.Undo(7, 8)
	h = Update(h, 7, 8, White)
	assert.Equal(t, Compute(b), h)
}

func TestZobristDistinguishesStones(t *testing.T) {
	b1 := New()
	b1.Place(7, 7, Black)
	b2 := New()
	b2.Place(7, 8, Black)
	assert.NotEqual(t, Compute(b1), Compute(b2))

	b3 := New()
	b3.Place(7, 7, White)
	assert.NotEqual(t, Compute(b1), Compute(b3))
}

func TestWithSideDistinguishesToMove(t *testing.T) {
	b := New()
	h := Compute(b)
	assert.NotEqual(t, WithSide(h, Black), WithSide(h, White))
}
