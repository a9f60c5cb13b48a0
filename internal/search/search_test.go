package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ef81sp/holorenju/internal/board"
	"github.com/ef81sp/holorenju/internal/pattern"
)

func TestNegamaxFindsImmediateWin(t *testing.T) {
	b := board.New()
	for _, m := range []board.Move{{7, 4}, {7, 5}, {7, 6}, {7, 7}} {
		b.Place(m.Row, m.Col, board.Black)
	}
	hash := board.Compute(b)

	tt := NewTranspositionTable(1024)
	ctx := NewContext(tt, pattern.Default())
	ctx.SoftDeadline = time.Now().Add(2 * time.Second)
	ctx.AbsoluteDeadline = time.Now().Add(2 * time.Second)

	score := Negamax(ctx, b, hash, board.Black, 2, -Five-1, Five+1, 0, board.Move{}, board.Empty, true)
	assert.GreaterOrEqual(t, score, pattern.FourScore)
}

func TestTranspositionTableStoreAndProbe(t *testing.T) {
	tt := NewTranspositionTable(16)
	tt.Store(42, 100, 3, Exact, board.Move{Row: 1, Col: 1})
	entry, ok := tt.Probe(42)
	assert.True(t, ok)
	assert.Equal(t, 100, entry.Score)
	assert.Equal(t, Exact, entry.Bound)
}

func TestTranspositionTableMiss(t *testing.T) {
	tt := NewTranspositionTable(16)
	_, ok := tt.Probe(7)
	assert.False(t, ok)
}

func TestKillerTableRecordAndOrder(t *testing.T) {
	kt := NewKillerTable()
	kt.Record(2, board.Move{Row: 1, Col: 1})
	kt.Record(2, board.Move{Row: 2, Col: 2})
	killers := kt.At(2)
	assert.Equal(t, []board.Move{{Row: 2, Col: 2}, {Row: 1, Col: 1}}, killers)
}

func TestForbiddenCacheMemoizes(t *testing.T) {
	b := board.New()
	b.Place(7, 6, board.Black)
	b.Place(7, 8, board.Black)
	b.Place(6, 7, board.Black)
	b.Place(8, 7, board.Black)

	fc := NewForbiddenCache()
	hash := board.Compute(b)
	res1 := fc.CheckForbiddenMoveWithCache(b, hash, 7, 7)
	_, cached := fc.Get(hash, 7, 7)
	assert.True(t, cached)
	res2 := fc.CheckForbiddenMoveWithCache(b, hash, 7, 7)
	assert.Equal(t, res1, res2)
}

func TestFindVCFSequenceOpenThreeToOpenFourWinsInOneMove(t *testing.T) {
	b := board.New()
	b.Place(7, 4, board.Black)
	b.Place(7, 5, board.Black)
	b.Place(7, 6, board.Black)

	tl := TimeLimiter{Start: time.Now(), Limit: 2 * time.Second}
	seq := FindVCFSequence(b, board.Black, DefaultVCFMaxDepth, tl)
	assert.NotNil(t, seq)
	assert.Equal(t, 1, len(seq.Moves))
	assert.Equal(t, seq.Moves[0], seq.FirstMove)
	assert.True(t, seq.Moves[0] == board.Move{Row: 7, Col: 3} || seq.Moves[0] == board.Move{Row: 7, Col: 7})
}

func TestFindVCFSequenceNoneOnEmptyBoard(t *testing.T) {
	b := board.New()
	tl := TimeLimiter{Start: time.Now(), Limit: 200 * time.Millisecond}
	seq := FindVCFSequence(b, board.Black, DefaultVCFMaxDepth, tl)
	assert.Nil(t, seq)
}
