package threat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ef81sp/holorenju/internal/board"
)

func TestDetectOpenFourFromOpenThree(t *testing.T) {
	// An open three can become an open four by extending either end.
	b := board.New()
	for _, c := range []int{5, 6, 7} {
		b.Place(7, c, board.Black)
	}
	set := Detect(b, board.Black)
	assert.ElementsMatch(t, []board.Move{{Row: 7, Col: 4}, {Row: 7, Col: 8}}, set.OpenFours)
	assert.ElementsMatch(t, set.OpenFours, set.DefenseSquares())
}

func TestDetectOpenThree(t *testing.T) {
	b := board.New()
	b.Place(7, 5, board.White)
	b.Place(7, 6, board.White)
	b.Place(7, 7, board.White)
	set := Detect(b, board.White)
	assert.ElementsMatch(t, []board.Move{{Row: 7, Col: 4}, {Row: 7, Col: 8}}, set.OpenThrees)
}

func TestDetectClosedFourIsNotOpenFour(t *testing.T) {
	b := board.New()
	b.Place(7, 1, board.White) // blocks the low end
	for _, c := range []int{2, 3, 4} {
		b.Place(7, c, board.Black)
	}
	set := Detect(b, board.Black)
	assert.Empty(t, set.OpenFours)
	assert.Contains(t, set.Fours, board.Move{Row: 7, Col: 5})
}

func TestDetectNoThreatsOnEmptyBoard(t *testing.T) {
	b := board.New()
	set := Detect(b, board.Black)
	assert.False(t, set.HasAny())
}
