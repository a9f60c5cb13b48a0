package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ef81sp/holorenju/internal/board"
)

func TestEvaluateMoveOpenFourOutscoresClosedThree(t *testing.T) {
	opts := Options{}

	openFourBoard := board.New()
	for _, m := range []board.Move{{Row: 7, Col: 6}, {Row: 7, Col: 7}, {Row: 7, Col: 8}} {
		openFourBoard.Place(m.Row, m.Col, board.Black)
	}
	openFourBoard.Place(7, 9, board.Black)
	scoreFour, _ := EvaluateMove(openFourBoard, 7, 9, board.Black, opts)

	closedThreeBoard := board.New()
	closedThreeBoard.Place(7, 5, board.White)
	for _, m := range []board.Move{{Row: 7, Col: 6}, {Row: 7, Col: 7}} {
		closedThreeBoard.Place(m.Row, m.Col, board.Black)
	}
	closedThreeBoard.Place(7, 8, board.Black)
	scoreThree, _ := EvaluateMove(closedThreeBoard, 7, 8, board.Black, opts)

	assert.Greater(t, scoreFour, scoreThree)
}

func TestEvaluateMoveFourThreeBonus(t *testing.T) {
	opts := Options{}
	b := board.New()
	// Build a four along the row and an open three along the column
	// through the same new stone at (7,7).
	b.Place(7, 4, board.Black)
	b.Place(7, 5, board.Black)
	b.Place(7, 6, board.Black)
	b.Place(6, 7, board.Black)
	b.Place(5, 7, board.Black)
	b.Place(7, 7, board.Black)

	score, bk := EvaluateMove(b, 7, 7, board.Black, opts)
	assert.Equal(t, FourThreeBonus, bk.FourThreeBonus)
	assert.Greater(t, score, FourScore+OpenThreeScore)
}

func TestEvaluateMoveMandatoryDefenseGate(t *testing.T) {
	opts := Options{EnableMandatoryDefense: true}
	b := board.New()
	// White already holds an open three; Black plays an unrelated quiet
	// move elsewhere that neither blocks it nor creates a big threat.
	b.Place(7, 6, board.White)
	b.Place(7, 7, board.White)
	b.Place(7, 8, board.White)
	b.Place(0, 0, board.Black)

	score, bk := EvaluateMove(b, 0, 0, board.Black, opts)
	assert.True(t, bk.MandatoryDefenseGated)
	assert.Equal(t, NegInf, score)
}

func TestEvaluateMoveMandatoryDefenseAllowsBlock(t *testing.T) {
	opts := Options{EnableMandatoryDefense: true}
	b := board.New()
	b.Place(7, 6, board.White)
	b.Place(7, 7, board.White)
	b.Place(7, 8, board.White)
	b.Place(7, 5, board.Black)

	score, bk := EvaluateMove(b, 7, 5, board.Black, opts)
	assert.False(t, bk.MandatoryDefenseGated)
	assert.Greater(t, score, NegInf)
}

func TestEvaluateMoveEnableMiseThreatFoldsMiseIntoDefenseGate(t *testing.T) {
	b := board.New()
	// White already holds an open three at row 0, giving DefenseSquares()
	// an OpenFours-priority set that does not include the mise square
	// below.
	b.Place(0, 5, board.White)
	b.Place(0, 6, board.White)
	b.Place(0, 7, board.White)
	// White also threatens a four-and-open-three ("mise") at (10,7): the
	// row axis (10,4)-(10,7) is a closed four (blocked by black at
	// (10,8)), and the column axis (8,7)-(10,7) is an open three.
	b.Place(10, 4, board.White)
	b.Place(10, 5, board.White)
	b.Place(10, 6, board.White)
	b.Place(9, 7, board.White)
	b.Place(8, 7, board.White)
	b.Place(10, 8, board.Black)

	// Black occupies the mise square itself, denying white the chance to
	// ever play it, without blocking white's higher-priority open three.
	b.Place(10, 7, board.Black)

	gated := Options{EnableMandatoryDefense: true}
	score, bk := EvaluateMove(b, 10, 7, board.Black, gated)
	assert.True(t, bk.MandatoryDefenseGated)
	assert.Equal(t, NegInf, score)

	withMiseThreat := Options{EnableMandatoryDefense: true, EnableMiseThreat: true}
	score, bk = EvaluateMove(b, 10, 7, board.Black, withMiseThreat)
	assert.False(t, bk.MandatoryDefenseGated)
	assert.Greater(t, score, NegInf)
}

func TestEvaluateMoveEnableForbiddenVulnerabilityPenalizesUnfinishableFour(t *testing.T) {
	b := board.New()
	// Double-three trap at (3,3): row pair (3,1)-(3,2) and column pair
	// (1,3)-(2,3), each open toward (3,3) — mirrors rules_test.go's
	// TestDoubleThreeForbidden, translated away from center.
	b.Place(3, 1, board.Black)
	b.Place(3, 2, board.Black)
	b.Place(1, 3, board.Black)
	b.Place(2, 3, board.Black)

	// Diagonal four (4,4)-(7,7), blocked at (8,8): its only completion
	// square is (3,3). An exact five there would override the double
	// three, so a black stone at (2,2) makes that completion a six in a
	// row — an overline, forbidden for black.
	b.Place(5, 5, board.Black)
	b.Place(6, 6, board.Black)
	b.Place(7, 7, board.Black)
	b.Place(8, 8, board.White)
	b.Place(2, 2, board.Black)
	b.Place(4, 4, board.Black)

	plain := Options{}
	plainScore, plainBk := EvaluateMove(b, 4, 4, board.Black, plain)
	assert.Equal(t, 0, plainBk.ForbiddenVulnerabilityPenalty)

	penalized := Options{EnableForbiddenVulnerability: true}
	penalizedScore, penalizedBk := EvaluateMove(b, 4, 4, board.Black, penalized)
	assert.Equal(t, ClosedThreeScore*4, penalizedBk.ForbiddenVulnerabilityPenalty)
	assert.Less(t, penalizedScore, plainScore)
}

func TestEvaluateBoardZeroOnEmptyBoard(t *testing.T) {
	b := board.New()
	assert.Equal(t, 0, EvaluateBoard(b, board.Black, Options{}))
}

func TestEvaluateBoardFavorsSideWithThreat(t *testing.T) {
	b := board.New()
	b.Place(7, 6, board.Black)
	b.Place(7, 7, board.Black)
	b.Place(7, 8, board.Black)

	score := EvaluateBoard(b, board.Black, Options{})
	assert.Greater(t, score, 0)
	assert.Less(t, EvaluateBoard(b, board.White, Options{}), 0)
}
