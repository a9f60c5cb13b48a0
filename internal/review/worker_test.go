package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLightEvalReturnsCandidates(t *testing.T) {
	req := Request{MoveHistory: "H8 I7 G7", MoveIndex: 3, PlayerFirst: true, IsLightEval: true}
	resp := Evaluate(req)

	require.NotEmpty(t, resp.Candidates)
	assert.Equal(t, 3, resp.MoveIndex)
	assert.True(t, resp.IsLightEval)
	assert.Nil(t, resp.ForcedWinType)
}

func TestEvaluateInvalidMoveHistoryFallsBackToSafeDefault(t *testing.T) {
	req := Request{MoveHistory: "not a move", MoveIndex: 0}
	resp := Evaluate(req)
	assert.Equal(t, 7, resp.BestMove.Row)
	assert.Equal(t, 7, resp.BestMove.Col)
	assert.Equal(t, 0, resp.BestScore)
}

func TestEvaluateFullReviewReportsNoForcedWin(t *testing.T) {
	req := Request{MoveHistory: "H8 I9 J10 G7 F6 K11", MoveIndex: 6, IsLightEval: false, PlayerFirst: true}
	resp := Evaluate(req)

	assert.GreaterOrEqual(t, resp.CompletedDepth, 1)
	require.NotEmpty(t, resp.Candidates)
	assert.GreaterOrEqual(t, resp.Candidates[0].SearchScore, resp.BestScore-1)
	assert.Nil(t, resp.ForcedWinType)
}
