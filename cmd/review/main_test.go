package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ef81sp/holorenju/internal/review"
)

func TestRunEchoesOneResponsePerRequestLine(t *testing.T) {
	in := strings.NewReader(`{"moveHistory":"H8 I7","moveIndex":2,"isLightEval":true}` + "\n")
	var out bytes.Buffer

	run(in, &out)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)

	var resp review.Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &resp))
	assert.Equal(t, 2, resp.MoveIndex)
	assert.True(t, resp.IsLightEval)
}

func TestRunMalformedLineYieldsEmptyResponse(t *testing.T) {
	in := strings.NewReader("not json\n")
	var out bytes.Buffer

	run(in, &out)

	assert.Contains(t, out.String(), "{")
}
