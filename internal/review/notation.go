package review

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ef81sp/holorenju/internal/board"
)

// ParseMove decodes one letter-number token (spec §6: "the letter encodes
// column (A→0) and the number encodes display row (1→row 14, 15→row 0)").
func ParseMove(token string) (board.Move, error) {
	token = strings.TrimSpace(token)
	if len(token) < 2 {
		return board.Move{}, fmt.Errorf("review: move token %q too short", token)
	}

	letter := token[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return board.Move{}, fmt.Errorf("review: move token %q has no column letter", token)
	}
	col := int(letter - 'A')

	n, err := strconv.Atoi(token[1:])
	if err != nil {
		return board.Move{}, fmt.Errorf("review: move token %q has no display row: %w", token, err)
	}
	row := 15 - n

	if !board.IsValidPosition(row, col) {
		return board.Move{}, fmt.Errorf("review: move token %q decodes to out-of-range (%d,%d)", token, row, col)
	}
	return board.Move{Row: row, Col: col}, nil
}

// ParseMoveHistory decodes a space-separated move-history string (spec
// §6's moveHistory request field) in order.
func ParseMoveHistory(history string) ([]board.Move, error) {
	fields := strings.Fields(history)
	moves := make([]board.Move, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMove is ParseMove's inverse, used when a response needs to echo
// a move back in the same notation it arrived in.
func FormatMove(m board.Move) string {
	return fmt.Sprintf("%c%d", 'A'+byte(m.Col), 15-m.Row)
}
