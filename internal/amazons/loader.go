package amazons

import (
	"fmt"
	"strings"
)

// DefaultBoardSize is the board size used when no external configuration is
// supplied (spec.md §6).
const DefaultBoardSize = 10

// DefaultOpeningBoard returns the canonical 10x10 opening position.
func DefaultOpeningBoard() *Board {
	b, err := NewBoard(DefaultBoardSize,
		mustParsePositions("a4", "d1", "g1", "j4"),
		mustParsePositions("a7", "d10", "g10", "j7"),
		nil,
	)
	if err != nil {
		panic(fmt.Sprintf("amazons: default opening position is invalid: %v", err))
	}
	return b
}

func mustParsePositions(tokens ...string) []Position {
	positions := make([]Position, len(tokens))
	for i, t := range tokens {
		p, err := ParsePosition(t)
		if err != nil {
			panic(fmt.Sprintf("amazons: invalid built-in position %q: %v", t, err))
		}
		positions[i] = p
	}
	return positions
}

// ParseBoardFile parses the ASCII board-file format from spec.md §6:
//
//	line 1: board size N (2 < N <= 26)
//	line 2: comma-separated player-0 queen positions
//	line 3: comma-separated player-1 queen positions
//	line 4: comma-separated arrow positions (may be empty)
//
// Empty tokens are ignored. Returns ErrInvalidPosition if the contents are
// malformed; callers that want the "offer a default position" fallback
// named in spec.md §6 should catch that error and substitute
// DefaultOpeningBoard().
func ParseBoardFile(data string) (*Board, error) {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	if len(lines) < 4 {
		return nil, fmt.Errorf("%w: board file needs at least 4 lines, got %d", ErrInvalidPosition, len(lines))
	}

	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(lines[0]), "%d", &n); err != nil {
		return nil, fmt.Errorf("%w: malformed board size %q", ErrInvalidPosition, lines[0])
	}

	player0, err := parsePositionList(lines[1])
	if err != nil {
		return nil, err
	}
	player1, err := parsePositionList(lines[2])
	if err != nil {
		return nil, err
	}
	arrows, err := parsePositionList(lines[3])
	if err != nil {
		return nil, err
	}

	return NewBoard(n, player0, player1, arrows)
}

func parsePositionList(line string) ([]Position, error) {
	tokens := strings.Split(line, ",")
	var positions []Position
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		p, err := ParsePosition(tok)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// FormatBoardFile renders b in the board-file format, inverse of
// ParseBoardFile. Arrows and queens are written in the order Board reports
// them, which need not match an originally-loaded file's token order.
func FormatBoardFile(b *Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", b.N)
	writePositions(&sb, b.Queens(Player0))
	sb.WriteByte('\n')
	writePositions(&sb, b.Queens(Player1))
	sb.WriteByte('\n')

	var arrows []Position
	for r := 0; r < b.N; r++ {
		for c := 0; c < b.N; c++ {
			p := Pos(r, c)
			if b.At(p) == Arrow {
				arrows = append(arrows, p)
			}
		}
	}
	writePositions(&sb, arrows)
	sb.WriteByte('\n')

	return sb.String()
}

func writePositions(sb *strings.Builder, positions []Position) {
	for i, p := range positions {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.String())
	}
}
