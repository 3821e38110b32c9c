package engine

import "fmt"

// Move is one per-crane action for a single turn.
type Move int

// The five move primitives. The four directions are listed in transcript
// order: up, left, down, right.
const (
	Stay Move = iota
	Pick
	Release
	MoveUp
	MoveLeft
	MoveDown
	MoveRight
	Bomb
)

// Directions lists the four movement moves in transcript order.
var Directions = [4]Move{MoveUp, MoveLeft, MoveDown, MoveRight}

var moveRunes = map[Move]byte{
	Stay:      '.',
	Pick:      'P',
	Release:   'Q',
	MoveUp:    'U',
	MoveLeft:  'L',
	MoveDown:  'D',
	MoveRight: 'R',
	Bomb:      'B',
}

var moveNames = map[Move]string{
	Stay:      "stay",
	Pick:      "pick",
	Release:   "release",
	MoveUp:    "up",
	MoveLeft:  "left",
	MoveDown:  "down",
	MoveRight: "right",
	Bomb:      "bomb",
}

// Rune returns the transcript character for the move.
func (m Move) Rune() byte {
	if c, ok := moveRunes[m]; ok {
		return c
	}
	return '?'
}

// String returns a human-readable name for the move.
func (m Move) String() string {
	if s, ok := moveNames[m]; ok {
		return s
	}
	return fmt.Sprintf("move(%d)", int(m))
}

// IsDirection reports whether the move is one of the four directional moves.
func (m Move) IsDirection() bool {
	return m == MoveUp || m == MoveLeft || m == MoveDown || m == MoveRight
}

// Delta returns the row/col offset of a directional move. Non-directional
// moves have a zero delta.
func (m Move) Delta() (dRow, dCol int) {
	switch m {
	case MoveUp:
		return -1, 0
	case MoveLeft:
		return 0, -1
	case MoveDown:
		return 1, 0
	case MoveRight:
		return 0, 1
	}
	return 0, 0
}

// Next computes the candidate position after the move from pos on a
// size×size board. It returns ok=false when a directional move would leave
// the board. Bomb yields the removed position; a removed crane is inert and
// keeps its position for any move.
func (m Move) Next(pos CranePosition, size int) (CranePosition, bool) {
	if pos.Removed {
		return pos, true
	}
	switch m {
	case Stay, Pick, Release:
		return pos, true
	case Bomb:
		return CranePosition{Removed: true}, true
	default:
		dr, dc := m.Delta()
		next := CranePosition{Row: pos.Row + dr, Col: pos.Col + dc}
		if next.Row < 0 || next.Row >= size || next.Col < 0 || next.Col >= size {
			return pos, false
		}
		return next, true
	}
}

// ParseMove converts a transcript character into a Move.
func ParseMove(c byte) (Move, error) {
	switch c {
	case '.':
		return Stay, nil
	case 'P':
		return Pick, nil
	case 'Q':
		return Release, nil
	case 'U':
		return MoveUp, nil
	case 'L':
		return MoveLeft, nil
	case 'D':
		return MoveDown, nil
	case 'R':
		return MoveRight, nil
	case 'B':
		return Bomb, nil
	}
	return Stay, fmt.Errorf("invalid transcript character %q", c)
}

// ParseMoves converts one crane's transcript line into a move sequence.
func ParseMoves(line string) ([]Move, error) {
	moves := make([]Move, 0, len(line))
	for i := 0; i < len(line); i++ {
		m, err := ParseMove(line[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves renders a move sequence as a transcript line.
func FormatMoves(moves []Move) string {
	buf := make([]byte, len(moves))
	for i, m := range moves {
		buf[i] = m.Rune()
	}
	return string(buf)
}
