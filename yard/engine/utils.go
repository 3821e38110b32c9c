package engine

// ManhattanDistance calculates the Manhattan distance between two positions.
func ManhattanDistance(from, to Position) int {
	dr := from.Row - to.Row
	if dr < 0 {
		dr = -dr
	}
	dc := from.Col - to.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// CountOccupied counts the containers currently sitting on the board.
func (s *State) CountOccupied() int {
	count := 0
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if s.board[r][c].Occupied {
				count++
			}
		}
	}
	return count
}
