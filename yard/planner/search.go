package planner

import (
	"github.com/harborsim/craneyard/yard/engine"
)

// StepOption is one viable first step toward a destination, with the total
// number of steps to reach it via that first step.
type StepOption struct {
	Move  engine.Move
	Steps int
}

// firstSteps lists the five possible first steps: the four directions plus
// staying in place.
var firstSteps = [5]engine.Move{engine.MoveUp, engine.MoveLeft, engine.MoveDown, engine.MoveRight, engine.Stay}

// ShortestOptions computes, for each of the five possible first steps from
// `from`, the minimal total step count to reach `to` via that first step,
// using breadth-first search over the board. A cell holding a container
// blocks traversal unless mayTraverseOccupied is true (the crane is large,
// or carries nothing). Unreachable first steps are omitted; the result is
// empty when no option reaches the target. Results are computed from scratch
// per call since the board mutates every turn.
func ShortestOptions(st *engine.State, from, to engine.Position, mayTraverseOccupied bool) []StepOption {
	n := st.Size()
	inRange := func(r, c int) bool {
		return r >= 0 && r < n && c >= 0 && c < n
	}

	var options []StepOption
	for _, first := range firstSteps {
		dr, dc := first.Delta()
		sr, sc := from.Row+dr, from.Col+dc
		if !inRange(sr, sc) {
			continue
		}
		if !mayTraverseOccupied && st.CellAt(sr, sc).Occupied {
			continue
		}

		dist := make([][]int, n)
		for r := range dist {
			dist[r] = make([]int, n)
			for c := range dist[r] {
				dist[r][c] = -1
			}
		}
		dist[sr][sc] = 1
		queue := []engine.Position{{Row: sr, Col: sc}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if cur == to {
				options = append(options, StepOption{Move: first, Steps: dist[cur.Row][cur.Col]})
				break
			}
			for _, dir := range engine.Directions {
				dr, dc := dir.Delta()
				nr, nc := cur.Row+dr, cur.Col+dc
				if !inRange(nr, nc) || dist[nr][nc] >= 0 {
					continue
				}
				if !mayTraverseOccupied && st.CellAt(nr, nc).Occupied {
					continue
				}
				dist[nr][nc] = dist[cur.Row][cur.Col] + 1
				queue = append(queue, engine.Position{Row: nr, Col: nc})
			}
		}
	}
	return options
}

// Reachable reports whether any first-step option reaches `to` from `from`.
func Reachable(st *engine.State, from, to engine.Position, mayTraverseOccupied bool) bool {
	return len(ShortestOptions(st, from, to, mayTraverseOccupied)) > 0
}
