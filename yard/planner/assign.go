package planner

import (
	"sort"

	"github.com/harborsim/craneyard/yard/engine"
)

// Destination is one crane's goal for the current turn. HasTask is false
// when the crane has nothing to do and may make any single step.
type Destination struct {
	Pos     engine.Position
	HasTask bool
}

// Destinations decides, for every crane, where it should head this turn.
//
// Carrying cranes are routed to their payload's next resting place: the exit
// cell when the payload is a carry-out candidate, otherwise the first
// reachable unclaimed free cell (falling back to emptied intake cells by
// Manhattan distance). A carrying crane that can reach nothing is told to
// release in place, unless it already sits in the terminal column, where
// releasing would corrupt the delivery order.
//
// Each remaining pickup destination is then matched to the nearest idle
// crane able to complete the task; matching is greedy nearest-first with
// ties broken by crane index, one assignment per destination, no
// backtracking.
func Destinations(st *engine.State) []Destination {
	n := st.Size()
	nCrane := st.CraneCount()
	carryOut := st.NextCarryOut()
	pickups := PickupDestinations(st)

	dests := make([]Destination, nCrane)

	isCandidate := func(id int) bool {
		for _, c := range carryOut {
			if c == id {
				return true
			}
		}
		return false
	}
	claimed := func(pos engine.Position) bool {
		for _, d := range dests {
			if d.HasTask && d.Pos == pos {
				return true
			}
		}
		return false
	}

	// restingPlace finds where the given cell's container should come to
	// rest when moved by a crane standing at start. large decides whether
	// the carrying crane may traverse occupied cells.
	restingPlace := func(cell engine.Cell, start engine.Position, large bool) (engine.Position, bool) {
		if cell.Occupied && isCandidate(cell.Container) {
			return engine.Position{Row: st.ExitRow(cell.Container), Col: n - 1}, true
		}
		for _, dest := range st.FreeCells() {
			if Reachable(st, start, dest, large) && !claimed(dest) {
				return dest, true
			}
		}
		var fallback []engine.Position
		for _, dest := range st.FreeIntakeCells() {
			if Reachable(st, start, dest, large) && !claimed(dest) {
				fallback = append(fallback, dest)
			}
		}
		if len(fallback) > 0 {
			sort.SliceStable(fallback, func(i, j int) bool {
				return engine.ManhattanDistance(start, fallback[i]) < engine.ManhattanDistance(start, fallback[j])
			})
			return fallback[0], true
		}
		return engine.Position{}, false
	}

	busy := make([]bool, nCrane)
	for i := 0; i < nCrane; i++ {
		crane := st.GetCrane(i)
		if !crane.Carrying {
			continue
		}
		busy[i] = true
		start := engine.Position{Row: crane.Pos.Row, Col: crane.Pos.Col}
		payload := engine.Cell{Container: crane.Payload, Occupied: true}
		dest, ok := restingPlace(payload, start, crane.Large)
		switch {
		case ok && Reachable(st, start, dest, crane.Large):
			dests[i] = Destination{Pos: dest, HasTask: true}
		case start.Col != n-1:
			// The payload cannot reach any resting place from here.
			// Release it at the current cell rather than stay stuck.
			dests[i] = Destination{Pos: start, HasTask: true}
		default:
			dests[i] = Destination{Pos: dest, HasTask: ok}
		}
	}

	for _, task := range pickups {
		cell := st.CellAt(task.Row, task.Col)
		type candidate struct {
			dist  int
			crane int
		}
		var cands []candidate
		for i := 0; i < nCrane; i++ {
			crane := st.GetCrane(i)
			if busy[i] || crane.Bombed() {
				continue
			}
			// Capable means the crane could carry the container from the
			// pickup cell to a valid release point.
			dest, ok := restingPlace(cell, task, crane.Large)
			if !ok || !Reachable(st, task, dest, crane.Large) {
				continue
			}
			cur := engine.Position{Row: crane.Pos.Row, Col: crane.Pos.Col}
			cands = append(cands, candidate{dist: engine.ManhattanDistance(cur, task), crane: i})
		}
		if len(cands) == 0 {
			continue
		}
		sort.SliceStable(cands, func(i, j int) bool {
			return cands[i].dist < cands[j].dist
		})
		best := cands[0].crane
		dests[best] = Destination{Pos: task, HasTask: true}
		busy[best] = true
	}

	return dests
}
