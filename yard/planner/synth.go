package planner

import (
	"errors"
	"fmt"

	"github.com/harborsim/craneyard/yard/engine"
)

// ErrNoCombination is returned when no collision-free simultaneous move
// exists for the current destinations. This indicates an assignment or
// reachability defect upstream, not a normal runtime condition.
var ErrNoCombination = errors.New("no collision-free move combination")

// NextMoves synthesizes the turn's simultaneous move vector for the given
// per-crane destinations. A crane without a task may make any single step at
// zero weight; a crane standing on its destination is forced to Pick or
// Release; any other crane contributes its shortest-path first-step options
// weighted by remaining path length. The cross-product of all candidate
// sets is filtered for progress (not every crane staying) and for
// cross-crane collisions, and the combination with the least total remaining
// distance wins, first in enumeration order on ties.
func NextMoves(st *engine.State, dests []Destination) ([]engine.Move, error) {
	n := st.Size()
	nCrane := len(dests)

	perCrane := make([][]StepOption, nCrane)
	for i := 0; i < nCrane; i++ {
		crane := st.GetCrane(i)
		if crane.Bombed() {
			perCrane[i] = []StepOption{{Move: engine.Stay}}
			continue
		}
		pos := engine.Position{Row: crane.Pos.Row, Col: crane.Pos.Col}
		switch {
		case !dests[i].HasTask:
			opts := []StepOption{{Move: engine.Stay}}
			for _, dir := range engine.Directions {
				if _, ok := dir.Next(crane.Pos, n); ok {
					opts = append(opts, StepOption{Move: dir})
				}
			}
			perCrane[i] = opts
		case dests[i].Pos == pos:
			if crane.Carrying {
				perCrane[i] = []StepOption{{Move: engine.Release}}
			} else {
				if !st.CellAt(pos.Row, pos.Col).Occupied {
					return nil, fmt.Errorf("crane %d: no container to pick at (%d,%d)", i, pos.Row, pos.Col)
				}
				perCrane[i] = []StepOption{{Move: engine.Pick}}
			}
		default:
			opts := ShortestOptions(st, pos, dests[i].Pos, crane.Large || !crane.Carrying)
			perCrane[i] = opts
		}
		if len(perCrane[i]) == 0 {
			return nil, fmt.Errorf("crane %d has no move toward (%d,%d): %w", i, dests[i].Pos.Row, dests[i].Pos.Col, ErrNoCombination)
		}
	}

	var best []engine.Move
	bestWeight := -1
	moves := make([]engine.Move, nCrane)
	idx := make([]int, nCrane)
	for {
		weight := 0
		allStay := true
		for i := range perCrane {
			opt := perCrane[i][idx[i]]
			moves[i] = opt.Move
			weight += opt.Steps
			if opt.Move != engine.Stay {
				allStay = false
			}
		}
		if !allStay && (bestWeight < 0 || weight < bestWeight) && collisionFree(st, moves) {
			best = append([]engine.Move(nil), moves...)
			bestWeight = weight
		}

		// Advance the odometer, last crane varying fastest.
		i := nCrane - 1
		for i >= 0 {
			idx[i]++
			if idx[i] < len(perCrane[i]) {
				break
			}
			idx[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}
	if best == nil {
		return nil, ErrNoCombination
	}
	return best, nil
}

// collisionFree checks a candidate simultaneous move vector against the
// cross-crane collision rules: no two non-bombed cranes may end on the same
// cell or swap positions.
func collisionFree(st *engine.State, moves []engine.Move) bool {
	n := st.Size()
	nCrane := len(moves)
	next := make([]engine.CranePosition, nCrane)
	for i := 0; i < nCrane; i++ {
		pos, _ := moves[i].Next(st.GetCrane(i).Pos, n)
		next[i] = pos
	}
	for i := 0; i < nCrane; i++ {
		if next[i].Removed {
			continue
		}
		for j := i + 1; j < nCrane; j++ {
			if next[j].Removed {
				continue
			}
			pi := st.GetCrane(i).Pos
			pj := st.GetCrane(j).Pos
			if next[i] == next[j] || (next[i] == pj && next[j] == pi) {
				return false
			}
		}
	}
	return true
}
