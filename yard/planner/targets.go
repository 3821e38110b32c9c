package planner

import (
	"sort"

	"github.com/harborsim/craneyard/yard/engine"
)

// TargetContainers selects the containers to actively work on this turn.
// Starting from the per-row next-due candidates, it greedily picks up to N
// targets ordered by the number of queued containers that would have to be
// kicked onto the board to reach each one, ties broken by container id.
// Kicks committed for earlier picks are credited against later candidates in
// the same row.
func TargetContainers(st *engine.State) []int {
	n := st.Size()
	cand := st.NextCarryOut()
	locs := make(map[int]engine.Location, len(cand))
	for _, id := range cand {
		locs[id] = st.Locate(id)
	}

	kicked := make([]int, n)
	kickCost := func(id int) int {
		loc := locs[id]
		switch loc.Kind {
		case engine.LocBoard, engine.LocCarried:
			return 0
		case engine.LocQueued:
			k := loc.Depth + 1 - kicked[loc.Row]
			if k < 0 {
				k = 0
			}
			return k
		default:
			return engine.UnreachableDistance
		}
	}

	var targets []int
	for len(targets) < n && len(cand) > 0 {
		sort.SliceStable(cand, func(i, j int) bool {
			return kickCost(cand[i]) < kickCost(cand[j])
		})
		id := cand[0]
		targets = append(targets, id)
		if loc := locs[id]; loc.Kind == engine.LocQueued && kicked[loc.Row] < loc.Depth+1 {
			kicked[loc.Row] = loc.Depth + 1
		}
		cand = cand[1:]
	}
	return targets
}

// PickupDestinations converts the current targets into concrete board
// destinations. A target already on the board yields its own cell (go pick
// it up there); a target still queued yields one intake-cell destination per
// container that must be kicked ahead of it, honoring kicks already
// committed for that row. Carried and delivered targets yield nothing.
func PickupDestinations(st *engine.State) []engine.Position {
	n := st.Size()
	kicked := make([]int, n)
	var dests []engine.Position
	for _, id := range TargetContainers(st) {
		loc := st.Locate(id)
		switch loc.Kind {
		case engine.LocBoard:
			dests = append(dests, engine.Position{Row: loc.Row, Col: loc.Col})
		case engine.LocQueued:
			for kicked[loc.Row] < loc.Depth+1 {
				dests = append(dests, engine.Position{Row: loc.Row, Col: 0})
				kicked[loc.Row]++
			}
		}
	}
	return dests
}
