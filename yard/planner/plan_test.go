package planner

import (
	"testing"

	"github.com/harborsim/craneyard/yard/engine"
)

// identityQueues builds queues where container r*n+j arrives j-th at row r.
func identityQueues(n int) [][]int {
	queues := make([][]int, n)
	for r := 0; r < n; r++ {
		queues[r] = make([]int, n)
		for j := 0; j < n; j++ {
			queues[r][j] = r*n + j
		}
	}
	return queues
}

func mustState(t *testing.T, queues [][]int) *engine.State {
	t.Helper()
	st, err := engine.NewState(queues)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return st
}

func TestTargetContainersPrefersCheapTargets(t *testing.T) {
	// Row 0 arrives out of order: container 1 sits on the intake cell while
	// container 0, due first, is still queued behind it. Row 1's next
	// container is already on the board and must rank first.
	st := mustState(t, [][]int{{1, 0}, {2, 3}})

	targets := TargetContainers(st)
	if len(targets) != 2 {
		t.Fatalf("Expected 2 targets, got %v", targets)
	}
	if targets[0] != 2 || targets[1] != 0 {
		t.Errorf("Targets = %v, want [2 0]", targets)
	}
}

func TestPickupDestinations(t *testing.T) {
	st := mustState(t, [][]int{{1, 0}, {2, 3}})

	dests := PickupDestinations(st)
	if len(dests) != 2 {
		t.Fatalf("Expected 2 destinations, got %v", dests)
	}
	// Container 2 is picked up where it sits; container 0 needs one kick,
	// so its blocker on row 0's intake cell becomes a pickup.
	if dests[0] != (engine.Position{Row: 1, Col: 0}) {
		t.Errorf("First destination = %v, want (1,0)", dests[0])
	}
	if dests[1] != (engine.Position{Row: 0, Col: 0}) {
		t.Errorf("Second destination = %v, want (0,0)", dests[1])
	}
}

func TestDestinationsAssignsNearestCranes(t *testing.T) {
	st := mustState(t, identityQueues(5))

	dests := Destinations(st)
	if len(dests) != 5 {
		t.Fatalf("Expected 5 destinations, got %d", len(dests))
	}
	// Every crane starts on its own row's intake cell, which holds that
	// row's next container: each crane is assigned its own cell.
	for i, d := range dests {
		if !d.HasTask {
			t.Errorf("Crane %d should have a task", i)
			continue
		}
		if d.Pos != (engine.Position{Row: i, Col: 0}) {
			t.Errorf("Crane %d destination = %v, want (%d,0)", i, d.Pos, i)
		}
	}
}

func TestDestinationsRoutesCarryingCraneToExit(t *testing.T) {
	st := mustState(t, [][]int{{0}, {2}})
	if err := st.Step([]engine.Move{engine.Pick, engine.Stay}); err != nil {
		t.Fatalf("Pick step failed: %v", err)
	}

	dests := Destinations(st)
	// Crane 0 carries container 0, the next delivery for row 0: it heads
	// for the exit cell.
	if !dests[0].HasTask || dests[0].Pos != (engine.Position{Row: 0, Col: 1}) {
		t.Errorf("Crane 0 destination = %+v, want exit (0,1)", dests[0])
	}
	// Crane 1 stands on its own pickup.
	if !dests[1].HasTask || dests[1].Pos != (engine.Position{Row: 1, Col: 0}) {
		t.Errorf("Crane 1 destination = %+v, want (1,0)", dests[1])
	}
}

func TestNextMovesForcesPickOnArrival(t *testing.T) {
	st := mustState(t, identityQueues(5))

	moves, err := NextMoves(st, Destinations(st))
	if err != nil {
		t.Fatalf("NextMoves failed: %v", err)
	}
	for i, mv := range moves {
		if mv != engine.Pick {
			t.Errorf("Crane %d move = %v, want pick", i, mv)
		}
	}
}

func TestNextMovesAvoidsAllStay(t *testing.T) {
	// No containers, no tasks: the synthesizer must still emit a vector
	// where at least one crane moves, and it must be collision-free.
	st := mustState(t, [][]int{{}, {}})
	dests := []Destination{{}, {}}

	moves, err := NextMoves(st, dests)
	if err != nil {
		t.Fatalf("NextMoves failed: %v", err)
	}
	if moves[0] == engine.Stay && moves[1] == engine.Stay {
		t.Error("Expected at least one crane to move")
	}
	if err := st.Step(moves); err != nil {
		t.Errorf("Synthesized moves rejected by the engine: %v", err)
	}
}

func TestNextMovesTakesShortestRoute(t *testing.T) {
	st := mustState(t, identityQueues(5))
	dests := make([]Destination, 5)
	dests[0] = Destination{Pos: engine.Position{Row: 0, Col: 4}, HasTask: true}

	moves, err := NextMoves(st, dests)
	if err != nil {
		t.Fatalf("NextMoves failed: %v", err)
	}
	if moves[0] != engine.MoveRight {
		t.Errorf("Crane 0 move = %v, want right", moves[0])
	}
}
