package planner

import (
	"testing"

	"github.com/harborsim/craneyard/yard/engine"
)

// emptyBoard builds a state with no containers anywhere.
func emptyBoard(t *testing.T, n int) *engine.State {
	t.Helper()
	queues := make([][]int, n)
	for r := range queues {
		queues[r] = []int{}
	}
	st, err := engine.NewState(queues)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return st
}

func TestShortestOptionsEmptyBoard(t *testing.T) {
	st := emptyBoard(t, 5)
	opts := ShortestOptions(st, engine.Position{Row: 0, Col: 0}, engine.Position{Row: 4, Col: 4}, false)

	// Up and left leave the board; down, right and stay remain.
	if len(opts) != 3 {
		t.Fatalf("Expected 3 first-step options, got %d", len(opts))
	}
	best := opts[0].Steps
	for _, o := range opts {
		if o.Steps < best {
			best = o.Steps
		}
	}
	if best != 8 {
		t.Errorf("Shortest corner-to-corner distance = %d, want 8", best)
	}
	for _, o := range opts {
		if o.Move == engine.Stay && o.Steps != 9 {
			t.Errorf("Stay option costs %d, want 9", o.Steps)
		}
	}
}

func TestShortestOptionsBlockedByContainers(t *testing.T) {
	// Containers sit on both intake cells of a 2x2 board, walling off
	// column 0 for a loaded regular crane.
	st, err := engine.NewState([][]int{{0}, {2}})
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}

	from := engine.Position{Row: 0, Col: 1}
	to := engine.Position{Row: 0, Col: 0}
	if Reachable(st, from, to, false) {
		t.Error("Blocked traversal should not reach the occupied intake cell")
	}

	opts := ShortestOptions(st, from, to, true)
	if len(opts) == 0 {
		t.Fatal("Free traversal should reach the intake cell")
	}
	best := opts[0].Steps
	for _, o := range opts {
		if o.Steps < best {
			best = o.Steps
		}
	}
	if best != 1 {
		t.Errorf("Shortest distance = %d, want 1", best)
	}
}

func TestReachableSelf(t *testing.T) {
	st := emptyBoard(t, 5)
	at := engine.Position{Row: 2, Col: 2}
	if !Reachable(st, at, at, false) {
		t.Error("A cell should be reachable from itself via the stay option")
	}
}
