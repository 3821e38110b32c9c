package render

import (
	"strings"
	"testing"

	"github.com/harborsim/craneyard/yard/engine"
)

func TestBoard(t *testing.T) {
	st, err := engine.NewState([][]int{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}

	out := Board(st)
	if out == "" {
		t.Fatal("Expected non-empty board rendering")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 2 board rows plus a crane summary, got %d lines", len(lines))
	}
	if !strings.Contains(lines[2], "cranes:") {
		t.Errorf("Last line should be the crane summary, got %q", lines[2])
	}
	// The intake containers and both cranes appear on the board rows.
	if !strings.Contains(out, "0") || !strings.Contains(out, "2") {
		t.Error("Board rows should show the intake containers")
	}
	if !strings.Contains(out, "-0") || !strings.Contains(out, "-1") {
		t.Error("Board rows should mark the idle cranes")
	}
}

func TestBoardMarksCarryingAndBombed(t *testing.T) {
	st, err := engine.NewState([][]int{{0}, {2}})
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	if err := st.Step([]engine.Move{engine.Pick, engine.Bomb}); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	out := Board(st)
	if !strings.Contains(out, "+0") {
		t.Error("A carrying crane should be marked with +")
	}
	if !strings.Contains(out, "bombed") {
		t.Error("The crane summary should report the bombed crane")
	}
	if !strings.Contains(out, "carrying 0") {
		t.Error("The crane summary should report the payload")
	}
}
