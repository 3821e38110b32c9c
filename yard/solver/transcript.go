package solver

import (
	"fmt"

	"github.com/harborsim/craneyard/yard/engine"
	"github.com/harborsim/craneyard/yard/problem"
)

// ParseTranscript converts per-crane transcript lines into a per-turn move
// matrix. Shorter lines are padded with Stay so every turn has one move per
// crane.
func ParseTranscript(lines []string) ([][]engine.Move, error) {
	perCrane := make([][]engine.Move, len(lines))
	turns := 0
	for i, line := range lines {
		moves, err := engine.ParseMoves(line)
		if err != nil {
			return nil, fmt.Errorf("crane %d: %w", i, err)
		}
		perCrane[i] = moves
		if len(moves) > turns {
			turns = len(moves)
		}
	}

	perTurn := make([][]engine.Move, turns)
	for t := 0; t < turns; t++ {
		row := make([]engine.Move, len(lines))
		for i := range perCrane {
			if t < len(perCrane[i]) {
				row[i] = perCrane[i][t]
			} else {
				row[i] = engine.Stay
			}
		}
		perTurn[t] = row
	}
	return perTurn, nil
}

// Replay runs a transcript against a freshly constructed state for the
// problem and returns the terminal state. Replaying the solver's own output
// deterministically reproduces its terminal state.
func Replay(p *problem.Problem, lines []string) (*engine.State, error) {
	if len(lines) != p.Size {
		return nil, fmt.Errorf("expected %d transcript lines, got %d", p.Size, len(lines))
	}
	st, err := engine.NewState(p.Queues)
	if err != nil {
		return nil, err
	}
	turns, err := ParseTranscript(lines)
	if err != nil {
		return nil, err
	}
	if err := st.Execute(turns); err != nil {
		return nil, err
	}
	return st, nil
}

// Verify replays a transcript and checks the outcome: conservation must
// hold, every container must be delivered, and each output row must have
// received its containers in the required order.
func Verify(p *problem.Problem, lines []string) error {
	st, err := Replay(p, lines)
	if err != nil {
		return err
	}
	if err := st.CheckConservation(); err != nil {
		return err
	}
	if !st.AllDelivered() {
		return fmt.Errorf("transcript leaves containers undelivered")
	}
	for r := 0; r < st.Size(); r++ {
		want := st.RequiredDeliveries(r)
		got := st.DoneRow(r)
		if len(got) != len(want) {
			return fmt.Errorf("row %d: delivered %d containers, want %d", r, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				return fmt.Errorf("row %d: delivery %d is container %d, want %d", r, i, got[i], want[i])
			}
		}
	}
	return nil
}
