package solver

import (
	"fmt"
	"log"

	"github.com/harborsim/craneyard/yard/engine"
	"github.com/harborsim/craneyard/yard/planner"
	"github.com/harborsim/craneyard/yard/problem"
)

// Status is the terminal state of a solver run.
type Status int

const (
	// StatusDone means every container was delivered.
	StatusDone Status = iota
	// StatusTurnLimit means the turn ceiling was reached first; the emitted
	// schedule is partial but still valid.
	StatusTurnLimit
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusTurnLimit:
		return "turn limit exceeded"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Solution is the schedule produced by a solver run: one move sequence per
// crane, all of equal length.
type Solution struct {
	Status Status
	Turns  int
	Moves  [][]engine.Move // indexed by crane, then turn
}

// Lines encodes the solution as per-crane transcript lines, padded with
// Stay to uniform length.
func (sol *Solution) Lines() []string {
	lines := make([]string, len(sol.Moves))
	for i, moves := range sol.Moves {
		padded := moves
		for len(padded) < sol.Turns {
			padded = append(padded, engine.Stay)
		}
		lines[i] = engine.FormatMoves(padded)
	}
	return lines
}

// Solver owns the single mutable state instance and runs the turn loop.
type Solver struct {
	state    *engine.State
	maxTurns int
	logTurns bool

	// Trace, when set, observes the state after every committed turn.
	Trace func(turn int, moves []engine.Move, st *engine.State)
}

// New creates a solver for the given problem. maxTurns is the turn ceiling;
// a run that exhausts it emits a partial schedule rather than failing.
func New(p *problem.Problem, maxTurns int) (*Solver, error) {
	if maxTurns <= 0 {
		return nil, fmt.Errorf("turn ceiling must be positive, got %d", maxTurns)
	}
	st, err := engine.NewState(p.Queues)
	if err != nil {
		return nil, err
	}
	return &Solver{state: st, maxTurns: maxTurns}, nil
}

// SetLogTurns enables per-turn progress logging.
func (s *Solver) SetLogTurns(on bool) {
	s.logTurns = on
}

// State exposes the solver's state for read access.
func (s *Solver) State() *engine.State {
	return s.state
}

// Solve runs the turn loop to completion or to the turn ceiling. Any engine
// or synthesizer failure is fatal: the synthesizer only submits
// pre-validated moves, so a rejected turn indicates a planning defect.
func (s *Solver) Solve() (*Solution, error) {
	nCrane := s.state.CraneCount()
	var perTurn [][]engine.Move

	turn := 0
	for !s.state.AllDelivered() && turn < s.maxTurns {
		dests := planner.Destinations(s.state)
		moves, err := planner.NextMoves(s.state, dests)
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", turn, err)
		}
		if err := s.state.Step(moves); err != nil {
			return nil, fmt.Errorf("turn %d: %w", turn, err)
		}
		if s.logTurns {
			log.Printf("turn %3d: %s", turn, engine.FormatMoves(moves))
		}
		if s.Trace != nil {
			s.Trace(turn, moves, s.state)
		}
		perTurn = append(perTurn, moves)
		turn++
	}

	status := StatusDone
	if !s.state.AllDelivered() {
		status = StatusTurnLimit
	}

	// Transpose from per-turn to per-crane sequences.
	moves := make([][]engine.Move, nCrane)
	for i := 0; i < nCrane; i++ {
		moves[i] = make([]engine.Move, len(perTurn))
		for t, turnMoves := range perTurn {
			moves[i][t] = turnMoves[i]
		}
	}
	return &Solution{Status: status, Turns: len(perTurn), Moves: moves}, nil
}
