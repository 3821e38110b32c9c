// Package engine provides the core simulation for the crane yard puzzle.
//
// The engine package implements the yard mechanics including:
//   - The N×N board with per-row intake queues and output slots
//   - Crane state (position, payload, large/regular class, bombing)
//   - The five move primitives and their legality preconditions
//   - Atomic multi-crane turn transitions with collision detection
//   - Automatic carry-in (queue → intake cell) and carry-out
//     (terminal cell → done list)
//
// Core Types:
//
// State is the aggregate of board, queues, done lists and cranes at one
// discrete turn. Move enumerates the per-crane actions and maps to the
// single-character transcript alphabet. Crane and Cell use explicit tagged
// states (Removed, Occupied) rather than sentinel values, so an illegal
// state is not representable.
//
// Usage:
//
//	st, err := engine.NewState(queues)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// One simultaneous turn for all cranes.
//	err = st.Step([]engine.Move{engine.MoveRight, engine.Pick, engine.Stay, engine.Stay, engine.Stay})
//
// Turn Semantics:
//
// All crane moves for a turn are validated together before any mutation is
// committed; a turn is all-or-nothing. After a committed turn the engine
// drains terminal cells into the done lists and refills empty intake cells
// from the queues. The total container count across board, queues, crane
// payloads and done lists is invariant for the lifetime of a State.
package engine
