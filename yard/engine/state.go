package engine

import (
	"errors"
	"fmt"
)

const (
	// MinYardSize and MaxYardSize bound the board side length accepted by
	// NewState.
	MinYardSize = 2
	MaxYardSize = 50

	// UnreachableDistance is a distance larger than any path on a legal board.
	UnreachableDistance = 999999
)

// Legality failure classes surfaced by Step. Each violation is wrapped with
// the offending crane index; use errors.Is to classify.
var (
	ErrMoveCount        = errors.New("move vector length does not match crane count")
	ErrCraneBombed      = errors.New("crane has already bombed")
	ErrAlreadyCarrying  = errors.New("crane is already carrying a container")
	ErrNotCarrying      = errors.New("crane is not carrying a container")
	ErrNoContainer      = errors.New("no container at the crane's cell")
	ErrCellOccupied     = errors.New("a container already occupies the cell")
	ErrOffBoard         = errors.New("move leaves the board")
	ErrBlocked          = errors.New("cannot move over a container while carrying")
	ErrBombWhileCarry   = errors.New("cannot bomb while carrying a container")
	ErrCollision        = errors.New("cranes collided")
)

// State is the aggregate of board, intake queues, done lists and cranes at
// one discrete turn. Only Step and Execute mutate a State; planning code
// reads it through the accessor methods.
type State struct {
	size    int
	total   int      // container count fixed at construction
	present []bool   // indexed by container id
	queues  [][]int  // queues[r]: tail is the next container to enter row r
	done    [][]int  // done[r]: delivery order at row r's output slot
	board   [][]Cell
	cranes  []Crane
}

// NewState builds the initial state for the given intake queues. queues[r]
// lists row r's containers in arrival order (index 0 enters first). All rows
// must have the same length, between zero and the board size; container ids
// must be unique and below size². Crane i starts at row i, column 0; crane 0
// is the large crane. The initial carry-in is performed before returning.
func NewState(queues [][]int) (*State, error) {
	n := len(queues)
	if n < MinYardSize || n > MaxYardSize {
		return nil, fmt.Errorf("yard size must be between %d and %d, got %d", MinYardSize, MaxYardSize, n)
	}

	rowLen := len(queues[0])
	if rowLen > n {
		return nil, fmt.Errorf("queue row 0 has %d containers, more than the board size %d", rowLen, n)
	}
	present := make([]bool, n*n)
	total := 0
	for r, row := range queues {
		if len(row) != rowLen {
			return nil, fmt.Errorf("queue rows must have equal length: row %d has %d, row 0 has %d", r, len(row), rowLen)
		}
		for _, id := range row {
			if id < 0 || id >= n*n {
				return nil, fmt.Errorf("container id %d out of range [0, %d)", id, n*n)
			}
			if present[id] {
				return nil, fmt.Errorf("container id %d appears more than once", id)
			}
			present[id] = true
			total++
		}
	}

	s := &State{
		size:    n,
		total:   total,
		present: present,
		queues:  make([][]int, n),
		done:    make([][]int, n),
		board:   make([][]Cell, n),
		cranes:  make([]Crane, n),
	}
	for r := 0; r < n; r++ {
		// Reversed so that the tail is the next container to enter.
		q := make([]int, len(queues[r]))
		for i, id := range queues[r] {
			q[len(q)-1-i] = id
		}
		s.queues[r] = q
		s.done[r] = []int{}
		s.board[r] = make([]Cell, n)
		s.cranes[r] = Crane{
			Large: r == 0,
			Pos:   CranePosition{Row: r, Col: 0},
		}
	}
	s.carryIn()
	return s, nil
}

// Size returns the board side length (also the crane count).
func (s *State) Size() int {
	return s.size
}

// CraneCount returns the number of cranes, bombed ones included.
func (s *State) CraneCount() int {
	return len(s.cranes)
}

// GetCrane returns a copy of crane i.
func (s *State) GetCrane(i int) Crane {
	return s.cranes[i]
}

// CellAt returns a copy of the board cell at row,col.
func (s *State) CellAt(row, col int) Cell {
	return s.board[row][col]
}

// QueueLen returns the number of containers still queued for row r.
func (s *State) QueueLen(r int) int {
	return len(s.queues[r])
}

// DoneCount returns the number of containers delivered at row r's output.
func (s *State) DoneCount(r int) int {
	return len(s.done[r])
}

// DoneRow returns a copy of row r's done list in delivery order.
func (s *State) DoneRow(r int) []int {
	out := make([]int, len(s.done[r]))
	copy(out, s.done[r])
	return out
}

// TotalContainers returns the container count the state was created with.
func (s *State) TotalContainers() int {
	return s.total
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	next := &State{
		size:    s.size,
		total:   s.total,
		present: s.present, // immutable after construction
		queues:  make([][]int, s.size),
		done:    make([][]int, s.size),
		board:   make([][]Cell, s.size),
		cranes:  make([]Crane, len(s.cranes)),
	}
	for r := 0; r < s.size; r++ {
		next.queues[r] = append([]int(nil), s.queues[r]...)
		next.done[r] = append([]int(nil), s.done[r]...)
		next.board[r] = append([]Cell(nil), s.board[r]...)
	}
	copy(next.cranes, s.cranes)
	return next
}

// Step applies one simultaneous move per crane. Every per-crane precondition
// and every cross-crane collision rule is checked before anything is
// committed; on any violation the state is left untouched and a descriptive
// error identifies the offending crane(s). After a committed turn the
// automatic carry-out and carry-in are performed.
func (s *State) Step(moves []Move) error {
	if len(moves) != len(s.cranes) {
		return fmt.Errorf("%w: %d moves for %d cranes", ErrMoveCount, len(moves), len(s.cranes))
	}

	next := s.Clone()
	for i, mv := range moves {
		crane := s.cranes[i]
		switch mv {
		case Stay:
			// Always legal, bombed cranes included.
		case Pick:
			if crane.Bombed() {
				return fmt.Errorf("crane %d: %w", i, ErrCraneBombed)
			}
			if crane.Carrying {
				return fmt.Errorf("crane %d: %w", i, ErrAlreadyCarrying)
			}
			cell := s.board[crane.Pos.Row][crane.Pos.Col]
			if !cell.Occupied {
				return fmt.Errorf("crane %d at (%d,%d): %w", i, crane.Pos.Row, crane.Pos.Col, ErrNoContainer)
			}
			next.cranes[i].Payload = cell.Container
			next.cranes[i].Carrying = true
			next.board[crane.Pos.Row][crane.Pos.Col] = Cell{}
		case Release:
			if crane.Bombed() {
				return fmt.Errorf("crane %d: %w", i, ErrCraneBombed)
			}
			if !crane.Carrying {
				return fmt.Errorf("crane %d: %w", i, ErrNotCarrying)
			}
			if s.board[crane.Pos.Row][crane.Pos.Col].Occupied {
				return fmt.Errorf("crane %d at (%d,%d): %w", i, crane.Pos.Row, crane.Pos.Col, ErrCellOccupied)
			}
			next.board[crane.Pos.Row][crane.Pos.Col] = Cell{Container: crane.Payload, Occupied: true}
			next.cranes[i].Payload = 0
			next.cranes[i].Carrying = false
		case Bomb:
			if crane.Bombed() {
				return fmt.Errorf("crane %d: %w", i, ErrCraneBombed)
			}
			if crane.Carrying {
				return fmt.Errorf("crane %d: %w", i, ErrBombWhileCarry)
			}
			next.cranes[i].Pos = CranePosition{Removed: true}
		case MoveUp, MoveLeft, MoveDown, MoveRight:
			if crane.Bombed() {
				return fmt.Errorf("crane %d: %w", i, ErrCraneBombed)
			}
			npos, ok := mv.Next(crane.Pos, s.size)
			if !ok {
				return fmt.Errorf("crane %d moving %s from (%d,%d): %w", i, mv, crane.Pos.Row, crane.Pos.Col, ErrOffBoard)
			}
			if !crane.Large && crane.Carrying && s.board[npos.Row][npos.Col].Occupied {
				return fmt.Errorf("crane %d moving %s into (%d,%d): %w", i, mv, npos.Row, npos.Col, ErrBlocked)
			}
			next.cranes[i].Pos = npos
		default:
			return fmt.Errorf("crane %d: unknown move %d", i, int(mv))
		}
	}

	// Cross-crane legality: no shared destination, no position swap.
	for i := range next.cranes {
		if next.cranes[i].Bombed() {
			continue
		}
		for j := 0; j < i; j++ {
			if next.cranes[j].Bombed() {
				continue
			}
			pi, pj := s.cranes[i].Pos, s.cranes[j].Pos
			qi, qj := next.cranes[i].Pos, next.cranes[j].Pos
			if qi == qj || (qi == pj && qj == pi) {
				return fmt.Errorf("cranes %d and %d: %w", j, i, ErrCollision)
			}
		}
	}

	*s = *next
	s.carryOut()
	s.carryIn()
	return nil
}

// Execute applies a whole sequence of turns, stopping at the first failure.
func (s *State) Execute(turns [][]Move) error {
	for t, moves := range turns {
		if err := s.Step(moves); err != nil {
			return fmt.Errorf("turn %d: %w", t, err)
		}
	}
	return nil
}

// carryOut drains every occupied terminal cell into its row's done list.
func (s *State) carryOut() {
	last := s.size - 1
	for r := 0; r < s.size; r++ {
		if cell := s.board[r][last]; cell.Occupied {
			s.done[r] = append(s.done[r], cell.Container)
			s.board[r][last] = Cell{}
		}
	}
}

// carryIn pops the next queued container into each empty intake cell. A row
// is skipped while a carrying crane sits on its intake cell, since that
// crane may be about to release there.
func (s *State) carryIn() {
	for r := 0; r < s.size; r++ {
		if s.board[r][0].Occupied || len(s.queues[r]) == 0 {
			continue
		}
		blocked := false
		for _, c := range s.cranes {
			if c.Carrying && c.Pos.At(r, 0) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		tail := len(s.queues[r]) - 1
		s.board[r][0] = Cell{Container: s.queues[r][tail], Occupied: true}
		s.queues[r] = s.queues[r][:tail]
	}
}

// Locate returns the tagged whereabouts of a container: on the board, queued,
// carried, or done. Containers absent from the problem report as done.
func (s *State) Locate(container int) Location {
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if cell := s.board[r][c]; cell.Occupied && cell.Container == container {
				return Location{Kind: LocBoard, Row: r, Col: c}
			}
		}
	}
	for r := 0; r < s.size; r++ {
		k := len(s.queues[r])
		for depth := 0; depth < k; depth++ {
			if s.queues[r][k-1-depth] == container {
				return Location{Kind: LocQueued, Row: r, Depth: depth}
			}
		}
	}
	for i, c := range s.cranes {
		if c.Carrying && c.Payload == container {
			return Location{Kind: LocCarried, Crane: i}
		}
	}
	return Location{Kind: LocDone}
}

// ExitRow returns the output row a container must be delivered to.
func (s *State) ExitRow(container int) int {
	return container / s.size
}

// rowCandidates returns the ids destined for row r's output, in required
// delivery order (ascending id).
func (s *State) rowCandidates(r int) []int {
	var ids []int
	for id := r * s.size; id < (r+1)*s.size; id++ {
		if s.present[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// RequiredDeliveries returns the ids row r's output must receive, in
// required delivery order.
func (s *State) RequiredDeliveries(r int) []int {
	return append([]int(nil), s.rowCandidates(r)...)
}

// NextCarryOut returns, for every incomplete output row, the container due
// next at that row (one candidate per row).
func (s *State) NextCarryOut() []int {
	var next []int
	for r := 0; r < s.size; r++ {
		cand := s.rowCandidates(r)
		if n := len(s.done[r]); n < len(cand) {
			next = append(next, cand[n])
		}
	}
	return next
}

// RowComplete reports whether every container destined for row r has been
// delivered.
func (s *State) RowComplete(r int) bool {
	return len(s.done[r]) >= len(s.rowCandidates(r))
}

// AllDelivered reports whether every container has been carried out.
func (s *State) AllDelivered() bool {
	delivered := 0
	for r := 0; r < s.size; r++ {
		delivered += len(s.done[r])
	}
	return delivered == s.total
}

// FreeCells lists the empty interior cells usable as temporary container
// parking, scanning each row from column size−2 down to column 2. Columns 0
// and 1 stay clear for intake traffic and the terminal column for carry-out.
func (s *State) FreeCells() []Position {
	var free []Position
	for r := 0; r < s.size; r++ {
		for c := s.size - 2; c >= 2; c-- {
			if !s.board[r][c].Occupied {
				free = append(free, Position{Row: r, Col: c})
			}
		}
	}
	return free
}

// FreeIntakeCells lists intake cells whose queue is exhausted and whose cell
// is empty; these become usable as extra parking.
func (s *State) FreeIntakeCells() []Position {
	var free []Position
	for r := 0; r < s.size; r++ {
		if len(s.queues[r]) == 0 && !s.board[r][0].Occupied {
			free = append(free, Position{Row: r, Col: 0})
		}
	}
	return free
}

// StateSnapshot is an exported copy of a State, for rendering, transport
// and test comparison. Queues are in arrival order, next container first.
type StateSnapshot struct {
	Size   int      `json:"size"`
	Queues [][]int  `json:"queues"`
	Done   [][]int  `json:"done"`
	Board  [][]Cell `json:"board"`
	Cranes []Crane  `json:"cranes"`
}

// Snapshot copies the full state into its exported form.
func (s *State) Snapshot() StateSnapshot {
	snap := StateSnapshot{
		Size:   s.size,
		Queues: make([][]int, s.size),
		Done:   make([][]int, s.size),
		Board:  make([][]Cell, s.size),
		Cranes: append([]Crane(nil), s.cranes...),
	}
	for r := 0; r < s.size; r++ {
		q := make([]int, len(s.queues[r]))
		for i := range q {
			q[i] = s.queues[r][len(q)-1-i]
		}
		snap.Queues[r] = q
		snap.Done[r] = append([]int(nil), s.done[r]...)
		snap.Board[r] = append([]Cell(nil), s.board[r]...)
	}
	return snap
}

// CheckConservation verifies the container conservation invariant: the total
// across board, queues, crane payloads and done lists equals the count the
// state was created with.
func (s *State) CheckConservation() error {
	count := 0
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			if s.board[r][c].Occupied {
				count++
			}
		}
		count += len(s.queues[r])
		count += len(s.done[r])
	}
	for _, c := range s.cranes {
		if c.Carrying {
			count++
		}
	}
	if count != s.total {
		return fmt.Errorf("conservation violated: counted %d containers, expected %d", count, s.total)
	}
	return nil
}
