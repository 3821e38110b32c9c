package engine

// Position represents row,col coordinates on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CranePosition is a crane's location: an active board cell, or the removed
// state a crane enters permanently after bombing.
type CranePosition struct {
	Row     int  `json:"row"`
	Col     int  `json:"col"`
	Removed bool `json:"removed,omitempty"`
}

// At reports whether the crane is active at the given cell.
func (p CranePosition) At(row, col int) bool {
	return !p.Removed && p.Row == row && p.Col == col
}

// Cell is one board position: empty, or occupied by a single container.
type Cell struct {
	Container int  `json:"container,omitempty"` // meaningful only when Occupied
	Occupied  bool `json:"occupied,omitempty"`
}

// Crane is one yard crane. The large crane may occupy a cell containing a
// container while carrying its own; regular cranes cannot. A bombed crane is
// permanently inert: it no longer acts, collides, or occupies a cell.
type Crane struct {
	Large    bool          `json:"large"`
	Pos      CranePosition `json:"pos"`
	Payload  int           `json:"payload,omitempty"` // meaningful only when Carrying
	Carrying bool          `json:"carrying,omitempty"`
}

// Bombed reports whether the crane has permanently removed itself.
func (c Crane) Bombed() bool {
	return c.Pos.Removed
}

// Location kinds returned by State.Locate.
const (
	LocDone    = iota // container has been carried out
	LocCarried        // container hangs from crane Location.Crane
	LocQueued         // container waits in queue Location.Row at Location.Depth
	LocBoard          // container sits on the board at Location.Row/Col
)

// Location is the tagged whereabouts of a single container.
type Location struct {
	Kind  int
	Crane int // crane index, for LocCarried
	Row   int // queue row for LocQueued, board row for LocBoard
	Col   int // board column, for LocBoard
	Depth int // 0 = next to enter, for LocQueued
}
