package domain

const (
	// BoardSize is the side length of the square board.
	BoardSize = 9
	// BoxSize is the side length of one box; BoardSize/BoxSize boxes per side.
	BoxSize = 3
)

// CellCoord identifies a cell on the board, row first, (0,0) at top-left.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Group is a completed row, column or 3x3 box. Box Index is 3*(row/3)+(col/3).
type Group struct {
	Axis  Axis `json:"axis"`
	Index int  `json:"index"`
}

// Move places the hand shape in Slot with its top-left corner at Origin.
type Move struct {
	Slot   int       `json:"slot"`
	Origin CellCoord `json:"origin"`
}

// Hint describes a suggested placement for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Move     Move         `json:"move"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Earned   int          `json:"earned"`
	Strategy StrategyTier `json:"strategy"`
}

// BoardState is a read-only view of occupancy and scoring.
type BoardState struct {
	Cells  [BoardSize][BoardSize]bool `json:"cells"`
	Score  int                        `json:"score"`
	Streak int                        `json:"streak"`
	Combo  int                        `json:"combo"`
}

// HandSlot is one shape of the current hand.
type HandSlot struct {
	Shape     []CellCoord `json:"shape"`
	Available bool        `json:"available"`
}

// GameState is what a renderer needs to draw a session.
type GameState struct {
	ID    string     `json:"id,omitempty"`
	Seed  int64      `json:"seed,omitempty"`
	Board BoardState `json:"board"`
	Hand  []HandSlot `json:"hand"`
	Turn  int        `json:"turn"`
	Over  bool       `json:"over"`
}

// Outcome reports the effect of one placement.
type Outcome struct {
	Move    Move        `json:"move"`
	Placed  int         `json:"placed"`
	Groups  []Group     `json:"groups,omitempty"`
	Cleared []CellCoord `json:"cleared,omitempty"`
	Earned  int         `json:"earned"`
	Score   int         `json:"score"`
	Streak  int         `json:"streak"`
	Combo   int         `json:"combo"`
	Dealt   bool        `json:"dealt,omitempty"` // a fresh hand was dealt after this move
	Over    bool        `json:"over,omitempty"`
}
