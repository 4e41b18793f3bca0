package tetris

import "time"

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Columns  int
	Rows     int
	CellSize int

	// Cells holds Columns*(Rows+1) cells; the first row is the hidden row.
	Cells []Cell
	Piece Piece

	State        State
	Score        int
	HighScore    int
	LastScore    int
	Difficulty   Difficulty
	CanChange    bool
	TickInterval time.Duration
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Columns:      s.board.Columns(),
		Rows:         s.board.Rows(),
		CellSize:     s.cellSize,
		Cells:        s.board.Cells(),
		Piece:        s.piece,
		State:        s.state,
		Score:        s.score,
		HighScore:    s.highScore,
		LastScore:    s.lastScore,
		Difficulty:   s.difficulty,
		CanChange:    s.canChange,
		TickInterval: s.interval,
	}
}

// Paused reports whether the menu should be shown.
func (s Snapshot) Paused() bool {
	return s.State != StateRunning
}

// At returns what to draw at pos: the active piece wins over the settled cell.
// The piece is matched by board index so the view shows where it would lock.
func (s Snapshot) At(pos Position) (ColorPair, bool) {
	if pos.X < 0 || pos.X >= s.Columns {
		return ColorPair{}, false
	}
	index := PositionToIndex(pos, s.Columns)
	if index < 0 || index >= len(s.Cells) {
		return ColorPair{}, false
	}
	if s.Piece.Occupies(index, s.Columns) {
		return s.Piece.Color, true
	}
	c := s.Cells[index]
	return c.Color, c.Full
}
