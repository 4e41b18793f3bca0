package tetris

// Kind tags a piece as normal or explosive.
type Kind int

const (
	KindNormal Kind = iota
	KindExplosive
)

func (k Kind) String() string {
	if k == KindExplosive {
		return "explosive"
	}
	return "normal"
}

// Piece is the active, player-controlled set of four cells.
type Piece struct {
	Positions [4]Position
	Color     ColorPair
	Kind      Kind
}

// Translate moves every block. Bounds are the caller's concern.
func (p *Piece) Translate(dx, dy int) {
	for i := range p.Positions {
		p.Positions[i].X += dx
		p.Positions[i].Y += dy
	}
}

// Rotate turns the piece a quarter turn about the middle of its bounding box.
// Settled cells are not consulted.
func (p *Piece) Rotate() {
	p.Positions = Rotate90(p.Positions, PivotOf(p.Positions))
}

func (p Piece) Bound(b Bound) int {
	return Bounds(p.Positions, b)
}

// Occupies reports whether any block maps to the flat board index. A block
// pushed past the right wall wraps onto the next row, as it does on lock.
func (p Piece) Occupies(index, columns int) bool {
	for _, q := range p.Positions {
		if PositionToIndex(q, columns) == index {
			return true
		}
	}
	return false
}
