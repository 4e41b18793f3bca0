package tetris

// Cell is one board square. An empty cell has Full == false and a zero Color.
type Cell struct {
	Full  bool
	Color ColorPair
}

// Board is the flat, row-major cell grid. It holds columns*(rows+1) cells:
// row 0 is hidden and only used to detect an overflowing stack.
type Board struct {
	columns int
	rows    int
	cells   []Cell
}

func NewBoard(columns, rows int) *Board {
	return &Board{
		columns: columns,
		rows:    rows,
		cells:   make([]Cell, columns*rows+columns),
	}
}

func (b *Board) Columns() int { return b.columns }
func (b *Board) Rows() int    { return b.rows }
func (b *Board) Len() int     { return len(b.cells) }

func (b *Board) inRange(index int) bool {
	return index >= 0 && index < len(b.cells)
}

// Cell returns the cell at index; out-of-range indices read as empty.
func (b *Board) Cell(index int) Cell {
	if !b.inRange(index) {
		return Cell{}
	}
	return b.cells[index]
}

func (b *Board) Filled(index int) bool {
	return b.Cell(index).Full
}

// Fill sets a cell. Out-of-range indices are ignored.
func (b *Board) Fill(index int, color ColorPair) {
	if b.inRange(index) {
		b.cells[index] = Cell{Full: true, Color: color}
	}
}

// Clear empties a cell. Out-of-range indices are ignored.
func (b *Board) Clear(index int) {
	if b.inRange(index) {
		b.cells[index] = Cell{}
	}
}

// IsRowFull reports whether every cell of a visible row is filled. The hidden
// row 0 never counts as full.
func (b *Board) IsRowFull(row int) bool {
	if row < 1 || row > b.rows {
		return false
	}
	start := row * b.columns
	for _, c := range b.cells[start : start+b.columns] {
		if !c.Full {
			return false
		}
	}
	return true
}

// ClearFullRows scans visible rows top to bottom. Each full row is emptied and
// everything above it drops one row; the hidden row refills empty. It returns
// the number of rows cleared.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for row := 1; row <= b.rows; row++ {
		if !b.IsRowFull(row) {
			continue
		}
		cleared++
		start := row * b.columns
		for i := start; i < start+b.columns; i++ {
			b.cells[i] = Cell{}
		}
		for k := start + b.columns - 1; k > 0; k-- {
			if k-b.columns >= 0 {
				b.cells[k] = b.cells[k-b.columns]
			} else {
				b.cells[k] = Cell{}
			}
		}
	}
	return cleared
}

// Overflowed reports whether any cell of the hidden row is filled.
func (b *Board) Overflowed() bool {
	for _, c := range b.cells[:b.columns] {
		if c.Full {
			return true
		}
	}
	return false
}

// Resting reports whether the piece touches the floor or has a filled cell
// directly beneath any of its blocks.
func (b *Board) Resting(p *Piece) bool {
	if p.Bound(MaxY) >= b.rows {
		return true
	}
	for _, pos := range p.Positions {
		index := PositionToIndex(pos, b.columns)
		if !b.inRange(index) {
			continue
		}
		if b.Filled(index + b.columns) {
			return true
		}
	}
	return false
}

// Lock makes the piece permanent. A normal piece fills its cells; an explosive
// piece instead empties its landing cell and the blast pattern around it.
func (b *Board) Lock(p *Piece) {
	if p.Kind == KindExplosive {
		b.explode(p.Positions[0])
		return
	}
	for _, pos := range p.Positions {
		b.Fill(PositionToIndex(pos, b.columns), p.Color)
	}
}

func (b *Board) explode(center Position) {
	b.Clear(PositionToIndex(center, b.columns))
	for _, off := range ExplosionPattern {
		x := center.X + off.X
		y := center.Y + off.Y
		if y < 0 || y > b.rows {
			y = center.Y
		}
		if x < 0 || x >= b.columns {
			x = center.X
		}
		b.Clear(PositionToIndex(Position{X: x, Y: y}, b.columns))
	}
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// Cells returns a copy of the cell slice.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}
