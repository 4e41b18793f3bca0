package tetris

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = Palette[4]
	blue = Palette[0]
)

func fillRow(b *Board, row int, color ColorPair, skip ...int) {
	skipped := map[int]bool{}
	for _, x := range skip {
		skipped[x] = true
	}
	for x := 0; x < b.Columns(); x++ {
		if skipped[x] {
			continue
		}
		b.Fill(PositionToIndex(Position{x, row}, b.Columns()), color)
	}
}

func filledAt(b *Board, x, y int) bool {
	return b.Filled(PositionToIndex(Position{x, y}, b.Columns()))
}

func countFilled(b *Board) int {
	n := 0
	for _, c := range b.Cells() {
		if c.Full {
			n++
		}
	}
	return n
}

func TestNewBoardHasHiddenRow(t *testing.T) {
	b := NewBoard(10, 20)
	assert.Equal(t, 210, b.Len())
	assert.Equal(t, 0, countFilled(b))
	assert.False(t, b.Overflowed())
}

func TestIsRowFull(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 20, red)
	fillRow(b, 19, red, 7)
	fillRow(b, 0, red)

	assert.True(t, b.IsRowFull(20))
	assert.False(t, b.IsRowFull(19), "one empty cell")
	assert.False(t, b.IsRowFull(0), "hidden row is never full")
	assert.False(t, b.IsRowFull(21))
}

func TestClearFullRowsWithoutFullRowsIsNoop(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 20, red, 0)
	fillRow(b, 18, blue, 3, 4)
	before := b.Cells()

	assert.Equal(t, 0, b.ClearFullRows())
	if diff := cmp.Diff(before, b.Cells()); diff != "" {
		t.Errorf("board changed (-want +got):\n%s", diff)
	}
}

func TestClearFullRowsCompacts(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 20, red)
	b.Fill(PositionToIndex(Position{2, 19}, 10), blue)
	b.Fill(PositionToIndex(Position{5, 18}, 10), blue)
	b.Fill(PositionToIndex(Position{7, 1}, 10), blue)

	require.Equal(t, 1, b.ClearFullRows())

	assert.True(t, filledAt(b, 2, 20))
	assert.True(t, filledAt(b, 5, 19))
	assert.True(t, filledAt(b, 7, 2))
	assert.False(t, filledAt(b, 2, 19))
	assert.False(t, filledAt(b, 5, 18))
	assert.Equal(t, 3, countFilled(b))
	for x := 0; x < 10; x++ {
		assert.False(t, filledAt(b, x, 0), "hidden row x=%d", x)
		assert.False(t, filledAt(b, x, 1), "top row x=%d", x)
	}
}

func TestClearFullRowsMultiple(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 20, red)
	fillRow(b, 19, red)
	fillRow(b, 17, red)
	b.Fill(PositionToIndex(Position{4, 18}, 10), blue)
	b.Fill(PositionToIndex(Position{1, 16}, 10), blue)

	assert.Equal(t, 3, b.ClearFullRows())
	assert.True(t, filledAt(b, 4, 20))
	assert.True(t, filledAt(b, 1, 19))
	assert.Equal(t, 2, countFilled(b))
}

func TestOverflowed(t *testing.T) {
	b := NewBoard(10, 20)
	b.Fill(PositionToIndex(Position{9, 1}, 10), red)
	assert.False(t, b.Overflowed())
	b.Fill(PositionToIndex(Position{9, 0}, 10), red)
	assert.True(t, b.Overflowed())
}

func TestResting(t *testing.T) {
	b := NewBoard(10, 20)
	line := Piece{Positions: Shapes[3].Place(3)}

	assert.False(t, b.Resting(&line))

	line.Translate(0, 17)
	assert.True(t, b.Resting(&line), "floor")

	line.Translate(0, -5)
	assert.False(t, b.Resting(&line))
	b.Fill(PositionToIndex(Position{3, 16}, 10), red)
	assert.True(t, b.Resting(&line), "settled cell below")
}

func TestLockNormal(t *testing.T) {
	b := NewBoard(10, 20)
	p := Piece{Positions: Shapes[4].Place(2), Color: blue}
	p.Translate(0, 10)
	b.Lock(&p)

	for _, pos := range p.Positions {
		c := b.Cell(PositionToIndex(pos, 10))
		assert.True(t, c.Full)
		assert.Equal(t, blue, c.Color)
	}
	assert.Equal(t, 4, countFilled(b))
}

func TestLockSkipsOutOfRange(t *testing.T) {
	b := NewBoard(10, 20)
	p := Piece{Positions: [4]Position{{0, -1}, {1, -1}, {1, 0}, {1, 21}}, Color: red}
	assert.NotPanics(t, func() { b.Lock(&p) })
	assert.Equal(t, 1, countFilled(b))
	assert.True(t, filledAt(b, 1, 0))
}

func TestLockExplosiveClearsBlast(t *testing.T) {
	b := NewBoard(10, 20)
	for row := 0; row <= 20; row++ {
		fillRow(b, row, red)
	}
	center := Position{5, 10}
	p := Piece{Positions: [4]Position{center, center, center, center}, Color: ExplosiveColor, Kind: KindExplosive}

	b.Lock(&p)

	assert.False(t, filledAt(b, center.X, center.Y))
	for _, off := range ExplosionPattern {
		assert.False(t, filledAt(b, center.X+off.X, center.Y+off.Y), "offset %+v", off)
	}
	assert.Equal(t, 210-25, countFilled(b))
}

func TestLockExplosiveClampsAtCorner(t *testing.T) {
	b := NewBoard(10, 20)
	for row := 0; row <= 20; row++ {
		fillRow(b, row, red)
	}
	center := Position{0, 20}
	p := Piece{Positions: [4]Position{center, center, center, center}, Kind: KindExplosive}

	assert.NotPanics(t, func() { b.Lock(&p) })

	cleared := []Position{
		{0, 20}, {1, 20}, {2, 20}, {3, 20},
		{1, 19}, {2, 19}, {1, 18},
		{0, 19}, {0, 18}, {0, 17},
	}
	for _, pos := range cleared {
		assert.False(t, filledAt(b, pos.X, pos.Y), "pos %+v", pos)
	}
	assert.True(t, filledAt(b, 4, 20))
	assert.Equal(t, 210-len(cleared), countFilled(b))
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(10, 20)
	fillRow(b, 3, red)
	fillRow(b, 0, red)
	b.Reset()
	assert.Equal(t, 0, countFilled(b))
}

func TestCellsReturnsCopy(t *testing.T) {
	b := NewBoard(4, 4)
	cells := b.Cells()
	cells[5] = Cell{Full: true, Color: red}
	assert.False(t, b.Filled(5))
}
