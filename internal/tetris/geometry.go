package tetris

// Position is a cell coordinate. Row 0 is the hidden row above the visible
// board, so visible rows run from 1 to Rows inclusive.
type Position struct {
	X int
	Y int
}

// PositionToIndex maps a board coordinate to its index in the flat cell slice.
func PositionToIndex(pos Position, columns int) int {
	return pos.X + columns*pos.Y
}

// Bound selects one reduction over a set of positions.
type Bound int

const (
	MinX Bound = iota
	MaxX
	MinY
	MaxY
)

// Bounds reduces positions to their minimum or maximum on one axis.
func Bounds(positions [4]Position, b Bound) int {
	result := axisValue(positions[0], b)
	for _, p := range positions[1:] {
		v := axisValue(p, b)
		switch b {
		case MinX, MinY:
			if v < result {
				result = v
			}
		default:
			if v > result {
				result = v
			}
		}
	}
	return result
}

func axisValue(p Position, b Bound) int {
	if b == MinX || b == MaxX {
		return p.X
	}
	return p.Y
}

// PivotOf returns the floored midpoint of the bounding box, per axis.
func PivotOf(positions [4]Position) Position {
	minX, maxX := Bounds(positions, MinX), Bounds(positions, MaxX)
	minY, maxY := Bounds(positions, MinY), Bounds(positions, MaxY)
	return Position{
		X: floorMid(minX, maxX),
		Y: floorMid(minY, maxY),
	}
}

func floorMid(lo, hi int) int {
	// lo+(hi-lo)/2 with floor semantics; hi-lo is never negative here.
	return lo + (hi-lo)/2
}

// Rotate90 turns every position a quarter turn about pivot using the exact
// integer matrix (x, y) -> (-y, x). If any block ends up left of column 0 the
// whole set shifts two columns right.
func Rotate90(positions [4]Position, pivot Position) [4]Position {
	var out [4]Position
	for i, p := range positions {
		rx := p.X - pivot.X
		ry := p.Y - pivot.Y
		out[i] = Position{X: pivot.X - ry, Y: pivot.Y + rx}
	}
	if Bounds(out, MinX) < 0 {
		for i := range out {
			out[i].X += 2
		}
	}
	return out
}
