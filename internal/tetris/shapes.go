package tetris

import "math/rand"

// ColorPair is the two-stop gradient of a filled cell.
type ColorPair struct {
	Foreground string
	Background string
}

// Palette lists the piece colors: blue, orange, green, yellow, red, magenta.
var Palette = []ColorPair{
	{"#0077ff", "#00263b"},
	{"#ff7700", "#3b2600"},
	{"#18b522", "#0c3d0c"},
	{"#f0e40a", "#38320d"},
	{"#aa1300", "#450803"},
	{"#870cc9", "#1f052e"},
}

var ExplosiveColor = ColorPair{"#000000", "#666666"}

// ExplosiveChance is the probability that a spawned piece is explosive.
const ExplosiveChance = 0.05

// Shape is a four-cell template placed at a horizontal offset.
type Shape struct {
	Name    string
	offsets [4]Position
}

// Place returns the shape's cells shifted right by xOffset, on the hidden row.
func (s Shape) Place(xOffset int) [4]Position {
	var out [4]Position
	for i, o := range s.offsets {
		out[i] = Position{X: o.X + xOffset, Y: o.Y}
	}
	return out
}

// Shapes is the spawn catalog. "Block Shape" and "Block Shape 2" are the same
// template; both stay so the square spawns at double weight.
var Shapes = []Shape{
	{Name: "L Shape", offsets: [4]Position{{0, 0}, {1, 0}, {2, 0}, {2, 1}}},
	{Name: "L Shape 2", offsets: [4]Position{{0, 0}, {0, 1}, {1, 0}, {2, 0}}},
	{Name: "Line Shape", offsets: [4]Position{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	{Name: "Line Shape 2", offsets: [4]Position{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	{Name: "T Shape", offsets: [4]Position{{0, 0}, {1, 0}, {1, 1}, {2, 0}}},
	{Name: "Block Shape", offsets: [4]Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	{Name: "Block Shape 2", offsets: [4]Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	{Name: "S Shape", offsets: [4]Position{{0, 0}, {1, 0}, {1, 1}, {2, 1}}},
	{Name: "S Reversed Shape", offsets: [4]Position{{0, 1}, {1, 1}, {1, 0}, {2, 0}}},
}

// ShapeByName looks up a catalog entry.
func ShapeByName(name string) (Shape, bool) {
	for _, s := range Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// ExplosionPattern lists the blast offsets around an explosive piece's landing
// cell: twelve short-range offsets followed by twelve long-range ones.
var ExplosionPattern = [24]Position{
	{-1, 0}, {-2, 0}, {1, 0}, {2, 0},
	{-1, -1}, {-1, 1}, {1, 1}, {1, -1},
	{0, 1}, {0, 2}, {0, -1}, {0, -2},

	{-3, 0}, {3, 0}, {0, 3}, {0, -3},
	{-1, 2}, {-2, 1}, {2, 1}, {1, 2},
	{2, -1}, {1, -2}, {-1, -2}, {-2, -1},
}

// SpawnPiece draws a new active piece. The x offset is uniform in
// [0, columns-3); the offset is drawn before the explosive roll, then the
// shape, then the color.
func SpawnPiece(rng *rand.Rand, columns int) Piece {
	xOffset := rng.Intn(columns - 3)
	if rng.Float64() < ExplosiveChance {
		p := Position{X: xOffset, Y: 0}
		return Piece{
			Positions: [4]Position{p, p, p, p},
			Color:     ExplosiveColor,
			Kind:      KindExplosive,
		}
	}
	shape := Shapes[rng.Intn(len(Shapes))]
	color := Palette[rng.Intn(len(Palette))]
	return Piece{
		Positions: shape.Place(xOffset),
		Color:     color,
		Kind:      KindNormal,
	}
}
