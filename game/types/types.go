package types

import "fmt"

// BoardSize is the fixed width and height of the toroidal board.
const BoardSize = 10

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Wrap folds p back onto the board. A coordinate of BoardSize becomes 0
// and -1 becomes BoardSize-1.
func Wrap(p Point) Point {
	return Point{X: wrapAxis(p.X), Y: wrapAxis(p.Y)}
}

// InBounds reports whether p already lies on the board.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

func wrapAxis(v int) int {
	v %= BoardSize
	if v < 0 {
		v += BoardSize
	}
	return v
}
