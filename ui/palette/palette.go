// Package palette maps board cells to the colors every frontend shares.
package palette

import "grid-snake/game/board"

type Color struct {
	R, G, B uint8
}

var (
	White = Color{R: 255, G: 255, B: 255}
	Red   = Color{R: 255, G: 0, B: 0}
	Green = Color{R: 0, G: 255, B: 0}
	Blue  = Color{R: 0, G: 0, B: 255}
	Black = Color{R: 0, G: 0, B: 0}
)

// CellColor returns the fill for c. Unknown tags render black.
func CellColor(c board.Cell) Color {
	switch c {
	case board.Empty:
		return White
	case board.SnakeHead:
		return Red
	case board.SnakeBody:
		return Green
	case board.Food:
		return Blue
	default:
		return Black
	}
}
