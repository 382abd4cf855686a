// Package board holds the per-tick render projection of a game: a fixed
// grid of cell tags rebuilt from scratch out of the snake and food.
package board

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// Cell tags the content of one board position for one tick.
type Cell uint8

const (
	Empty Cell = iota
	SnakeHead
	SnakeBody
	Food
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case SnakeHead:
		return "head"
	case SnakeBody:
		return "body"
	case Food:
		return "food"
	default:
		return "unknown"
	}
}

// Grid is a snapshot of the board indexed [x][y].
type Grid [types.BoardSize][types.BoardSize]Cell

type Board struct {
	cells Grid
}

func New() *Board {
	return &Board{}
}

// Clear resets every cell to Empty.
func (b *Board) Clear() {
	b.cells = Grid{}
}

func (b *Board) PaintSnakeHead(p types.Point) {
	b.paint(p, SnakeHead)
}

func (b *Board) PaintSnakeBody(p types.Point) {
	b.paint(p, SnakeBody)
}

func (b *Board) PaintFood(p types.Point) {
	b.paint(p, Food)
}

func (b *Board) paint(p types.Point, c Cell) {
	p = types.Wrap(p)
	b.cells[p.X][p.Y] = c
}

// At returns the tag of the (wrapped) position p.
func (b *Board) At(p types.Point) Cell {
	p = types.Wrap(p)
	return b.cells[p.X][p.Y]
}

// Cells returns a copy of the whole grid.
func (b *Board) Cells() Grid {
	return b.cells
}

// Project rebuilds the board from the live entities in the fixed order
// clear, head, body, food. Later paints win, so food shows on top of an
// overlapping snake cell.
func (b *Board) Project(snake *entity.Snake, food *entity.Food) {
	b.Clear()
	b.PaintSnakeHead(snake.Head)
	for _, seg := range snake.Body() {
		b.PaintSnakeBody(seg)
	}
	b.PaintFood(food.Position)
}
