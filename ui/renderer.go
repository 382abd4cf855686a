package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grid-snake/game"
	"grid-snake/game/board"
	"grid-snake/game/types"
	"grid-snake/ui/palette"
)

const (
	WindowSize = 700
	CellSize   = WindowSize / types.BoardSize
	Gutter     = 2
	Title      = "Snake"

	gameOverFontSize = 60
)

// Renderer paints a board into the raylib window as a grid of filled cells
// separated by a black gutter.
type Renderer struct {
	cellSize int32
	gutter   int32
	title    string
}

func NewRenderer() *Renderer {
	return &Renderer{
		cellSize: CellSize,
		gutter:   Gutter,
		title:    Title,
	}
}

func toRaylib(c palette.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (r *Renderer) Draw(grid board.Grid, status game.Status) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for x := range grid {
		for y := range grid[x] {
			rl.DrawRectangle(
				int32(x)*r.cellSize+r.gutter,
				int32(y)*r.cellSize+r.gutter,
				r.cellSize-r.gutter,
				r.cellSize-r.gutter,
				toRaylib(palette.CellColor(grid[x][y])))
		}
	}

	if status.GameOver() {
		text := "Game Over!"
		width := rl.MeasureText(text, gameOverFontSize)
		rl.DrawText(text, (WindowSize-width)/2, (WindowSize-gameOverFontSize)/2, gameOverFontSize, rl.Black)
	}

	rl.EndDrawing()

	title := fmt.Sprintf("%s - length %d", Title, status.Length)
	if title != r.title {
		rl.SetWindowTitle(title)
		r.title = title
	}
}
