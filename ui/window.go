// Package ui hosts the raylib window frontend.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"grid-snake/game"
	"grid-snake/game/board"
	"grid-snake/game/types"
)

// Window is a game.Frontend backed by a raylib window. It must be created
// and used from the main goroutine.
type Window struct {
	renderer *Renderer
}

func NewWindow() *Window {
	rl.InitWindow(WindowSize, WindowSize, Title)
	rl.SetTargetFPS(60)
	return &Window{renderer: NewRenderer()}
}

// Poll drains raylib's key queue. Closing the window (or Escape, raylib's
// default exit key) requests a stop.
func (w *Window) Poll() game.Input {
	var in game.Input
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if d, ok := keyDirection(key); ok {
			in.Turns = append(in.Turns, d)
		}
		if key == rl.KeyQ {
			in.Quit = true
		}
	}
	if rl.WindowShouldClose() {
		in.Quit = true
	}
	return in
}

func (w *Window) Draw(grid board.Grid, status game.Status) {
	w.renderer.Draw(grid, status)
}

func (w *Window) Close() error {
	rl.CloseWindow()
	return nil
}

func keyDirection(key int32) (types.Direction, bool) {
	switch key {
	case rl.KeyW, rl.KeyUp:
		return types.North, true
	case rl.KeyD, rl.KeyRight:
		return types.East, true
	case rl.KeyS, rl.KeyDown:
		return types.South, true
	case rl.KeyA, rl.KeyLeft:
		return types.West, true
	default:
		return 0, false
	}
}
