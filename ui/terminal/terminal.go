// Package terminal is a tcell frontend that draws the board in a terminal,
// two columns per cell so the grid looks square.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"grid-snake/game"
	"grid-snake/game/board"
	"grid-snake/game/types"
	"grid-snake/ui/palette"
)

const (
	cellWidth = 2
	eventBuf  = 64
)

// Terminal implements game.Frontend. Events are read on a helper goroutine
// and handed to Poll over a buffered channel.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// New initialises the real terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen)
}

// NewWithScreen wraps an uninitialised screen, e.g. a simulation screen.
func NewWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen: screen,
		events: make(chan tcell.Event, eventBuf),
		quit:   make(chan struct{}),
	}
	t.wg.Add(1)
	go t.pump()
	return t, nil
}

func (t *Terminal) pump() {
	defer t.wg.Done()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		default:
			// drop input when the game falls behind
		}
	}
}

// Poll drains pending events without blocking.
func (t *Terminal) Poll() game.Input {
	var in game.Input
	for {
		select {
		case ev := <-t.events:
			handleEvent(ev, &in)
		default:
			return in
		}
	}
}

func handleEvent(ev tcell.Event, in *game.Input) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyUp:
		in.Turns = append(in.Turns, types.North)
	case tcell.KeyRight:
		in.Turns = append(in.Turns, types.East)
	case tcell.KeyDown:
		in.Turns = append(in.Turns, types.South)
	case tcell.KeyLeft:
		in.Turns = append(in.Turns, types.West)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.Quit = true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w', 'W':
			in.Turns = append(in.Turns, types.North)
		case 'd', 'D':
			in.Turns = append(in.Turns, types.East)
		case 's', 'S':
			in.Turns = append(in.Turns, types.South)
		case 'a', 'A':
			in.Turns = append(in.Turns, types.West)
		case 'q', 'Q':
			in.Quit = true
		}
	}
}

func toTcell(c palette.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Terminal) Draw(grid board.Grid, status game.Status) {
	t.screen.Clear()
	for x := range grid {
		for y := range grid[x] {
			style := tcell.StyleDefault.Background(toTcell(palette.CellColor(grid[x][y])))
			for dx := 0; dx < cellWidth; dx++ {
				t.screen.SetContent(x*cellWidth+dx, y, ' ', nil, style)
			}
		}
	}

	line := fmt.Sprintf("length %d", status.Length)
	if status.GameOver() {
		line = fmt.Sprintf("game over - length %d", status.Length)
	}
	drawText(t.screen, 0, types.BoardSize, line)
	t.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// Close restores the terminal and stops the event goroutine.
func (t *Terminal) Close() error {
	t.once.Do(func() {
		close(t.quit)
		t.screen.Fini()
		t.wg.Wait()
	})
	return nil
}
