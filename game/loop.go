package game

import (
	"context"
	"time"

	"grid-snake/game/board"
)

// Frontend renders boards and collects player input.
type Frontend interface {
	// Poll drains the input gathered since the previous call. It must not block.
	Poll() Input
	Draw(grid board.Grid, status Status)
	Close() error
}

// LoopConfig holds the loop timing.
type LoopConfig struct {
	Tick       time.Duration
	DeathPause time.Duration
}

var DefaultLoopConfig = LoopConfig{
	Tick:       400 * time.Millisecond,
	DeathPause: time.Second,
}

// Run drives s at a fixed cadence until the session stops or ctx is done.
// Each tick polls fe, advances the session and draws the new board. After
// a death the final board stays up for DeathPause before Run returns.
func Run(ctx context.Context, s *Session, fe Frontend, cfg LoopConfig) error {
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultLoopConfig.Tick
	}

	fe.Draw(s.Grid(), s.Status())

	ticker := time.NewTicker(cfg.Tick)
	defer ticker.Stop()

	for s.Running() {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case <-ticker.C:
		}

		s.Tick(fe.Poll())
		fe.Draw(s.Grid(), s.Status())
	}

	if !s.Snake().Alive() && cfg.DeathPause > 0 {
		pause := time.NewTimer(cfg.DeathPause)
		defer pause.Stop()
		select {
		case <-ctx.Done():
		case <-pause.C:
		}
	}
	return nil
}
