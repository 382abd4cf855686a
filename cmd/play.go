package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"grid-snake/game"
	"grid-snake/ui"
	"grid-snake/ui/terminal"
)

// ErrUnknownFrontend is returned for a frontend name that is not raylib or terminal.
var ErrUnknownFrontend = errors.New("unknown frontend")

type frontendFactory func(name string) (game.Frontend, error)

func newFrontend(name string) (game.Frontend, error) {
	switch name {
	case frontendWindow:
		return ui.NewWindow(), nil
	case frontendTerminal:
		t, err := terminal.New()
		if err != nil {
			return nil, fmt.Errorf("start terminal frontend: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrontend, name)
	}
}

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game of snake",
		Long:  "Open the selected frontend and play until the snake bites itself or you quit.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), viper.GetViper(), newFrontend)
		},
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(ctx context.Context, v *viper.Viper, factory frontendFactory) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := loadPlayConfig(v)
	logger := newLogger(v)

	fe, err := factory(cfg.Frontend)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fe.Close(); cerr != nil {
			logger.Warn("closing frontend", slog.Any("error", cerr))
		}
	}()

	session := game.NewSession(game.Options{
		Placement: cfg.Placement,
		Seed:      cfg.Seed,
		Logger:    logger,
	})

	err = game.Run(ctx, session, fe, game.LoopConfig{
		Tick:       cfg.Tick,
		DeathPause: cfg.DeathPause,
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	stats := session.Stats()
	logger.Info("game finished",
		slog.String("session", session.UUID),
		slog.String("state", stats.State.String()),
		slog.Int("length", stats.Length),
		slog.Int("ticks", stats.Ticks),
		slog.Duration("duration", stats.Duration()))
	return err
}
