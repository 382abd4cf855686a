// Package cmd provides the root command and CLI setup for the snake game.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const rootLongDescription = `Snake on a 10x10 board that wraps around at every edge.

Steer with WASD or the arrow keys, eat the food to grow, and do not run into
your own body. Quit with q or Escape, or by closing the window.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "snake",
		Short:         "Toroidal grid snake",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd.Context(), viper.GetViper(), newFrontend)
		},
	}
	configureRootFlags(cmd)
	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.Duration(tickFlagName, defaultTick, "delay between game ticks")
	bindFlagToConfig(flags.Lookup(tickFlagName), tickKey)

	flags.Duration(deathPauseFlagName, defaultDeathPause, "how long the final board stays up after a collision")
	bindFlagToConfig(flags.Lookup(deathPauseFlagName), deathPauseKey)

	flags.StringP(frontendFlagName, "f", defaultFrontend, "frontend to play in: raylib or terminal")
	bindFlagToConfig(flags.Lookup(frontendFlagName), frontendKey)

	flags.Bool(avoidSnakeFlagName, defaultAvoidSnake, "never relocate food onto the snake")
	bindFlagToConfig(flags.Lookup(avoidSnakeFlagName), avoidSnakeKey)

	flags.Uint64(seedFlagName, defaultSeed, "seed for food placement (0 picks one from the clock)")
	bindFlagToConfig(flags.Lookup(seedFlagName), seedKey)

	flags.BoolP("verbose", "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup("verbose"), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
