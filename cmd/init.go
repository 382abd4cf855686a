package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default snake.yaml configuration file",
		Long: `Create a snake.yaml in the current working directory populated with the
current defaults so it can be edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return writeDefaultConfig(viper.GetViper(), configFolderPath)
		},
	}
}

func writeDefaultConfig(v *viper.Viper, dir string) error {
	targetPath := filepath.Join(dir, configFileName)

	err := v.SafeWriteConfigAs(targetPath)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
