package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/config"
)

var (
	initPath  string
	initForce bool
)

var configInitCmd = &cobra.Command{
	Use:   "config:init",
	Short: "Write a default config file",
	Long: `Write a commented default config file.

Examples:
  # Create .registrar/config.yaml in the current directory
  registrar config:init

  # Write somewhere else, replacing any existing file
  registrar config:init --path ~/.config/registrar/config.yaml --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfigFile(initPath, initForce); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", initPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVarP(&initPath, "path", "p", localConfigPath, "destination of the config file")
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(configInitCmd)
}

// initConfigFile writes the default config to path, refusing to replace an
// existing file unless force is set.
func initConfigFile(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}
	return config.WriteDefaultConfig(path)
}
