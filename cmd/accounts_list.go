package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/console"
)

var accountsReveal bool

var accountsListCmd = &cobra.Command{
	Use:   "accounts:list",
	Short: "List the seed accounts",
	Long: `List the admin and student accounts the console will accept.

Examples:
  registrar accounts:list
  registrar accounts:list --reveal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loadErr != nil {
			return loadErr
		}
		console.WriteAccounts(cmd.OutOrStdout(), cfg.Seed(), accountsReveal)
		return nil
	},
}

func init() {
	accountsListCmd.Flags().BoolVar(&accountsReveal, "reveal", false, "print passwords in clear text")
	rootCmd.AddCommand(accountsListCmd)
}
