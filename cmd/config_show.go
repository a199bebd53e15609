package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/registrar/internal/config"
)

var showReveal bool

var configShowCmd = &cobra.Command{
	Use:   "config:show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, config file and REGISTRAR_*
environment overrides have been applied. Passwords are masked unless
--reveal is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loadErr != nil {
			return loadErr
		}
		c := cfg
		if !showReveal {
			c = c.Masked()
		}
		out, err := config.Render(c)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&showReveal, "reveal", false, "print passwords in clear text")
	rootCmd.AddCommand(configShowCmd)
}
