package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "croupier",
	Short: "Single-player blackjack for the terminal",
	Long: `Croupier deals single-player blackjack straight into your terminal.
Start a table with 'croupier play'; the dealer stands on 17 and the house
keeps no secrets beyond the hole card.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
