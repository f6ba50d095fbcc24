package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the house rules for this table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		rule := func(label, text string) {
			fmt.Println(colorize.CyanString("%-12s", label) + colorize.HiWhiteString(text))
		}

		fmt.Println()
		rule("Deck:", "one standard 52-card deck, shuffled once per session")
		rule("Deal:", "two cards each, dealer's second card stays face down")
		rule("Aces:", "count 11, dropping to 1 as needed to avoid a bust")
		rule("Dealer:", "draws to 16, stands on all 17s")
		rule("Payout:", "even money on a win; a push returns the bet")
		rule("Blackjack:", "an opening 21 pays even money, same as any other win")
		rule("Splits:", "no splits, doubles, insurance or surrender")
		fmt.Println()
	},
}

func init() {
	RootCmd.AddCommand(rulesCmd)
}
