package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/game"
	"github.com/arcanaland/croupier/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Sit down at the table and play a session",
	Long: `Play runs an interactive blackjack session in the current terminal.

Keys:
  h        hit
  s        stand
  space    deal the next round
  + / -    raise or lower the bet between rounds
  q        leave the table

Bankroll, minimum bet and bet step come from your config file
(XDG_CONFIG_HOME/croupier/config.toml), created with defaults on
first run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if cfg.NoColor {
			colorize.NoColor = true
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("play needs an interactive terminal")
		}

		g := game.New(cfg.StartingMoney, nil)

		if err := tui.New(g, cfg).Run(); err != nil {
			return fmt.Errorf("session ended abnormally: %w", err)
		}

		printSummary(g, cfg)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
}

// printSummary prints the session ledger after the player leaves the
// table: per-round outcomes and the net result against the buy-in.
func printSummary(g *game.Game, cfg *config.Config) {
	history := g.History()
	if len(history) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(colorize.CyanString("Session: ") +
		colorize.HiWhiteString("%d rounds, %d won, %d lost", len(history), g.Wins(), g.Losses()))

	for i, round := range history {
		var outcome string
		switch round.Outcome {
		case game.OutcomeWin:
			outcome = colorize.GreenString("won %s%d", cfg.Currency, round.Bet)
		case game.OutcomeLoss:
			outcome = colorize.RedString("lost %s%d", cfg.Currency, round.Bet)
		case game.OutcomeBust:
			outcome = colorize.RedString("busted, lost %s%d", cfg.Currency, round.Bet)
		case game.OutcomePush:
			outcome = colorize.HiWhiteString("push")
		}
		fmt.Printf("  %2d. %s  (you %d, dealer %d)  [%s]\n",
			i+1, outcome, round.PlayerTotal, round.DealerTotal, round.ID[:8])
	}

	net := g.Money() - cfg.StartingMoney
	sign := "+"
	netColor := colorize.GreenString
	if net < 0 {
		sign = "-"
		netColor = colorize.RedString
		net = -net
	}
	fmt.Println(colorize.CyanString("Net:     ") + netColor("%s%s%d", sign, cfg.Currency, net))
}
