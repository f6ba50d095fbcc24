package tui

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/game"
)

// frameState is everything one rendered frame depends on: the engine
// (polled read-only), the pending bet, a transient notice line, and
// the terminal width to fit into.
type frameState struct {
	game   *game.Game
	cfg    *config.Config
	bet    int
	notice string
	width  int
}

// renderFrame lays out the table as a bordered box: bankroll, session
// record, pending bet, both hands, and the prompt line. It is a pure
// projection of frameState so the look of every game situation can be
// asserted in tests.
func renderFrame(st frameState) []string {
	width := st.width
	if width < 40 {
		width = 40
	}
	if width > 100 {
		width = 100
	}
	inner := width - 4

	cur := st.cfg.Currency

	money := colorize.YellowString("Money: %s%d", cur, st.game.Money())
	record := colorize.GreenString("Wins: %d", st.game.Wins()) +
		"  " +
		colorize.RedString("Losses: %d", st.game.Losses())
	betLine := colorize.CyanString("Bet Amount: %s%d", cur, st.bet)

	playerLine := "Player Hand: " + st.game.PlayerHand().Render(false)
	dealerLine := "Dealer Hand: " + st.game.DealerHand().Render(!st.game.RoundOver())

	message := prompt(st.game)
	if st.notice != "" {
		message = st.notice
	}
	messageLine := colorize.New(colorize.FgMagenta, colorize.Bold).Sprint(message)

	rows := []string{
		money,
		record,
		betLine,
		"",
		playerLine,
		dealerLine,
		"",
		messageLine,
	}

	title := "Blackjack"
	lines := make([]string, 0, len(rows)+2)
	// top border: "┌─ " + title + " " is len(title)+4 cells, the body
	// rows are inner+4, so the dash run fills inner-len(title)-1
	lines = append(lines, "┌─ "+bannerTitle(title)+" "+strings.Repeat("─", padWidth(inner, len(title)+1))+"┐")
	for _, row := range rows {
		row = truncateVisible(row, inner)
		lines = append(lines, "│ "+row+strings.Repeat(" ", padWidth(inner, visibleWidth(row)))+" │")
	}
	lines = append(lines, "└"+strings.Repeat("─", inner+2)+"┘")
	return lines
}

// prompt returns the instruction line for the current engine state
func prompt(g *game.Game) string {
	if !g.RoundOver() {
		return "Press 'h' to Hit, 's' to Stand, 'q' to Quit."
	}
	if g.Money() <= 0 {
		return "Game Over! You have no more money."
	}
	return "Round Over! Press space to deal, +/- to change bet, 'q' to Quit."
}

// bannerTitle tints the title with a hue ramp, one truecolor escape
// per rune. Skipped entirely when color output is disabled.
func bannerTitle(title string) string {
	if colorize.NoColor {
		return title
	}

	runes := []rune(title)
	var b strings.Builder
	for i, r := range runes {
		hue := 280.0 + 80.0*float64(i)/float64(len(runes))
		c := colorful.Hsv(hue, 0.55, 1.0)
		red, green, blue := c.RGB255()
		fmt.Fprintf(&b, "\x1b[1m\x1b[38;2;%d;%d;%dm%c\x1b[0m", red, green, blue, r)
	}
	return b.String()
}

// padWidth returns the number of spaces needed to fill a row, never
// negative even when a row overflows a narrow terminal.
func padWidth(inner, used int) int {
	if used >= inner {
		return 0
	}
	return inner - used
}

// truncateVisible cuts s down to max terminal cells, keeping escape
// sequences intact and closing any styling left open by the cut.
func truncateVisible(s string, max int) string {
	if visibleWidth(s) <= max {
		return s
	}

	var b strings.Builder
	width := 0
	inEscape := false
	sawEscape := false
	for _, c := range s {
		if inEscape {
			b.WriteRune(c)
			if c == 'm' {
				inEscape = false
			}
			continue
		}
		if c == '\033' {
			inEscape = true
			sawEscape = true
			b.WriteRune(c)
			continue
		}
		if width == max {
			break
		}
		b.WriteRune(c)
		width++
	}
	if sawEscape {
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// visibleWidth counts terminal cells, excluding ANSI escape sequences
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			width++
		}
	}
	return width
}
