// Package tui drives the terminal table: it owns raw mode and the
// alternate screen, renders the engine state once per frame, and maps
// single keystrokes onto engine operations. The engine never pushes
// state; the loop here polls it after every input event.
package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/game"
)

const (
	enterAltScreen = "\x1b[?1049h"
	leaveAltScreen = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	clearScreen    = "\x1b[2J\x1b[H"
)

// UI runs one blackjack session on a terminal
type UI struct {
	game   *game.Game
	cfg    *config.Config
	bet    int
	notice string

	in  *os.File
	out io.Writer
}

// New creates a UI bound to stdin/stdout with the pending bet at the
// table minimum.
func New(g *game.Game, cfg *config.Config) *UI {
	return &UI{
		game: g,
		cfg:  cfg,
		bet:  cfg.MinimumBet,
		in:   os.Stdin,
		out:  os.Stdout,
	}
}

// Run enters raw mode and the alternate screen, then loops:
// draw a frame, block for one key, dispatch it. Returns when the
// player quits or the engine reports an unrecoverable error.
func (u *UI) Run() error {
	fd := int(u.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("error entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	fmt.Fprint(u.out, enterAltScreen+hideCursor)
	defer fmt.Fprint(u.out, showCursor+leaveAltScreen)

	buf := make([]byte, 1)
	for {
		u.draw(fd)

		if _, err := u.in.Read(buf); err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}

		quit, err := u.dispatch(buf[0])
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// dispatch applies one keystroke. Keys that do not apply to the
// current state are ignored, so the loud engine errors only ever
// signal deck exhaustion here.
func (u *UI) dispatch(key byte) (quit bool, err error) {
	switch key {
	case 'q', 3: // 3 is ctrl-c, which raw mode delivers as a byte
		return true, nil

	case 'h':
		if !u.game.RoundOver() {
			return false, u.game.Hit()
		}

	case 's':
		if !u.game.RoundOver() {
			return false, u.game.Stand()
		}

	case ' ':
		if u.game.RoundOver() && u.game.Money() > 0 {
			if u.bet > u.game.Money() {
				u.notice = "Insufficient funds!"
				return false, nil
			}
			u.notice = ""
			return false, u.game.StartRound(u.bet)
		}

	case '+':
		if u.game.RoundOver() {
			u.bet += u.cfg.BetStep
			u.notice = ""
		}

	case '-':
		if u.game.RoundOver() && u.bet-u.cfg.BetStep >= u.cfg.MinimumBet {
			u.bet -= u.cfg.BetStep
			u.notice = ""
		}
	}
	return false, nil
}

func (u *UI) draw(fd int) {
	width := 80
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}

	lines := renderFrame(frameState{
		game:   u.game,
		cfg:    u.cfg,
		bet:    u.bet,
		notice: u.notice,
		width:  width,
	})

	fmt.Fprint(u.out, clearScreen)
	for _, line := range lines {
		// raw mode: carriage return is not implied by newline
		fmt.Fprint(u.out, line+"\r\n")
	}
}
