package tui

import (
	"math/rand"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/croupier/internal/config"
	"github.com/arcanaland/croupier/internal/game"
)

func plainFrame(t *testing.T, st frameState) []string {
	t.Helper()
	old := colorize.NoColor
	colorize.NoColor = true
	t.Cleanup(func() { colorize.NoColor = old })
	return renderFrame(st)
}

func TestRenderFrameBeforeFirstRound(t *testing.T) {
	g := game.New(100, rand.New(rand.NewSource(1)))
	frame := plainFrame(t, frameState{game: g, cfg: config.Default(), bet: 10, width: 80})

	joined := strings.Join(frame, "\n")
	assert.Contains(t, joined, "Money: €100")
	assert.Contains(t, joined, "Wins: 0")
	assert.Contains(t, joined, "Losses: 0")
	assert.Contains(t, joined, "Bet Amount: €10")
	assert.Contains(t, joined, "Press space to deal")
}

func TestRenderFrameHidesHoleCardMidRound(t *testing.T) {
	g := game.New(100, rand.New(rand.NewSource(1)))
	require.NoError(t, g.StartRound(10))

	frame := plainFrame(t, frameState{game: g, cfg: config.Default(), bet: 10, width: 80})
	joined := strings.Join(frame, "\n")

	assert.Contains(t, joined, "Dealer Hand:")
	assert.Contains(t, joined, "Hidden")
	assert.Contains(t, joined, "Press 'h' to Hit, 's' to Stand, 'q' to Quit.")
}

func TestRenderFrameNoticeOverridesPrompt(t *testing.T) {
	g := game.New(100, rand.New(rand.NewSource(1)))
	frame := plainFrame(t, frameState{
		game:   g,
		cfg:    config.Default(),
		bet:    500,
		notice: "Insufficient funds!",
		width:  80,
	})

	joined := strings.Join(frame, "\n")
	assert.Contains(t, joined, "Insufficient funds!")
	assert.NotContains(t, joined, "Press space to deal")
}

func TestRenderFrameBoxAlignment(t *testing.T) {
	g := game.New(100, rand.New(rand.NewSource(2)))
	require.NoError(t, g.StartRound(10))

	for _, width := range []int{40, 60, 80, 120} {
		frame := plainFrame(t, frameState{game: g, cfg: config.Default(), bet: 10, width: width})
		require.NotEmpty(t, frame)

		want := visibleWidth(frame[0])
		for _, line := range frame {
			assert.Equal(t, want, visibleWidth(line), "width %d, line %q", width, line)
		}
	}
}

func TestTruncateVisible(t *testing.T) {
	assert.Equal(t, "hello", truncateVisible("hello", 10))
	assert.Equal(t, "hel", truncateVisible("hello", 3))
	assert.Equal(t, "\x1b[33mhel\x1b[0m", truncateVisible("\x1b[33mhello\x1b[0m", 3))
	assert.Equal(t, 3, visibleWidth(truncateVisible("\x1b[33mhello\x1b[0m", 3)))
}

func TestVisibleWidthStripsEscapes(t *testing.T) {
	assert.Equal(t, 5, visibleWidth("\x1b[33mhello\x1b[0m"))
	assert.Equal(t, 4, visibleWidth("A♥ K"))
	assert.Equal(t, 0, visibleWidth(""))
}

func TestBannerTitlePlainWhenNoColor(t *testing.T) {
	old := colorize.NoColor
	colorize.NoColor = true
	defer func() { colorize.NoColor = old }()

	assert.Equal(t, "Blackjack", bannerTitle("Blackjack"))
}
