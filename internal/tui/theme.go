package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The console must stay readable on both light and dark terminal
// backgrounds, so every color is a lipgloss.AdaptiveColor pair.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorAccent  lipgloss.TerminalColor = ac("25", "39")
	colorOK      lipgloss.TerminalColor = ac("28", "40")
	colorWarn    lipgloss.TerminalColor = ac("130", "214")
	colorDanger  lipgloss.TerminalColor = ac("124", "203")
	colorPill    lipgloss.TerminalColor = ac("255", "235")
	colorPillOK  lipgloss.TerminalColor = ac("28", "40")
	colorPillBad lipgloss.TerminalColor = ac("124", "203")
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	accentStyle = lipgloss.NewStyle().Foreground(colorAccent)
	okStyle     = lipgloss.NewStyle().Foreground(colorOK)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
	dangerStyle = lipgloss.NewStyle().Foreground(colorDanger)

	pillAuthedStyle = lipgloss.NewStyle().Foreground(colorPill).Background(colorPillOK).Padding(0, 1)
	pillAnonStyle   = lipgloss.NewStyle().Foreground(colorPill).Background(colorPillBad).Padding(0, 1)
	pillBusyStyle   = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Padding(0, 1)

	dispNoneStyle    = mutedStyle
	dispMailStyle    = accentStyle
	dispPackageStyle = warnStyle
	dispOriginStyle  = mutedStyle
	dispMissingStyle = dangerStyle

	statusPaneStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// forceDarkBackground honors an explicit BOXROOM_TUI_DARKBG override before
// falling back to termenv's detection. Useful when the terminal lies about
// its background (tmux, some SSH setups).
func forceDarkBackground() bool {
	if v := strings.TrimSpace(os.Getenv("BOXROOM_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return termenv.HasDarkBackground()
}

func init() {
	lipgloss.SetHasDarkBackground(forceDarkBackground())
}
