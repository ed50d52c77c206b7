package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ApplyColorProfile honors NO_COLOR and otherwise follows the terminal.
// Interactive use ignores CLICOLOR so the TUI does not lose its colors when
// stdout looks redirected to termenv.
func ApplyColorProfile(interactive bool) {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	if interactive {
		lipgloss.SetColorProfile(termenv.ColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}
