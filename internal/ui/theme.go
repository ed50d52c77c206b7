package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the user's theme choice. System follows the terminal background.
type Mode string

const (
	ModeSystem Mode = "system"
	ModeDark   Mode = "dark"
	ModeLight  Mode = "light"
)

// ParseMode accepts dark|light|system; empty means system.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeSystem, nil
	case ModeSystem, ModeDark, ModeLight:
		return m, nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark|light|system)", s)
}

// Theme bundles palette + symbols + border.
// All render helpers pull from `current`.
type Theme struct {
	Mode Mode // resolved: dark or light

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Header                        lipgloss.Style

	BorderColor              lipgloss.Color
	BoxUnchecked, BoxChecked string
}

var current = build(ModeDark)

// SetTheme switches the palette. System is resolved against the terminal.
func SetTheme(m Mode) {
	current = build(resolve(m))
}

func Current() Theme { return current }

// Toggle flips between dark and light and returns the new mode.
func Toggle() Mode {
	next := ModeDark
	if current.Mode == ModeDark {
		next = ModeLight
	}
	SetTheme(next)
	return next
}

func resolve(m Mode) Mode {
	switch m {
	case ModeDark, ModeLight:
		return m
	}
	if lipgloss.HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}

func build(m Mode) Theme {
	s := lipgloss.NewStyle
	if m == ModeLight {
		return Theme{
			Mode:         ModeLight,
			Title:        s().Bold(true).Foreground(lipgloss.Color("235")),
			Muted:        s().Foreground(lipgloss.Color("240")),
			Accent:       s().Foreground(lipgloss.Color("27")),
			Success:      s().Foreground(lipgloss.Color("28")),
			Error:        s().Foreground(lipgloss.Color("160")).Bold(true),
			Pending:      s().Foreground(lipgloss.Color("130")),
			Selected:     s().Bold(true).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("254")),
			Done:         s().Foreground(lipgloss.Color("244")).Strikethrough(true),
			Header:       s().Bold(true).Foreground(lipgloss.Color("27")),
			BorderColor:  lipgloss.Color("250"),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
		}
	}
	return Theme{
		Mode:         ModeDark,
		Title:        s().Bold(true),
		Muted:        s().Faint(true),
		Accent:       s().Foreground(lipgloss.Color("12")),
		Success:      s().Foreground(lipgloss.Color("42")),
		Error:        s().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      s().Foreground(lipgloss.Color("214")),
		Selected:     s().Bold(true).Reverse(true),
		Done:         s().Faint(true).Strikethrough(true),
		Header:       s().Bold(true).Foreground(lipgloss.Color("12")),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐",
		BoxChecked:   "☑",
	}
}
