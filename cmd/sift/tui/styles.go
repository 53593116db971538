package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// flavor is the subset of a catppuccin palette the menu draws with.
type flavor interface {
	Base() catppuccin.Color
	Surface0() catppuccin.Color
	Surface1() catppuccin.Color
	Overlay0() catppuccin.Color
	Subtext0() catppuccin.Color
	Text() catppuccin.Color
	Blue() catppuccin.Color
	Green() catppuccin.Color
	Mauve() catppuccin.Color
	Peach() catppuccin.Color
}

func flavorNamed(name string) flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

// Styles holds every style used by the view.
type Styles struct {
	Prompt    lipgloss.Style
	Input     lipgloss.Style
	Cursor    lipgloss.Style
	Normal    lipgloss.Style
	Selected  lipgloss.Style
	Marked    lipgloss.Style
	Highlight lipgloss.Style
	Arrow     lipgloss.Style
	Counter   lipgloss.Style
}

// NewStyles builds the styles for a catppuccin flavour name; unknown names
// fall back to mocha.
func NewStyles(theme string) Styles {
	f := flavorNamed(theme)
	color := func(c catppuccin.Color) lipgloss.Color { return lipgloss.Color(c.Hex) }

	return Styles{
		Prompt: lipgloss.NewStyle().
			Foreground(color(f.Base())).
			Background(color(f.Blue())).
			Bold(true).
			Padding(0, 1),
		Input: lipgloss.NewStyle().
			Foreground(color(f.Text())),
		Cursor: lipgloss.NewStyle().
			Reverse(true),
		Normal: lipgloss.NewStyle().
			Foreground(color(f.Text())).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(color(f.Base())).
			Background(color(f.Mauve())).
			Bold(true).
			Padding(0, 1),
		Marked: lipgloss.NewStyle().
			Foreground(color(f.Green())).
			Background(color(f.Surface1())).
			Padding(0, 1),
		Highlight: lipgloss.NewStyle().
			Foreground(color(f.Peach())).
			Underline(true),
		Arrow: lipgloss.NewStyle().
			Foreground(color(f.Overlay0())).
			Padding(0, 1),
		Counter: lipgloss.NewStyle().
			Foreground(color(f.Subtext0())).
			Background(color(f.Surface0())).
			Padding(0, 1),
	}
}
