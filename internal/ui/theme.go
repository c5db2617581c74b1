package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of the board and its dialogs.
type Theme struct {
	Name string

	Surface     string
	SelectionBg string
	SelectionFg string
	Border      string // closing dialogs
	BorderMuted string // side panels
	BorderFocus string // open dialogs

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionFg)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.BorderMuted)).
			Padding(0, 1),

		// Dialogs keep their size while closing and only dim the border.
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.Surface)).
			Padding(1, 2),

		DialogClosing: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Foreground(lipgloss.Color(t.Faint)).
			Padding(1, 2),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style

	Dialog        lipgloss.Style
	DialogClosing lipgloss.Style
	Key           lipgloss.Style
}

// palette holds the active theme. The board and every dialog share one, so
// switching themes restyles open dialogs too.
type palette struct {
	theme Theme
}

func newPalette(name string) *palette {
	return &palette{theme: GetTheme(name)}
}

func (p *palette) styles() Styles {
	return p.theme.Styles()
}

var themeList = []Theme{
	{
		Name:    "Nightfox",
		Surface: "#192330", SelectionBg: "#2b3b51", SelectionFg: "#cdcecf",
		Border: "#39506d", BorderMuted: "#212e3f", BorderFocus: "#719cd6",
		Text: "#cdcecf", Muted: "#738091", Faint: "#71839b", Accent: "#719cd6",
		Success: "#81b29a", Warning: "#dbc074", Danger: "#c94f6d",
	},
	{
		Name:    "Kanagawa",
		Surface: "#1F1F28", SelectionBg: "#2D4F67", SelectionFg: "#DCD7BA",
		Border: "#54546D", BorderMuted: "#2A2A37", BorderFocus: "#7E9CD8",
		Text: "#DCD7BA", Muted: "#C8C093", Faint: "#727169", Accent: "#7E9CD8",
		Success: "#98BB6C", Warning: "#E6C384", Danger: "#E46876",
	},
	{
		Name:    "Slate",
		Surface: "#0f172a", SelectionBg: "#0284c7", SelectionFg: "#f8fafc",
		Border: "#334155", BorderMuted: "#1e293b", BorderFocus: "#38bdf8",
		Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b", Accent: "#38bdf8",
		Success: "#22c55e", Warning: "#f59e0b", Danger: "#ef4444",
	},
}

// GetTheme returns a theme by name, or the first theme for unknown names.
func GetTheme(name string) Theme {
	for _, t := range themeList {
		if t.Name == name {
			return t
		}
	}
	return themeList[0]
}

// NextTheme returns the theme after current, wrapping around.
func NextTheme(current string) string {
	for i, t := range themeList {
		if t.Name == current {
			return themeList[(i+1)%len(themeList)].Name
		}
	}
	return themeList[0].Name
}

// ThemeNames returns the theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themeList))
	for i, t := range themeList {
		names[i] = t.Name
	}
	return names
}
