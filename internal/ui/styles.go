package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for errors, sold badge
	ColorSuccess   = "42"  // Green - for the available badge
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for warning details
	ColorBar       = "63"  // Blue - chart bars
)

// Styles contains shared style definitions used across screens and modals.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - for screen titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	Box        lipgloss.Style // Standard box with rounded border
	BoxDanger  lipgloss.Style // Confirmation/error box (danger border)
	BoxCompact lipgloss.Style // Compact box for cards and filter panels
	Card       lipgloss.Style // Counter and vehicle cards

	Selected lipgloss.Style // Highlighted/selected items
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style // Help/hint text
	Section  lipgloss.Style // Section headers
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Label    lipgloss.Style
	Details  lipgloss.Style // Warning details
	Error    lipgloss.Style // Field and panel errors
	Number   lipgloss.Style // Big counters

	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	NavLogo   lipgloss.Style
	Footer    lipgloss.Style

	StatusOK    lipgloss.Style
	StatusError lipgloss.Style

	BadgeSold      lipgloss.Style
	BadgeAvailable lipgloss.Style

	Bar lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	BoxCompact: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginRight(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Number: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	NavActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true).
		Padding(0, 1),
	NavLogo: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		PaddingRight(2),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	StatusOK: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	BadgeSold: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	BadgeAvailable: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true),
	Bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBar)),
}

// statusBadge renders the sold/available label with its color.
func statusBadge(sold bool, label string) string {
	if sold {
		return Styles.BadgeSold.Render(label)
	}
	return Styles.BadgeAvailable.Render(label)
}
