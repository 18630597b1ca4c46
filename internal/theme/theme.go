package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title         *lipgloss.Style
	Hint          *lipgloss.Style
	Border        *lipgloss.Style
	ActiveBorder  *lipgloss.Style
	PaneTitle     *lipgloss.Style
	Item          *lipgloss.Style
	Directory     *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Match         *lipgloss.Style
	SelectedMatch *lipgloss.Style
	SessionHeader *lipgloss.Style
	Window        *lipgloss.Style
	ActiveWindow  *lipgloss.Style
	Empty         *lipgloss.Style
	Loading       *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	SearchPrompt  *lipgloss.Style
	Search        *lipgloss.Style
	Cursor        *lipgloss.Style
	HelpTab       *lipgloss.Style
	HelpTabActive *lipgloss.Style
	HelpKey       *lipgloss.Style
	HelpBody      *lipgloss.Style
	ScrollMarker  *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	ActiveBorder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	PaneTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Directory: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Match: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	SelectedMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("238")).Bold(true).Underline(true),
	),
	SessionHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	),
	Window: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	ActiveWindow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Empty: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Search: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	HelpTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	HelpTabActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	HelpBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	ScrollMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Configure applies the terminal colour policy. With noColor set every
// style renders as plain text.
func Configure(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Colorless reports whether styles currently render without colour.
func Colorless() bool {
	return lipgloss.ColorProfile() == termenv.Ascii
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
