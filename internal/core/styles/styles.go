// Package styles provides shared lipgloss styles for CLI and TUI output.
package styles

import (
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Text styles.
var (
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style
)

// TUI styles.
var (
	PaneStyle        lipgloss.Style
	PaneFocusedStyle lipgloss.Style
	PaneTitleStyle   lipgloss.Style
	RowStyle         lipgloss.Style
	RowSelectedStyle lipgloss.Style
	StatusDoneStyle  lipgloss.Style
	StatusOtherStyle lipgloss.Style
	HelpStyle        lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TextPrimaryStyle = lipgloss.NewStyle().Foreground(p.Primary)
	TextPrimaryBoldStyle = TextPrimaryStyle.Bold(true)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	PaneFocusedStyle = PaneStyle.BorderForeground(p.Primary)
	PaneTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	RowStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	RowSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Bold(true)
	StatusDoneStyle = lipgloss.NewStyle().Foreground(p.Success)
	StatusOtherStyle = lipgloss.NewStyle().Foreground(p.Warning)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Muted).
		PaddingLeft(1)
	FormFieldFocusedStyle = FormFieldStyle.BorderForeground(p.Primary)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// GlamourStyle returns a glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := string(CurrentPalette.Foreground)
	primary := string(CurrentPalette.Primary)
	muted := string(CurrentPalette.Muted)

	cfg.Document.Color = &fg
	cfg.Paragraph.Color = &fg
	cfg.Heading.Color = &primary
	cfg.H1.Color = &fg
	cfg.H2.Color = &primary
	cfg.H3.Color = &primary
	cfg.Item.Color = &fg
	cfg.HorizontalRule.Color = &muted

	return cfg
}
