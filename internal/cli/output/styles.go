package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Code    lipgloss.Style
}

// NewStyles builds styles bound to w. Without a terminal the colour profile
// is ASCII so every style renders as plain text.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	profile := termenv.Ascii
	if isTTY {
		profile = termenv.NewOutput(w).EnvColorProfile()
	}
	lr := lipgloss.NewRenderer(w)
	lr.SetColorProfile(profile)

	return &Styles{
		Header1: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lr.NewStyle().Bold(true).Underline(true),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Info:    lr.NewStyle().Foreground(lipgloss.Color("14")),
		Code:    lr.NewStyle().Foreground(lipgloss.Color("13")),
	}
}
