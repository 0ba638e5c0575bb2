// Package pretty provides Lipgloss-based styled output for the chunk dump.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Dump table components
	Header   lipgloss.Style
	FilePath lipgloss.Style
	Position lipgloss.Style
	Kind     lipgloss.Style
	Level    lipgloss.Style
	Flags    lipgloss.Style
	Parent   lipgloss.Style
	Text     lipgloss.Style
	Newline  lipgloss.Style
	Comment  lipgloss.Style
	Preproc  lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		FilePath: lipgloss.NewStyle().Bold(true),
		Position: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Kind:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Level:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Flags:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Parent:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Text:     lipgloss.NewStyle(),
		Newline:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Comment:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Preproc:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header:   plain,
		FilePath: plain,
		Position: plain,
		Kind:     plain,
		Level:    plain,
		Flags:    plain,
		Parent:   plain,
		Text:     plain,
		Newline:  plain,
		Comment:  plain,
		Preproc:  plain,
		Dim:      plain,
		Bold:     plain,
	}
}

// ColorEnabled decides whether color output should be used for the given
// writer and mode ("auto", "always", "never").
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
