// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Fitness classes, tight through very loose.
	FitTight     lipgloss.Style
	FitNormal    lipgloss.Style
	FitLoose     lipgloss.Style
	FitVeryLoose lipgloss.Style

	// Line components.
	Gutter     lipgloss.Style
	LineText   lipgloss.Style
	Hyphen     lipgloss.Style
	Margin     lipgloss.Style
	FilePath   lipgloss.Style
	Infeasible lipgloss.Style

	// Summary styles.
	SummaryTitle lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc.
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
		// Fitness colors follow severity intuition: shrunk lines run
		// hot, stretched lines run cold.
		FitTight:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		FitNormal:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		FitLoose:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		FitVeryLoose: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		Gutter:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		LineText:   lipgloss.NewStyle(),
		Hyphen:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Margin:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		FilePath:   lipgloss.NewStyle().Bold(true),
		Infeasible: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FitTight:     plain,
		FitNormal:    plain,
		FitLoose:     plain,
		FitVeryLoose: plain,
		Gutter:       plain,
		LineText:     plain,
		Hyphen:       plain,
		Margin:       plain,
		FilePath:     plain,
		Infeasible:   plain,
		SummaryTitle: plain,
		Success:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// Fitness returns the style for a fitness class (0 tight .. 3 very loose).
func (s *Styles) Fitness(class int) lipgloss.Style {
	switch class {
	case 0:
		return s.FitTight
	case 2:
		return s.FitLoose
	case 3:
		return s.FitVeryLoose
	default:
		return s.FitNormal
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
