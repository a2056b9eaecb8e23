package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles of the side-by-side view.
type Styles struct {
	Title      lipgloss.Style
	Separator  lipgloss.Style
	LineNumber lipgloss.Style
	Fold       lipgloss.Style

	Unchanged lipgloss.Style
	Added     lipgloss.Style
	Removed   lipgloss.Style
	Modified  lipgloss.Style

	AddedInline    lipgloss.Style
	RemovedInline  lipgloss.Style
	ModifiedInline lipgloss.Style

	Match       lipgloss.Style
	ActiveMatch lipgloss.Style

	Summary lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles creates styles bound to a renderer for out. Without color every
// style is plain.
func NewStyles(out io.Writer, colorEnabled bool) *Styles {
	r := lipgloss.NewRenderer(out)
	if !colorEnabled {
		r.SetColorProfile(termenv.Ascii)
		return newPlainStyles(r)
	}
	r.SetColorProfile(termenv.ANSI256)
	return &Styles{
		Title:      r.NewStyle().Bold(true),
		Separator:  r.NewStyle().Foreground(lipgloss.Color("8")),
		LineNumber: r.NewStyle().Foreground(lipgloss.Color("240")),
		Fold:       r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Unchanged: r.NewStyle(),
		Added:     r.NewStyle().Foreground(lipgloss.Color("2")),
		Removed:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Modified:  r.NewStyle().Foreground(lipgloss.Color("3")),

		AddedInline:    r.NewStyle().Foreground(lipgloss.Color("2")).Background(lipgloss.Color("22")),
		RemovedInline:  r.NewStyle().Foreground(lipgloss.Color("1")).Background(lipgloss.Color("52")),
		ModifiedInline: r.NewStyle().Foreground(lipgloss.Color("3")).Background(lipgloss.Color("58")),

		Match:       r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
		ActiveMatch: r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208")).Bold(true),

		Summary: r.NewStyle().Bold(true),
		Dim:     r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func newPlainStyles(r *lipgloss.Renderer) *Styles {
	plain := r.NewStyle()
	return &Styles{
		Title:          plain,
		Separator:      plain,
		LineNumber:     plain,
		Fold:           plain,
		Unchanged:      plain,
		Added:          plain,
		Removed:        plain,
		Modified:       plain,
		AddedInline:    plain,
		RemovedInline:  plain,
		ModifiedInline: plain,
		Match:          plain,
		ActiveMatch:    plain,
		Summary:        plain,
		Dim:            plain,
	}
}

// IsColorEnabled resolves a color mode ("auto", "always", "never") for
// writer. Auto enables color on a terminal unless NO_COLOR is set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
