package cmd

import (
	"errors"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ostnam/linus/pkg/driver"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	prompt lipgloss.Style
	name   lipgloss.Style
	header lipgloss.Style
	detail lipgloss.Style
}

// newStyles renders for w. Without color every style is the identity.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		plain := r.NewStyle()
		return styles{prompt: plain, name: plain, header: plain, detail: plain}
	}
	return styles{
		prompt: r.NewStyle().Foreground(colorPrimary).Bold(true),
		name:   r.NewStyle().Foreground(colorPrimary),
		header: r.NewStyle().Foreground(colorError).Bold(true),
		detail: r.NewStyle().Foreground(colorMuted),
	}
}

func (s styles) renderError(err error) string {
	var stageErr *driver.StageError
	if errors.As(err, &stageErr) {
		return s.header.Render("Could not complete "+string(stageErr.Stage)) + "\n" +
			s.detail.Render(stageErr.Err.Error())
	}
	return s.header.Render("Error: " + err.Error())
}
