package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	userLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render("Kamu")
	botLabel   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Render("Bot")
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// renderer turns reply markup into terminal output with glamour.
type renderer struct {
	term *glamour.TermRenderer
}

func newRenderer(style string, width int) *renderer {
	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return &renderer{}
	}
	return &renderer{term: term}
}

// Render falls back to the raw text when glamour is unavailable or fails.
func (r *renderer) Render(text string) string {
	if r.term == nil {
		return text
	}
	out, err := r.term.Render(toMarkdown(text))
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n ")
}

// toMarkdown keeps every reply line on its own line. Markdown would
// otherwise fold single newlines into one paragraph.
func toMarkdown(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" && i < len(lines)-1 && strings.TrimSpace(lines[i+1]) != "" {
			lines[i] = line + "  "
		}
	}
	return strings.Join(lines, "\n")
}
