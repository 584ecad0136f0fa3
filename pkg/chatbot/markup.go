package chatbot

import (
	"html"
	"regexp"
	"strings"
)

var (
	strongMarkup = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emMarkup     = regexp.MustCompile(`\*(.*?)\*`)
)

// FormatHTML renders reply markup for HTML clients: **x** becomes <strong>,
// *x* becomes <em> and newlines become <br>. The text is escaped first.
func FormatHTML(text string) string {
	out := html.EscapeString(text)
	out = strongMarkup.ReplaceAllString(out, "<strong>$1</strong>")
	out = emMarkup.ReplaceAllString(out, "<em>$1</em>")
	return strings.ReplaceAll(out, "\n", "<br>")
}
