package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("cyan")).
			Bold(true)
)

// Error renders a one-line diagnostic such as "Error: no git remotes configured".
func Error(msg string) string {
	return errorStyle.Render("Error:") + " " + msg
}

func Hint(msg string) string {
	return hintStyle.Render(msg)
}

// DidYouMean renders the suggestions for a mistyped command, or "".
func DidYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = commandStyle.Render(s)
	}
	return hintStyle.Render("Did you mean: ") + strings.Join(names, hintStyle.Render(", ")) + hintStyle.Render("?")
}
