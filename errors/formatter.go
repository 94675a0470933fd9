package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

const (
	// DefaultMaxLineLength is the width long messages are wrapped at.
	DefaultMaxLineLength = 80

	hintPrefix = "    hint: "
)

// FormatterConfig controls error formatting.
type FormatterConfig struct {
	// Verbose adds the context table and the full error chain.
	Verbose bool

	// Color is "auto", "always" or "never".
	Color string

	MaxLineLength int
}

// DefaultFormatterConfig returns the configuration main uses.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format renders err for stderr: the message, then any hints, then in verbose mode the context and stack.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)
	errorStyle := lipgloss.NewStyle()
	hintStyle := lipgloss.NewStyle()
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color("#FF0000"))
		hintStyle = hintStyle.Foreground(lipgloss.Color("#808080"))
	}

	var out strings.Builder

	msg := err.Error()
	if len(msg) > config.MaxLineLength && !config.Verbose {
		msg = wrapText(msg, config.MaxLineLength)
	}
	out.WriteString(errorStyle.Render(msg))

	if hints := errors.GetAllHints(err); len(hints) > 0 {
		out.WriteString("\n")
		for _, hint := range hints {
			out.WriteString(hintStyle.Render(hintPrefix + hint))
			out.WriteString("\n")
		}
	}

	if config.Verbose {
		if ctx := formatContextTable(err); ctx != "" {
			out.WriteString(ctx)
			out.WriteString("\n")
		}
		out.WriteString("\n")
		out.WriteString(hintStyle.Render(fmt.Sprintf("%+v", err)))
	}

	return out.String()
}

// formatContextTable renders the "key=value" safe details added by ErrorBuilder.WithContext.
func formatContextTable(err error) string {
	var rows [][]string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			for _, pair := range strings.Fields(detail) {
				if k, v, ok := strings.Cut(pair, "="); ok {
					rows = append(rows, []string{k, v})
				}
			}
		}
	}
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Context", "Value").
		Rows(rows...)
	return "\n" + t.String()
}

func shouldUseColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
