package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// RenderMarkdown renders markdown content for display. Terminals get the
// dark built-in style with the configured accent; anything else gets
// glamour's plain-text style so pipes and files stay free of escapes.
func RenderMarkdown(content string, width int, tty bool) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	style := styles.NoTTYStyleConfig
	if tty {
		style = terminalMarkdownStyle()
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single trailing newline.
	rendered = strings.TrimRight(rendered, "\n") + "\n"
	return rendered, nil
}

// terminalMarkdownStyle is glamour's dark style with box-drawing table
// rules and link text in the accent color.
func terminalMarkdownStyle() ansi.StyleConfig {
	style := styles.DarkStyleConfig

	style.Table.CenterSeparator = mdStringPtr("┼")
	style.Table.ColumnSeparator = mdStringPtr("│")
	style.Table.RowSeparator = mdStringPtr("─")

	if color, ok := AccentColor(); ok {
		style.LinkText.Color = mdStringPtr(color)
		style.LinkText.Bold = mdBoolPtr(true)
	}
	return style
}

func mdBoolPtr(b bool) *bool       { return &b }
func mdStringPtr(s string) *string { return &s }
