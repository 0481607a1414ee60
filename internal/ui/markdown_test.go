package ui

import (
	"strings"
	"testing"
)

const toolTable = "| Name | Purpose |\n| --- | --- |\n| [cli](./cli) | Formats things |\n"

func TestRenderMarkdownNormalizesTrailingNewline(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("# Heading", 80, false)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected rendered markdown to end with newline, got %q", out)
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Fatalf("expected single trailing newline, got %q", out)
	}
}

func TestRenderMarkdownDefaultsWidthWhenNonPositive(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown("hello", 0, false)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Fatalf("expected non-empty rendered output")
	}
}

func TestRenderMarkdownTableCellsAndLinks(t *testing.T) {
	t.Parallel()

	out, err := RenderMarkdown(toolTable, 80, false)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	for _, want := range []string{"Name", "Purpose", "cli", "Formats things", "./cli"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
	if strings.Contains(out, "| --- |") {
		t.Fatalf("expected delimiter row to be rendered, got %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape sequences off a terminal, got %q", out)
	}
}

func TestRenderMarkdownTerminalTable(t *testing.T) {
	out, err := RenderMarkdown(toolTable, 80, true)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.Contains(out, "│") {
		t.Fatalf("expected box-drawing column separator, got %q", out)
	}
	if !strings.Contains(out, "./cli") {
		t.Fatalf("expected link target in output, got %q", out)
	}
}

func TestTerminalMarkdownStyleUsesAccentForLinks(t *testing.T) {
	ConfigureTheme("39")
	defer ConfigureTheme("")

	style := terminalMarkdownStyle()
	if style.Table.ColumnSeparator == nil || *style.Table.ColumnSeparator != "│" {
		t.Fatalf("expected box-drawing column separator")
	}
	if style.LinkText.Color == nil || *style.LinkText.Color != "39" {
		t.Fatalf("expected accent link color, got %v", style.LinkText.Color)
	}

	ConfigureTheme("none")
	style = terminalMarkdownStyle()
	if style.LinkText.Color == nil || *style.LinkText.Color == "39" {
		t.Fatalf("expected built-in link color when accent is disabled")
	}
}
