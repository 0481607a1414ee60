package toolindex

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/aidanlsb/shelltools/internal/atomicfile"
)

// Render sorts tools and renders them as a two-column Markdown table.
func Render(tools []Tool) string {
	sorted := make([]Tool, len(tools))
	copy(sorted, tools)
	Sort(sorted)

	var sb strings.Builder
	sb.WriteString("| Name | Purpose |\n")
	sb.WriteString("| --- | --- |\n")
	for _, t := range sorted {
		fmt.Fprintf(&sb, "| [%s](%s) | %s |\n", escapeLinkText(t.Name), linkTarget(t.Link), escapeCell(t.Purpose))
	}
	return sb.String()
}

// RenderHTML converts rendered Markdown to an HTML fragment (GFM tables enabled).
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}
	return buf.String(), nil
}

// Emit writes text to dest, or to w when dest is empty.
func Emit(w io.Writer, text, dest string) error {
	if dest == "" {
		_, err := io.WriteString(w, text)
		return err
	}
	if err := atomicfile.WriteFileAll(dest, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

var cellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

func escapeCell(s string) string {
	return strings.TrimSpace(cellReplacer.Replace(s))
}

var linkTextReplacer = strings.NewReplacer(
	"[", `\[`,
	"]", `\]`,
)

func escapeLinkText(s string) string {
	return linkTextReplacer.Replace(escapeCell(s))
}

// linkTarget wraps targets containing spaces or parentheses in <...>.
func linkTarget(link string) string {
	if strings.ContainsAny(link, " ()") {
		return "<" + link + ">"
	}
	return link
}
