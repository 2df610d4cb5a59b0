package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// ChangelogBanner precedes the generated changelog on stdout.
const ChangelogBanner = "\n===== CHANGELOG =====\n"

// DefaultRenderWidth is the word wrap width used for rendered markdown.
const DefaultRenderWidth = 100

// WriteChangelog prints the banner followed by the changelog text as
// received. A line break is added only when the text lacks a trailing one.
func WriteChangelog(w io.Writer, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := fmt.Fprintf(w, "%s\n%s", ChangelogBanner, text)
	return err
}

// RenderMarkdown formats markdown for the terminal.
func RenderMarkdown(text string, width int) (string, error) {
	if width <= 0 {
		width = DefaultRenderWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return rendered, nil
}
