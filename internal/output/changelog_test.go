package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteChangelog(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "Adds missing trailing newline",
			text: "# Month Year\n## New Features\n...",
			want: "\n===== CHANGELOG =====\n\n# Month Year\n## New Features\n...\n",
		},
		{
			name: "Keeps trailing newline",
			text: "# March 2025\n",
			want: "\n===== CHANGELOG =====\n\n# March 2025\n",
		},
		{
			name: "Keeps trailing blank lines",
			text: "# March 2025\n\n\n",
			want: "\n===== CHANGELOG =====\n\n# March 2025\n\n\n",
		},
		{
			name: "Empty text",
			text: "",
			want: "\n===== CHANGELOG =====\n\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteChangelog(&buf, tt.text); err != nil {
				t.Fatalf("WriteChangelog: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("output = %q, expected %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	rendered, err := RenderMarkdown("# March 2025\n\n## Bug Fixes\n\n* Fixed a crash\n", 0)
	if err != nil {
		t.Fatalf("RenderMarkdown: %v", err)
	}
	if !strings.Contains(rendered, "Fixed a crash") {
		t.Errorf("rendered output lost content: %q", rendered)
	}
}
