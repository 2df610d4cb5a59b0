package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/masmgr/changelog-go/internal/git"
	"github.com/masmgr/changelog-go/internal/scoring"
)

func init() {
	color.NoColor = true
}

func sampleReport() *SelectionReport {
	return &SelectionReport{
		RepoPath:    "/repo",
		Requested:   10,
		MaxCommits:  1,
		GeneratedAt: time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC),
		Selected:    1,
		Items: []scoring.ScoredCommit{
			{
				Commit: git.CommitRecord{SHA: "b2b2b2b2b2b2", Author: "Bob", Date: "d2", Subject: "Add new export feature", Body: "Implements CSV export"},
				Score:  73,
				Breakdown: &scoring.ScoreBreakdown{
					Length: 43, Bonus: 30, Significant: []string{"feature", "add", "implement"},
				},
			},
			{
				Commit:    git.CommitRecord{SHA: "a1a1a1a1a1a1", Author: "Alice", Date: "d1", Subject: "Fix typo | docs"},
				Score:     -7,
				Breakdown: &scoring.ScoreBreakdown{Length: 8, Penalty: 15, Trivial: []string{"typo"}},
			},
		},
	}
}

func TestJSONSelectionWriter(t *testing.T) {
	var buf bytes.Buffer
	err := (&JSONSelectionWriter{}).Write(sampleReport(), OutputOptions{Format: FormatJSON, Explain: true, Stdout: &buf})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	var got JSONSelectionReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got.Total != 2 || got.Selected != 1 || got.MaxCommits != 1 {
		t.Errorf("report = %+v", got)
	}
	if got.GeneratedAt != "2025-03-04T12:00:00Z" {
		t.Errorf("GeneratedAt = %q", got.GeneratedAt)
	}
	if !got.Items[0].Selected || got.Items[1].Selected {
		t.Errorf("selected flags = %v, %v", got.Items[0].Selected, got.Items[1].Selected)
	}
	if got.Items[1].Breakdown == nil || got.Items[1].Breakdown.Penalty != 15 {
		t.Errorf("breakdown = %+v", got.Items[1].Breakdown)
	}
	if got.Items[1].Breakdown.Significant == nil {
		t.Error("empty keyword lists should encode as []")
	}
}

func TestJSONSelectionWriter_NoExplainOmitsBreakdown(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONSelectionWriter{}).Write(sampleReport(), OutputOptions{Stdout: &buf}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if strings.Contains(buf.String(), "breakdown") {
		t.Errorf("unexpected breakdown in output:\n%s", buf.String())
	}
}

func TestCSVSelectionWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVSelectionWriter{}).Write(sampleReport(), OutputOptions{Explain: true, Stdout: &buf}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, expected header + 2 rows", len(records))
	}
	if records[0][0] != "Rank" || len(records[0]) != 12 {
		t.Errorf("header = %v", records[0])
	}
	if records[1][1] != "b2b2b2b2b2b2" || records[1][6] != "true" {
		t.Errorf("row 1 = %v", records[1])
	}
	if records[1][10] != "feature;add;implement" {
		t.Errorf("significant column = %q", records[1][10])
	}
	if records[2][6] != "false" || records[2][5] != "-7" {
		t.Errorf("row 2 = %v", records[2])
	}
}

func TestMarkdownSelectionWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownSelectionWriter{}).Write(sampleReport(), OutputOptions{Stdout: &buf}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Commit Selection Preview",
		"**Repository:** /repo",
		"**Commits:** 2 read, 1 selected (max 1)",
		"| 1 | `b2b2b2b2` | 73 | ✓ | Add new export feature |",
		"Fix typo \\| docs",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleSelectionWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&ConsoleSelectionWriter{}).Write(sampleReport(), OutputOptions{Explain: true, Stdout: &buf}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Commit Selection Preview",
		"Repository: /repo",
		"2 of 10 requested, 1 selected (max 1)",
		"b2b2b2b2",
		"feature,add,implement",
		"Score breakdown:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConsoleSelectionWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	report := &SelectionReport{RepoPath: "/repo", Requested: 5, MaxCommits: 50}
	if err := (&ConsoleSelectionWriter{}).Write(report, OutputOptions{Stdout: &buf}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "No commits found.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestSelectionWriter_OutputPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.json")
	var stdout bytes.Buffer

	err := (&JSONSelectionWriter{}).Write(sampleReport(), OutputOptions{OutputPath: path, Stdout: &stdout})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty when writing to a file, got %q", stdout.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !json.Valid(data) {
		t.Errorf("file content is not JSON: %s", data)
	}
}
