package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// JSONSelectionWriter writes selection reports as JSON.
type JSONSelectionWriter struct{}

// JSONSelectionReport is the JSON output structure for a selection preview.
type JSONSelectionReport struct {
	RepoPath    string              `json:"repo"`
	Requested   int                 `json:"requested"`
	MaxCommits  int                 `json:"maxCommits"`
	GeneratedAt string              `json:"generatedAt"`
	Total       int                 `json:"totalCommits"`
	Selected    int                 `json:"selectedCommits"`
	Items       []JSONSelectionItem `json:"items"`
}

// JSONSelectionItem is the JSON output structure for a single commit.
type JSONSelectionItem struct {
	SHA       string              `json:"sha"`
	Author    string              `json:"author"`
	Date      string              `json:"date"`
	Subject   string              `json:"subject"`
	Score     int                 `json:"score"`
	Selected  bool                `json:"selected"`
	Breakdown *JSONScoreBreakdown `json:"breakdown,omitempty"`
}

// JSONScoreBreakdown holds the score breakdown for a commit in JSON format.
type JSONScoreBreakdown struct {
	Length      int      `json:"length"`
	Bonus       int      `json:"bonus"`
	Penalty     int      `json:"penalty"`
	Significant []string `json:"significant"`
	Trivial     []string `json:"trivial"`
}

// Write outputs the selection report as JSON.
func (w *JSONSelectionWriter) Write(report *SelectionReport, options OutputOptions) error {
	jsonItems := make([]JSONSelectionItem, len(report.Items))
	for i, item := range report.Items {
		jsonItem := JSONSelectionItem{
			SHA:      item.Commit.SHA,
			Author:   item.Commit.Author,
			Date:     item.Commit.Date,
			Subject:  item.Commit.Subject,
			Score:    item.Score,
			Selected: report.IsSelected(i),
		}
		if options.Explain && item.Breakdown != nil {
			jsonItem.Breakdown = &JSONScoreBreakdown{
				Length:      item.Breakdown.Length,
				Bonus:       item.Breakdown.Bonus,
				Penalty:     item.Breakdown.Penalty,
				Significant: nonNil(item.Breakdown.Significant),
				Trivial:     nonNil(item.Breakdown.Trivial),
			}
		}
		jsonItems[i] = jsonItem
	}

	jsonReport := JSONSelectionReport{
		RepoPath:    report.RepoPath,
		Requested:   report.Requested,
		MaxCommits:  report.MaxCommits,
		GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
		Total:       len(report.Items),
		Selected:    report.Selected,
		Items:       jsonItems,
	}

	out, file, err := openOutputWriter(options.OutputPath, options.Stdout)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return writeJSON(out, jsonReport)
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
