package output

import (
	"fmt"
	"strings"
)

// MarkdownSelectionWriter writes selection reports as Markdown.
type MarkdownSelectionWriter struct{}

// Write outputs the selection report as a Markdown table.
func (w *MarkdownSelectionWriter) Write(report *SelectionReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath, options.Stdout)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Commit Selection Preview")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Generated:** %s\n\n", report.GeneratedAt.Format(reportDateTimeLayout))
	fmt.Fprintf(out, "**Commits:** %d read, %d selected (max %d)\n\n", len(report.Items), report.Selected, report.MaxCommits)

	if len(report.Items) == 0 {
		fmt.Fprintln(out, "No commits found.")
		return nil
	}

	if options.Explain {
		fmt.Fprintln(out, "| # | SHA | Score | Sent | Subject | Len | + | - | Keywords |")
		fmt.Fprintln(out, "|---|-----|-------|------|---------|-----|---|---|----------|")
	} else {
		fmt.Fprintln(out, "| # | SHA | Score | Sent | Subject |")
		fmt.Fprintln(out, "|---|-----|-------|------|---------|")
	}

	for i, item := range report.Items {
		sent := ""
		if report.IsSelected(i) {
			sent = "✓"
		}
		if options.Explain && item.Breakdown != nil {
			keywords := append(append([]string{}, item.Breakdown.Significant...), item.Breakdown.Trivial...)
			fmt.Fprintf(out, "| %d | `%s` | %d | %s | %s | %d | %d | %d | %s |\n",
				i+1, item.Commit.ShortSHA(), item.Score, sent, escapeMarkdown(item.Commit.Subject),
				item.Breakdown.Length, item.Breakdown.Bonus, item.Breakdown.Penalty,
				escapeMarkdown(strings.Join(keywords, ", ")))
		} else {
			fmt.Fprintf(out, "| %d | `%s` | %d | %s | %s |\n",
				i+1, item.Commit.ShortSHA(), item.Score, sent, escapeMarkdown(item.Commit.Subject))
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
