package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleSelectionWriter writes selection reports to the console.
type ConsoleSelectionWriter struct{}

// Write outputs the selection report as an aligned table.
func (w *ConsoleSelectionWriter) Write(report *SelectionReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath, options.Stdout)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, color.GreenString("Commit Selection Preview"))
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Commits read: %d of %d requested, %d selected (max %d)\n\n",
		len(report.Items), report.Requested, report.Selected, report.MaxCommits)

	if len(report.Items) == 0 {
		fmt.Fprintln(out, "No commits found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if options.Explain {
		fmt.Fprintln(tw, "#\tSHA\tScore\tSent\tSubject\tLen\t+\t-\tSignificant\tTrivial")
	} else {
		fmt.Fprintln(tw, "#\tSHA\tScore\tSent\tSubject")
	}

	for i, item := range report.Items {
		sent := color.YellowString("no")
		if report.IsSelected(i) {
			sent = color.GreenString("yes")
		}
		if options.Explain && item.Breakdown != nil {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
				i+1,
				item.Commit.ShortSHA(),
				item.Score,
				sent,
				truncateMessage(item.Commit.Subject, 50),
				item.Breakdown.Length,
				item.Breakdown.Bonus,
				item.Breakdown.Penalty,
				joinKeywords(item.Breakdown.Significant),
				joinKeywords(item.Breakdown.Trivial),
			)
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n",
				i+1,
				item.Commit.ShortSHA(),
				item.Score,
				sent,
				truncateMessage(item.Commit.Subject, 50),
			)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if options.Explain {
		fmt.Fprintln(out, "\nScore breakdown: Len=subject+body length, +=keyword bonus, -=triviality penalty")
	}

	return nil
}
