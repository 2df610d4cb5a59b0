package output

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVSelectionWriter writes selection reports as CSV.
type CSVSelectionWriter struct{}

// Write outputs the selection report as CSV.
func (w *CSVSelectionWriter) Write(report *SelectionReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath, options.Stdout)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	writer := csv.NewWriter(out)

	headers := []string{"Rank", "SHA", "Author", "Date", "Subject", "Score", "Selected"}
	if options.Explain {
		headers = append(headers, "Length", "Bonus", "Penalty", "Significant", "Trivial")
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for i, item := range report.Items {
		row := []string{
			strconv.Itoa(i + 1),
			item.Commit.SHA,
			item.Commit.Author,
			item.Commit.Date,
			item.Commit.Subject,
			strconv.Itoa(item.Score),
			strconv.FormatBool(report.IsSelected(i)),
		}
		if options.Explain && item.Breakdown != nil {
			row = append(row,
				strconv.Itoa(item.Breakdown.Length),
				strconv.Itoa(item.Breakdown.Bonus),
				strconv.Itoa(item.Breakdown.Penalty),
				strings.Join(item.Breakdown.Significant, ";"),
				strings.Join(item.Breakdown.Trivial, ";"),
			)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
