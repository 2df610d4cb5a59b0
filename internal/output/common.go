package output

import (
	"io"
	"os"
	"strings"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

// openOutputWriter returns the file at outputPath, or the fallback writer
// (os.Stdout when nil) if no path is given. The file is nil when stdout is used.
func openOutputWriter(outputPath string, fallback io.Writer) (io.Writer, *os.File, error) {
	if outputPath == "" {
		if fallback == nil {
			return os.Stdout, nil, nil
		}
		return fallback, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}

func joinKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return "-"
	}
	return strings.Join(keywords, ",")
}
