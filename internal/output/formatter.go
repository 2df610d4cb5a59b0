package output

import (
	"io"
	"time"

	"github.com/masmgr/changelog-go/internal/scoring"
)

// Compile-time interface conformance checks.
var (
	_ SelectionReportWriter = (*ConsoleSelectionWriter)(nil)
	_ SelectionReportWriter = (*JSONSelectionWriter)(nil)
	_ SelectionReportWriter = (*CSVSelectionWriter)(nil)
	_ SelectionReportWriter = (*MarkdownSelectionWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
)

// ParseOutputFormat validates a user supplied format name.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch f := OutputFormat(s); f {
	case FormatConsole, FormatJSON, FormatCSV, FormatMarkdown:
		return f, true
	default:
		return "", false
	}
}

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
	Explain    bool
	// Stdout receives the report when OutputPath is empty; os.Stdout if nil.
	Stdout io.Writer
}

// SelectionReport describes which commits would be forwarded for generation.
type SelectionReport struct {
	RepoPath    string
	Requested   int
	MaxCommits  int
	GeneratedAt time.Time
	// Items holds every commit read, in rank order.
	Items []scoring.ScoredCommit
	// Selected is the number of leading Items that would be sent.
	Selected int
}

// IsSelected reports whether the i-th item would be sent.
func (r *SelectionReport) IsSelected(i int) bool {
	return i < r.Selected
}

// SelectionReportWriter writes selection reports.
type SelectionReportWriter interface {
	Write(report *SelectionReport, options OutputOptions) error
}

// NewSelectionReportWriter creates a report writer for the specified format.
func NewSelectionReportWriter(format OutputFormat) SelectionReportWriter {
	switch format {
	case FormatJSON:
		return &JSONSelectionWriter{}
	case FormatCSV:
		return &CSVSelectionWriter{}
	case FormatMarkdown:
		return &MarkdownSelectionWriter{}
	default:
		return &ConsoleSelectionWriter{}
	}
}
