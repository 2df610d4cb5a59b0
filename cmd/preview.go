package cmd

import (
	"fmt"
	"time"

	"github.com/masmgr/changelog-go/internal/git"
	"github.com/masmgr/changelog-go/internal/output"
	"github.com/urfave/cli/v2"
)

// PreviewCmd returns the preview command.
func PreviewCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown)",
			Value:   string(output.FormatConsole),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.BoolFlag{
			Name:  "explain",
			Usage: "Show score breakdown",
		},
	)

	return &cli.Command{
		Name:      "preview",
		Aliases:   []string{"p"},
		Usage:     "Show which commits would be sent for generation, without calling the endpoint",
		ArgsUsage: "<n>",
		Flags:     flags,
		Action:    previewAction,
	}
}

func previewAction(c *cli.Context) error {
	n, err := parseCountArg(c)
	if err != nil {
		return err
	}
	format, ok := output.ParseOutputFormat(c.String("format"))
	if !ok {
		return fmt.Errorf("invalid format: %s (expected console, json, csv or markdown)", c.String("format"))
	}

	ctx, err := NewCommandContext(c, n)
	if err != nil {
		return err
	}

	var commits []git.CommitRecord
	if n > 0 {
		commits, err = ctx.ReadCommits(c.Context)
		if err != nil {
			return err
		}
	}

	explain := c.Bool("explain")
	items := ctx.Selector.Rank(commits, explain)
	selected := len(items)
	if limit := ctx.Selector.MaxCommits(); limit > 0 && selected > limit {
		selected = limit
	}

	report := &output.SelectionReport{
		RepoPath:    ctx.RepoPath,
		Requested:   n,
		MaxCommits:  ctx.Selector.MaxCommits(),
		GeneratedAt: time.Now(),
		Items:       items,
		Selected:    selected,
	}

	opts := output.OutputOptions{
		Format:     format,
		OutputPath: c.String("output"),
		Explain:    explain,
		Stdout:     c.App.Writer,
	}
	return output.NewSelectionReportWriter(opts.Format).Write(report, opts)
}
