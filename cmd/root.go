package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/masmgr/changelog-go/config"
	"github.com/masmgr/changelog-go/internal/changelog"
	"github.com/urfave/cli/v2"
)

// Colors for status lines on stdout and fatal errors on stderr.
var (
	statusColor = color.New(color.FgGreen)
	noticeColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed, color.Bold)
)

// Changelog output formats accepted by the root command.
const (
	formatMarkdown = "markdown"
	formatText     = "text"
)

func init() {
	// -v is taken by --verbose.
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

// App creates the CLI application.
func App() *cli.App {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:  "format",
			Usage: "Changelog format (markdown, text)",
			Value: formatMarkdown,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Request timeout (default from config, 10s)",
		},
		&cli.BoolFlag{
			Name:  "render",
			Usage: "Render the markdown changelog for the terminal",
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Load credentials from this file instead of ./.env",
		},
	)

	return &cli.App{
		Name:      "changelog",
		Usage:     "Generate a changelog from recent Git commits",
		ArgsUsage: "[flags] <n>",
		Version:   "1.0.0",
		Commands: []*cli.Command{
			PreviewCmd(),
			InitCmd(),
		},
		Flags:  flags,
		Action: generateAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Revision to read commits from (default: HEAD)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
		&cli.IntFlag{
			Name:    "max-commits",
			Aliases: []string{"m"},
			Usage:   "Maximum number of commits sent for generation (default from config, 50)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude-author",
			Usage: "Glob pattern of authors to skip (can be specified multiple times)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Print progress details",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Print debug details",
		},
	}
}

// parseCountArg parses the required positional commit count.
func parseCountArg(c *cli.Context) (int, error) {
	if c.NArg() == 0 {
		return 0, errors.New("missing required argument <n> (number of commits)")
	}
	if c.NArg() > 1 {
		return 0, fmt.Errorf("unexpected arguments: %s", strings.Join(c.Args().Slice()[1:], " "))
	}
	n, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, fmt.Errorf("invalid number of commits: %q", c.Args().First())
	}
	return n, nil
}

// parseChangelogFormat validates the changelog format flag.
func parseChangelogFormat(s string) (string, error) {
	switch s {
	case formatMarkdown, formatText:
		return s, nil
	default:
		return "", fmt.Errorf("invalid format: %s (expected markdown or text)", s)
	}
}

// loadConfig loads configuration from file or defaults and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if m := c.Int("max-commits"); m > 0 {
		cfg.Selection.MaxCommits = m
	}
	if authors := c.StringSlice("exclude-author"); len(authors) > 0 {
		cfg.Filters.ExcludeAuthors = authors
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// reportError prints a fatal error, with the received payload for
// malformed responses.
func reportError(w io.Writer, err error) {
	errorColor.Fprintf(w, "Error: %v\n", err)

	var malformed *changelog.MalformedResponse
	if errors.As(err, &malformed) {
		fmt.Fprintf(w, "Response: %s\n", malformed.Dump())
	}
}

// run executes the application and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := App()
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(hoistFlags(app, args)); err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

// Run executes the CLI application.
func Run() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
