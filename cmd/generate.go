package cmd

import (
	"fmt"

	"github.com/masmgr/changelog-go/config"
	"github.com/masmgr/changelog-go/internal/changelog"
	"github.com/masmgr/changelog-go/internal/output"
	"github.com/urfave/cli/v2"
)

// loadCredentials reads the endpoint settings. Tests replace it.
var loadCredentials = func(c *cli.Context) (config.Credentials, error) {
	if path := c.String("env-file"); path != "" {
		return config.LoadCredentialsFile(path)
	}
	return config.LoadCredentials(), nil
}

func generateAction(c *cli.Context) error {
	n, err := parseCountArg(c)
	if err != nil {
		return err
	}
	format, err := parseChangelogFormat(c.String("format"))
	if err != nil {
		return err
	}

	out := c.App.Writer
	if n <= 0 {
		noticeColor.Fprintln(out, "No commits found.")
		return nil
	}

	ctx, err := NewCommandContext(c, n)
	if err != nil {
		return err
	}

	statusColor.Fprintf(out, "Fetching the last %d commits...\n", n)
	commits, err := ctx.ReadCommits(c.Context)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		noticeColor.Fprintln(out, "No commits found.")
		return nil
	}

	statusColor.Fprintf(out, "Found %d commits. Generating changelog...\n", len(commits))
	selected := ctx.Selector.Select(commits)
	if len(selected) < len(commits) {
		ctx.Log.Verbosef("selected %d of %d commits by significance", len(selected), len(commits))
	}

	creds, err := loadCredentials(c)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}
	if creds.APIKey == "" {
		ctx.Log.Warnf("%s is not set", config.EnvAPIKey)
	}

	timeout := ctx.Config.Generation.Timeout()
	if d := c.Duration("timeout"); d > 0 {
		timeout = d
	}
	gen := ctx.Config.Generation
	client := changelog.NewClient(changelog.Config{
		APIKey:      creds.APIKey,
		Endpoint:    creds.Endpoint,
		Model:       gen.Model,
		APIVersion:  gen.APIVersion,
		MaxTokens:   gen.MaxTokens,
		Temperature: gen.Temperature,
		Timeout:     timeout,
	})
	ctx.Log.Debugf("POST %s model=%s timeout=%s", creds.Endpoint, gen.Model, timeout)

	text, err := client.Generate(c.Context, selected)
	if err != nil {
		return err
	}

	if c.Bool("render") {
		if format != formatMarkdown {
			ctx.Log.Warnf("--render ignored for --format %s", format)
		} else if rendered, err := output.RenderMarkdown(text, output.DefaultRenderWidth); err != nil {
			ctx.Log.Warnf("%v, printing plain markdown", err)
		} else {
			text = rendered
		}
	}

	return output.WriteChangelog(out, text)
}
