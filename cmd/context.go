package cmd

import (
	"context"
	"fmt"

	"github.com/masmgr/changelog-go/config"
	"github.com/masmgr/changelog-go/internal/git"
	"github.com/masmgr/changelog-go/internal/logger"
	"github.com/masmgr/changelog-go/internal/scoring"
	"github.com/urfave/cli/v2"
)

// newReader opens the history reader. Tests replace it with a mock.
var newReader = func(opts git.ReadOptions) (git.RepositoryReader, error) {
	reader, err := git.NewHistoryReader(opts)
	if err != nil {
		return nil, err
	}
	return reader, nil
}

// CommandContext holds common state for command execution.
// It encapsulates the setup shared by the generate and preview commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Count    int
	Log      *logger.Logger
	Reader   git.RepositoryReader
	Selector *scoring.CommitSelector
}

// NewCommandContext creates a context from CLI flags.
// It loads configuration, opens the repository and prepares the selector.
func NewCommandContext(c *cli.Context, count int) (*CommandContext, error) {
	log := newLogger(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	log.Debugf("config: %+v", *cfg)

	repoPath := c.String("repo")
	reader, err := newReader(git.ReadOptions{
		RepoPath:       repoPath,
		Branch:         c.String("branch"),
		Count:          count,
		ExcludeAuthors: cfg.Filters.ExcludeAuthors,
		OnSkip: func(index int, reason string) {
			log.Warnf("skipped log record %d: %s", index, reason)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Count:    count,
		Log:      log,
		Reader:   reader,
		Selector: scoring.NewCommitSelector(cfg.Selection),
	}, nil
}

// ReadCommits reads up to Count commits from the repository.
func (ctx *CommandContext) ReadCommits(c context.Context) ([]git.CommitRecord, error) {
	commits, err := ctx.Reader.ReadCommits(c)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	ctx.Log.Verbosef("read %d commits from %s", len(commits), ctx.RepoPath)
	return commits, nil
}

func newLogger(c *cli.Context) *logger.Logger {
	return logger.New(c.App.ErrWriter, c.Bool("verbose"), c.Bool("debug"))
}
