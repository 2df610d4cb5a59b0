package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
)

// HistoryReader reads recent commit history from a Git repository.
type HistoryReader struct {
	root        string
	opts        ReadOptions
	filterCache map[string]bool
}

// NewHistoryReader creates a new history reader for the given repository.
// The repository may be opened from any directory inside the worktree.
// ErrNotARepository is returned when no repository is found.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	root, err := FindRepositoryRoot(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	return &HistoryReader{
		root:        root,
		opts:        opts,
		filterCache: make(map[string]bool),
	}, nil
}

// Root returns the worktree root the reader operates on.
func (r *HistoryReader) Root() string {
	return r.root
}

// ReadCommits reads the most recent commits from the repository.
func (r *HistoryReader) ReadCommits(ctx context.Context) ([]CommitRecord, error) {
	if r.opts.Count <= 0 {
		return nil, nil
	}

	commits, err := r.readCommitsGitCLI(ctx)
	if err != nil {
		return nil, err
	}

	if len(r.opts.ExcludeAuthors) == 0 {
		return commits, nil
	}

	kept := make([]CommitRecord, 0, len(commits))
	for _, c := range commits {
		excluded, err := r.isExcludedAuthor(c.Author)
		if err != nil {
			return nil, err
		}
		if excluded {
			continue
		}
		kept = append(kept, c)
	}
	return kept, nil
}

// FindRepositoryRoot resolves the worktree root containing path.
func FindRepositoryRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNotARepository
		}
		return "", fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// Bare repositories have no worktree; git -C still works on them.
		if errors.Is(err, git.ErrIsBareRepository) {
			return absPath, nil
		}
		return "", fmt.Errorf("open worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// isExcludedAuthor checks an author name against the exclusion globs.
func (r *HistoryReader) isExcludedAuthor(author string) (bool, error) {
	if cached, ok := r.filterCache[author]; ok {
		return cached, nil
	}

	for _, pattern := range r.opts.ExcludeAuthors {
		matched, err := doublestar.Match(pattern, author)
		if err != nil {
			return false, fmt.Errorf("invalid author pattern %q: %w", pattern, err)
		}
		if matched {
			r.filterCache[author] = true
			return true, nil
		}
	}

	r.filterCache[author] = false
	return false, nil
}
