package git

import "context"

// RepositoryReader defines the interface for reading recent commit history.
type RepositoryReader interface {
	// ReadCommits returns up to Count commits, most recent first.
	ReadCommits(ctx context.Context) ([]CommitRecord, error)
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*HistoryReader)(nil)
