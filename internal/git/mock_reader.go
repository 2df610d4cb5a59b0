package git

import "context"

// MockHistoryReader is a test double for HistoryReader.
// It allows tests to provide predefined commit data without needing a real Git repository.
type MockHistoryReader struct {
	Commits []CommitRecord
	Error   error
	Calls   int
}

// NewMockHistoryReader creates a new MockHistoryReader with the given data.
func NewMockHistoryReader(commits []CommitRecord, err error) *MockHistoryReader {
	return &MockHistoryReader{
		Commits: commits,
		Error:   err,
	}
}

// ReadCommits returns the predefined commits or error.
func (m *MockHistoryReader) ReadCommits(_ context.Context) ([]CommitRecord, error) {
	m.Calls++
	return m.Commits, m.Error
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*MockHistoryReader)(nil)
