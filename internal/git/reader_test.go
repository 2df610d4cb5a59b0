package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

var errExit = errors.New("exit status 128")

// initTestRepo creates a repository with the given commit messages, oldest first.
func initTestRepo(t *testing.T, authors []string, messages []string) string {
	t.Helper()

	repoDir := t.TempDir()
	repo, err := gogit.PlainInit(repoDir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	now := time.Now()
	for i, msg := range messages {
		rel := filepath.Join("src", "file.txt")
		full := filepath.Join(repoDir, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte(msg+"\n"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := wt.Add(rel); err != nil {
			t.Fatalf("Add: %v", err)
		}

		sig := &object.Signature{
			Name:  authors[i%len(authors)],
			Email: "test@example.com",
			When:  now.Add(time.Duration(i-len(messages)) * time.Hour),
		}
		if _, err := wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
			t.Fatalf("Commit: %v", err)
		}
	}

	return repoDir
}

func requireGitBinary(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestNewHistoryReader_NotARepository(t *testing.T) {
	_, err := NewHistoryReader(ReadOptions{RepoPath: t.TempDir(), Count: 5})
	if !errors.Is(err, ErrNotARepository) {
		t.Fatalf("err = %v, expected ErrNotARepository", err)
	}
}

func TestNewHistoryReader_FromSubdirectory(t *testing.T) {
	repoDir := initTestRepo(t, []string{"Test"}, []string{"initial"})

	reader, err := NewHistoryReader(ReadOptions{RepoPath: filepath.Join(repoDir, "src"), Count: 1})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	want, _ := filepath.EvalSymlinks(repoDir)
	got, _ := filepath.EvalSymlinks(reader.Root())
	if got != want {
		t.Fatalf("Root() = %q, expected %q", got, want)
	}
}

func TestHistoryReader_ReadCommits_MostRecentFirst(t *testing.T) {
	requireGitBinary(t)

	repoDir := initTestRepo(t, []string{"Alice"}, []string{
		"Initial import",
		"Fix typo",
		"Add new export feature\n\nImplements CSV export",
	})

	reader, err := NewHistoryReader(ReadOptions{RepoPath: repoDir, Count: 2})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	commits, err := reader.ReadCommits(context.Background())
	if err != nil {
		t.Fatalf("ReadCommits: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("commits = %d, expected 2", len(commits))
	}
	if commits[0].Subject != "Add new export feature" {
		t.Errorf("commits[0].Subject = %q", commits[0].Subject)
	}
	if commits[0].Body != "Implements CSV export" {
		t.Errorf("commits[0].Body = %q", commits[0].Body)
	}
	if commits[1].Subject != "Fix typo" {
		t.Errorf("commits[1].Subject = %q", commits[1].Subject)
	}
	for i, c := range commits {
		if len(c.SHA) != 40 {
			t.Errorf("commits[%d].SHA = %q, expected full hash", i, c.SHA)
		}
		if c.Author != "Alice" {
			t.Errorf("commits[%d].Author = %q, expected Alice", i, c.Author)
		}
		if c.Date == "" {
			t.Errorf("commits[%d].Date is empty", i)
		}
	}
}

func TestHistoryReader_ReadCommits_ExcludeAuthors(t *testing.T) {
	requireGitBinary(t)

	repoDir := initTestRepo(t, []string{"Alice", "dependabot[bot]"}, []string{
		"Initial import",
		"Bump library",
		"Add feature",
		"Bump other library",
	})

	reader, err := NewHistoryReader(ReadOptions{
		RepoPath:       repoDir,
		Count:          10,
		ExcludeAuthors: []string{"dependabot*"},
	})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	commits, err := reader.ReadCommits(context.Background())
	if err != nil {
		t.Fatalf("ReadCommits: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("commits = %d, expected 2", len(commits))
	}
	for _, c := range commits {
		if c.Author != "Alice" {
			t.Errorf("unexpected author %q", c.Author)
		}
	}
}

func TestHistoryReader_ReadCommits_BadRevision(t *testing.T) {
	requireGitBinary(t)

	repoDir := initTestRepo(t, []string{"Alice"}, []string{"Initial import"})
	reader, err := NewHistoryReader(ReadOptions{RepoPath: repoDir, Count: 1, Branch: "does-not-exist"})
	if err != nil {
		t.Fatalf("NewHistoryReader: %v", err)
	}

	_, err = reader.ReadCommits(context.Background())
	var retrievalErr *RetrievalError
	if !errors.As(err, &retrievalErr) {
		t.Fatalf("err = %v, expected *RetrievalError", err)
	}
}

func TestHistoryReader_ReadCommits_NonPositiveCount(t *testing.T) {
	repoDir := initTestRepo(t, []string{"Alice"}, []string{"Initial import"})

	for _, n := range []int{0, -3} {
		reader, err := NewHistoryReader(ReadOptions{RepoPath: repoDir, Count: n})
		if err != nil {
			t.Fatalf("NewHistoryReader: %v", err)
		}
		commits, err := reader.ReadCommits(context.Background())
		if err != nil {
			t.Fatalf("ReadCommits(%d): %v", n, err)
		}
		if len(commits) != 0 {
			t.Fatalf("ReadCommits(%d) = %d commits, expected 0", n, len(commits))
		}
	}
}

func TestMockHistoryReader(t *testing.T) {
	want := []CommitRecord{{SHA: "a1", Subject: "Fix typo"}}
	mock := NewMockHistoryReader(want, nil)

	got, err := mock.ReadCommits(context.Background())
	if err != nil {
		t.Fatalf("ReadCommits: %v", err)
	}
	if len(got) != 1 || got[0].SHA != "a1" {
		t.Fatalf("ReadCommits = %#v", got)
	}
	if mock.Calls != 1 {
		t.Fatalf("Calls = %d, expected 1", mock.Calls)
	}

	failing := NewMockHistoryReader(nil, ErrNotARepository)
	if _, err := failing.ReadCommits(context.Background()); !errors.Is(err, ErrNotARepository) {
		t.Fatalf("err = %v, expected ErrNotARepository", err)
	}
}

func TestCommitRecord_Helpers(t *testing.T) {
	c := CommitRecord{SHA: "0123456789abcdef", Subject: "Add", Body: " export"}
	if c.Text() != "Add export" {
		t.Errorf("Text() = %q", c.Text())
	}
	if c.ShortSHA() != "01234567" {
		t.Errorf("ShortSHA() = %q", c.ShortSHA())
	}
	if (CommitRecord{SHA: "a1"}).ShortSHA() != "a1" {
		t.Error("ShortSHA() should keep short hashes intact")
	}
}
