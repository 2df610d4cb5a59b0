package git

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// recordSentinel terminates every commit record in the log output.
const recordSentinel = "----------"

// logFormat prints hash, author, date and subject on their own lines,
// followed by the raw body and the sentinel line.
const logFormat = "%H%n%an%n%ad%n%s%n%b%n" + recordSentinel

func (r *HistoryReader) readCommitsGitCLI(ctx context.Context) ([]CommitRecord, error) {
	args := r.logArgs()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &RetrievalError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return parseLog(stdout.String(), r.opts.OnSkip), nil
}

func (r *HistoryReader) logArgs() []string {
	args := []string{
		"-C", r.root,
		"log",
		"-n", strconv.Itoa(r.opts.Count),
		"--no-color",
		"--pretty=format:" + logFormat,
	}

	rev := strings.TrimSpace(r.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		// The trailing -- keeps git from reading the revision as a path.
		args = append(args, rev, "--")
	}
	return args
}

// parseLog splits git log output into commit records.
// Records end at a line consisting solely of the sentinel; whatever follows
// the last sentinel is discarded. A record needs at least hash, author, date
// and subject lines, shorter ones are reported through onSkip and dropped.
func parseLog(out string, onSkip SkipFunc) []CommitRecord {
	out = strings.ReplaceAll(out, "\r\n", "\n")

	var (
		commits []CommitRecord
		current []string
		index   int
	)

	for _, line := range strings.Split(out, "\n") {
		if line != recordSentinel {
			current = append(current, line)
			continue
		}

		rec, ok := parseRecord(strings.Join(current, "\n"))
		if ok {
			commits = append(commits, rec)
		} else if onSkip != nil {
			onSkip(index, "record has fewer than 4 lines")
		}
		current = current[:0]
		index++
	}

	return commits
}

func parseRecord(raw string) (CommitRecord, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CommitRecord{}, false
	}

	lines := strings.Split(raw, "\n")
	if len(lines) < 4 {
		return CommitRecord{}, false
	}

	rec := CommitRecord{
		SHA:     lines[0],
		Author:  lines[1],
		Date:    lines[2],
		Subject: lines[3],
	}
	if len(lines) > 4 {
		rec.Body = strings.Join(lines[4:], "\n")
	}
	return rec, true
}
