package scoring

import (
	"sort"
	"unicode/utf8"

	"github.com/masmgr/changelog-go/config"
	"github.com/masmgr/changelog-go/internal/git"
)

// ScoredCommit pairs a commit with its significance score.
type ScoredCommit struct {
	Commit    git.CommitRecord
	Score     int
	Breakdown *ScoreBreakdown
}

// ScoreBreakdown shows how a score was assembled.
type ScoreBreakdown struct {
	Length      int
	Bonus       int
	Penalty     int
	Significant []string
	Trivial     []string
}

// CommitSelector bounds the number of commits forwarded for generation,
// preferring the ones that look significant.
type CommitSelector struct {
	options     config.SelectionConfig
	significant KeywordSet
	trivial     KeywordSet
}

// NewCommitSelector creates a selector with the given options.
func NewCommitSelector(options config.SelectionConfig) *CommitSelector {
	return &CommitSelector{
		options:     options,
		significant: NewKeywordSet(options.SignificantKeywords),
		trivial:     NewKeywordSet(options.TrivialKeywords),
	}
}

// MaxCommits returns the configured cap.
func (s *CommitSelector) MaxCommits() int {
	return s.options.MaxCommits
}

// Score computes the significance score of a single commit.
//
// The base is the character length of subject and body combined. Every
// distinct significance keyword found adds the bonus once and every distinct
// triviality keyword subtracts the penalty once. The result is unbounded and
// may be negative.
func (s *CommitSelector) Score(commit git.CommitRecord, explain bool) ScoredCommit {
	text := commit.Text()
	length := utf8.RuneCountInString(text)

	significant := s.significant.Matches(text)
	trivial := s.trivial.Matches(text)

	bonus := len(significant) * s.options.Bonus
	penalty := len(trivial) * s.options.Penalty

	var breakdown *ScoreBreakdown
	if explain {
		breakdown = &ScoreBreakdown{
			Length:      length,
			Bonus:       bonus,
			Penalty:     penalty,
			Significant: significant,
			Trivial:     trivial,
		}
	}

	return ScoredCommit{
		Commit:    commit,
		Score:     length + bonus - penalty,
		Breakdown: breakdown,
	}
}

// Rank scores all commits and returns them sorted by score (descending).
// Commits with equal scores keep their original relative order.
func (s *CommitSelector) Rank(commits []git.CommitRecord, explain bool) []ScoredCommit {
	if len(commits) == 0 {
		return nil
	}

	items := make([]ScoredCommit, 0, len(commits))
	for _, c := range commits {
		items = append(items, s.Score(c, explain))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	return items
}

// Select returns at most MaxCommits commits. When the input already fits it
// is returned unchanged, in its original order and without scoring.
// Otherwise the highest scoring commits are returned, best first.
// A non-positive MaxCommits disables the cap.
func (s *CommitSelector) Select(commits []git.CommitRecord) []git.CommitRecord {
	limit := s.options.MaxCommits
	if limit <= 0 || len(commits) <= limit {
		return commits
	}

	ranked := s.Rank(commits, false)[:limit]
	selected := make([]git.CommitRecord, 0, limit)
	for _, item := range ranked {
		selected = append(selected, item.Commit)
	}
	return selected
}
