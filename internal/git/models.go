package git

// CommitRecord represents one commit as printed by git log.
type CommitRecord struct {
	SHA     string
	Author  string
	Date    string // Kept in git's original format
	Subject string
	Body    string
}

// Text returns the subject and body concatenated, the text used for scoring.
func (c CommitRecord) Text() string {
	return c.Subject + c.Body
}

// ShortSHA returns the first eight characters of the commit hash.
func (c CommitRecord) ShortSHA() string {
	if len(c.SHA) > 8 {
		return c.SHA[:8]
	}
	return c.SHA
}

// SkipFunc is called for each raw record the parser drops.
type SkipFunc func(index int, reason string)

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath       string
	Branch         string   // Revision to read from; empty means HEAD
	Count          int      // Number of most recent commits to read
	ExcludeAuthors []string // Glob patterns matched against author names
	OnSkip         SkipFunc
}
