package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotARepository is returned when the target path is not inside a git checkout.
var ErrNotARepository = errors.New("not a git repository")

// RetrievalError reports a failed git log invocation.
type RetrievalError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *RetrievalError) Error() string {
	msg := fmt.Sprintf("git %s failed: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *RetrievalError) Unwrap() error { return e.Err }
