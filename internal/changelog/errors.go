package changelog

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoCommits is returned when Generate is called without commits.
var ErrNoCommits = errors.New("no commits to summarize")

// TransportError reports a failed request: a network or timeout error, an
// error status from the endpoint, or a body that could not be decoded.
type TransportError struct {
	StatusCode int    // Zero when no response was received
	Body       string // Raw response body, when available
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("request failed with status %d: %v: %s", e.StatusCode, e.Err, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("request failed: %v", e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponse reports a successful response lacking the expected content.
type MalformedResponse struct {
	Payload any // Decoded JSON body
	Reason  string
}

func (e *MalformedResponse) Error() string {
	return "unexpected response format: " + e.Reason
}

// Dump returns the received payload pretty-printed for diagnosis.
func (e *MalformedResponse) Dump() string {
	data, err := json.MarshalIndent(e.Payload, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", e.Payload)
	}
	return string(data)
}
