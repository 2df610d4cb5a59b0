package changelog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/masmgr/changelog-go/internal/git"
)

// DefaultTimeout bounds the single generation request.
const DefaultTimeout = 10 * time.Second

// Config holds everything the client needs; nothing is read from the environment.
type Config struct {
	APIKey      string
	Endpoint    string
	Model       string
	APIVersion  string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Client sends commit summaries to a text-generation endpoint that speaks
// the Anthropic Messages API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a client for the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Message is one conversation turn in the request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RequestBody is the JSON payload posted to the endpoint.
type RequestBody struct {
	Model       string    `json:"model"`
	System      string    `json:"system"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// ContentBlock is one block of generated content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ResponseBody is the subset of the response the client reads.
type ResponseBody struct {
	Content []ContentBlock `json:"content"`
}

// NewRequestBody builds the payload for the given commits.
func (c *Client) NewRequestBody(commits []git.CommitRecord) RequestBody {
	return RequestBody{
		Model:  c.cfg.Model,
		System: SystemPrompt,
		Messages: []Message{
			{Role: "user", Content: BuildPrompt(commits)},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}
}

// Generate issues one request and returns the generated changelog text.
// There is no retry; any failure is returned to the caller.
func (c *Client) Generate(ctx context.Context, commits []git.CommitRecord) (string, error) {
	if len(commits) == 0 {
		return "", ErrNoCommits
	}

	jsonData, err := json.Marshal(c.NewRequestBody(commits))
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("content-type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", c.cfg.APIVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	// Error statuses carry the endpoint's own explanation in the body.
	if resp.StatusCode >= http.StatusBadRequest {
		return "", &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return extractChangelog(resp.StatusCode, body)
}

func extractChangelog(status int, body []byte) (string, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &TransportError{StatusCode: status, Body: string(body), Err: fmt.Errorf("decode response: %w", err)}
	}

	object, ok := payload.(map[string]any)
	if !ok {
		return "", &MalformedResponse{Payload: payload, Reason: "response is not a JSON object"}
	}
	if _, ok := object["content"]; !ok {
		return "", &MalformedResponse{Payload: payload, Reason: `missing "content" field`}
	}

	var response ResponseBody
	if err := json.Unmarshal(body, &response); err != nil {
		return "", &MalformedResponse{Payload: payload, Reason: fmt.Sprintf(`invalid "content" field: %v`, err)}
	}
	if len(response.Content) == 0 {
		return "", &MalformedResponse{Payload: payload, Reason: `empty "content" field`}
	}

	return NormalizeNewlines(response.Content[0].Text), nil
}

// NormalizeNewlines turns literal \n escape sequences into line breaks.
func NormalizeNewlines(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}
