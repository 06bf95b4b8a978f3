package slidegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Generator endpoints, relative to the configured base URL.
const (
	PathHymn          = "/api/generate-hymn-slides"
	PathCallToWorship = "/api/generate-call-to-worship"
	PathScripture     = "/api/generate-scripture-slides"
)

const (
	defaultTimeout   = 120 * time.Second
	maxArtifactBytes = 200 << 20
	maxErrorBytes    = 64 << 10
	genericMessage   = "Failed to generate slides"
)

// ErrArtifactTooLarge is returned when a generated deck exceeds maxArtifactBytes.
var ErrArtifactTooLarge = errors.New("artifact exceeds size limit")

// GenerationError is returned when the generator answers with a non-2xx status.
type GenerationError struct {
	Status  int
	Message string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("slide generator returned %d: %s", e.Status, e.Message)
}

// Response is a generated artifact.
type Response struct {
	Body        []byte
	ContentType string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient builds a generator client. A zero timeout uses two minutes and a
// non-positive rps disables outbound throttling.
func NewClient(baseURL string, timeout time.Duration, rps float64) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate POSTs payload as JSON to path exactly once.
func (c *Client) Generate(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return nil, &GenerationError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArtifactBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	if len(data) > maxArtifactBytes {
		return nil, fmt.Errorf("read artifact: %w", ErrArtifactTooLarge)
	}
	return &Response{Body: data, ContentType: resp.Header.Get("Content-Type")}, nil
}

// errorMessage extracts "error", then "detail", from a JSON error body. The
// generator reports validation failures as a list of detail objects.
func errorMessage(raw []byte) string {
	var body struct {
		Error  json.RawMessage `json:"error"`
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return genericMessage
	}
	for _, field := range []json.RawMessage{body.Error, body.Detail} {
		if msg := messageText(field); msg != "" {
			return msg
		}
	}
	return genericMessage
}

func messageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
