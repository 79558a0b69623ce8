package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// OllamaClient produces free-form text through the Ollama HTTP API. It
// satisfies the generation package's TextSource interface.
type OllamaClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates a client that talks to a local Ollama instance.
func NewOllamaClient(cfg Config, observer Observer) *OllamaClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &OllamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// generateRequest is the JSON body sent to POST /api/generate.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

// generateResponse is the JSON body returned by POST /api/generate
// (non-streaming).
type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
}

// Text sends a prompt and returns the model's trimmed response.
func (c *OllamaClient) Text(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := generateRequest{
		Model:  c.cfg.Model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: c.cfg.Temperature,
			NumPredict:  c.cfg.MaxTokens,
		},
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				Model:     c.cfg.Model,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return strings.TrimSpace(resp.Response), nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(ctx, lastErr),
	})

	if ctx.Err() != nil {
		return "", ErrTimeout
	}
	if isConnectionError(lastErr) {
		return "", ErrUnavailable
	}
	return "", fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *OllamaClient) doRequest(ctx context.Context, body generateRequest) (*generateResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := c.cfg.Endpoint + "/api/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &resp, nil
}

// Available checks whether the Ollama server is reachable.
func (c *OllamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := c.cfg.Endpoint + "/api/tags"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return ""
	case ctx.Err() != nil:
		return "TIMEOUT"
	case isConnectionError(err):
		return "UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
