package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxRemoteBody caps how much of a recipe server response is read.
const maxRemoteBody = 1 << 20

// RemoteAdapter calls a running recipe server's GET /recipe endpoint.
// The server owns the system prompt, so only the dish description is sent.
// The returned body is validated again locally like any model response.
type RemoteAdapter struct {
	baseURL string
	client  *http.Client
}

// NewRemoteAdapter creates a remote adapter for the given server base URL.
func NewRemoteAdapter(config Config) (*RemoteAdapter, error) {
	if strings.TrimSpace(config.RemoteURL) == "" {
		return nil, fmt.Errorf("remote URL not set")
	}
	u, err := url.Parse(config.RemoteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid remote URL: %q", config.RemoteURL)
	}

	return &RemoteAdapter{
		baseURL: strings.TrimRight(config.RemoteURL, "/"),
		client:  &http.Client{Timeout: 2 * time.Minute},
	}, nil
}

func (a *RemoteAdapter) Name() string {
	return "remote"
}

func (a *RemoteAdapter) IsAvailable() bool {
	return a.baseURL != ""
}

func (a *RemoteAdapter) Complete(ctx context.Context, _ string, userPrompt string) (string, error) {
	endpoint := a.baseURL + "/recipe?prompt=" + url.QueryEscape(userPrompt)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("recipe server unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBody))
	if err != nil {
		return "", fmt.Errorf("failed to read recipe server response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recipe server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return string(body), nil
}
