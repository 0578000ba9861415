package health

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Checker polls an external health signal endpoint (e.g. cerberus) that
// publishes a plain-text True/False body describing cluster health.
type Checker struct {
	url    string
	client *http.Client
}

// NewChecker creates a Checker for the given signal URL.
func NewChecker(url string) *Checker {
	return &Checker{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Check fetches the signal and reports whether the cluster is healthy.
// Any body other than "True" is a no-go signal.
func (c *Checker) Check(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return false, fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("fetch health signal: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return false, fmt.Errorf("read health signal: %w", err)
	}

	return strings.TrimSpace(string(body)) == "True", nil
}
