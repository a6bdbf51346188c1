// Package client implements the worker-side HTTP client for the coordinator
// API. Network failures get one bounded retry; HTTP-level failures are mapped
// to sentinel errors and never retried here.
package client

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

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	"github.com/acochrane/send-relay/internal/model"
)

var (
	// ErrUnauthorized means the coordinator rejected the bearer credential.
	// This will not resolve itself and must surface to the operator.
	ErrUnauthorized = errors.New("coordinator rejected worker credential")

	// ErrConflict means a status callback targeted a job that is no longer
	// in_progress (stale-sweep race or duplicate callback).
	ErrConflict = errors.New("job is not in progress")
)

// Client talks to the coordinator API on behalf of the worker.
type Client struct {
	baseURL  string
	token    string
	httpc    *http.Client
	strategy retry.Strategy
}

// New creates a coordinator API client.
func New(baseURL, token string, timeout time.Duration, strategy retry.Strategy) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		httpc:    &http.Client{Timeout: timeout},
		strategy: strategy,
	}
}

// FetchPending claims up to limit pending jobs from the coordinator.
func (c *Client) FetchPending(ctx context.Context, limit int) ([]model.Job, error) {
	url := fmt.Sprintf("%s/api/queue/pending?limit=%d", c.baseURL, limit)

	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch pending: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("fetch pending: %w", err)
	}

	var out struct {
		Data []model.Job `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("fetch pending: decode response: %w", err)
	}

	return out.Data, nil
}

type statusRequest struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReportStatus records a delivery outcome for a claimed job.
func (c *Client) ReportStatus(ctx context.Context, id uuid.UUID, status model.JobStatus, errDetail string) error {
	url := fmt.Sprintf("%s/api/queue/%s/status", c.baseURL, id)

	body, err := json.Marshal(statusRequest{Status: string(status), Error: errDetail})
	if err != nil {
		return fmt.Errorf("report status: marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("report status: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("report status: %w", err)
	}

	return nil
}

// do performs an authenticated request. Only transport-level failures are
// retried; any HTTP response ends the retry loop.
func (c *Client) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var resp *http.Response

	err := retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
		if err != nil {
			return err
		}

		req.Header.Set("Authorization", "Bearer "+c.token)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		r, err := c.httpc.Do(req)
		if err != nil {
			return err
		}

		resp = r
		return nil
	}, c.strategy)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	}

	var out struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err := json.Unmarshal(raw, &out); err == nil && out.Error != "" {
		return fmt.Errorf("coordinator returned %s: %s", resp.Status, out.Error)
	}

	return fmt.Errorf("coordinator returned %s", resp.Status)
}
