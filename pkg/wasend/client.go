// Package wasend provides a client for the local WhatsApp Web automation
// bridge the worker delivers through.
//
// The bridge drives a logged-in browser session and exposes a single send
// endpoint; a call may block for seconds while the session loads the chat.
// The bridge must never be driven concurrently, which the worker's sequential
// loop guarantees.
package wasend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client represents a client for the automation bridge.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a bridge client. timeout bounds a single delivery.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// sendRequest represents the payload for the bridge send endpoint.
type sendRequest struct {
	Number  string `json:"number"`  // digits-only recipient number
	Message string `json:"message"` // message text
}

// sendResponse represents the bridge's outcome report.
type sendResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Send delivers a message to the given number through the bridge.
//
// A failed delivery returns the bridge's human-readable error detail.
func (c *Client) Send(to string, msg string) error {
	url := c.baseURL + "/send"

	body, err := json.Marshal(sendRequest{Number: to, Message: msg})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("bridge error: %s", resp.Status)
		}
		return fmt.Errorf("decode bridge response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !out.OK {
		if out.Error != "" {
			return fmt.Errorf("delivery failed: %s", out.Error)
		}
		return fmt.Errorf("bridge error: %s", resp.Status)
	}

	return nil
}
