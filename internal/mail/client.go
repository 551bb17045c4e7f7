// Package mail provides a lightweight HTTP client for the Resend email API.
// If not configured, the client operates as a no-op.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Client is the interface for sending transactional email.
type Client interface {
	// IsEnabled returns true if the mail provider is configured.
	IsEnabled() bool
	// Send delivers a single email.
	Send(ctx context.Context, msg Message) error
}

// Message contains the data for a single outgoing email.
type Message struct {
	To      string // Recipient address
	Subject string // Subject line
	HTML    string // HTML body
}

// Config holds mail client configuration.
type Config struct {
	APIKey  string
	From    string // e.g. "Signal <noreply@signal-au.com>"
	BaseURL string // Optional: override the Resend endpoint (used in tests)
}

// client is the concrete implementation of Client.
type client struct {
	apiKey     string
	from       string
	baseURL    string
	enabled    bool
	httpClient *http.Client
}

// NewClient creates a new Resend client.
// If the API key is empty, returns a disabled no-op client.
func NewClient(cfg Config) Client {
	enabled := cfg.APIKey != ""

	if !enabled {
		log.Println("[mail] disabled: RESEND_API_KEY is empty")
	} else {
		log.Printf("[mail] enabled: from=%s", cfg.From)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = resendEndpoint
	}
	from := cfg.From
	if from == "" {
		from = "Signal <noreply@signal-au.com>"
	}

	return &client{
		apiKey:  cfg.APIKey,
		from:    from,
		baseURL: baseURL,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) Send(ctx context.Context, msg Message) error {
	if !c.enabled {
		return nil
	}

	payload := sendPayload{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend returned status %d: %s", resp.StatusCode, detail)
	}

	return nil
}

// sendPayload mirrors the Resend /emails request body.
type sendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}
