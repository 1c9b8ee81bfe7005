package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultResendURL = "https://api.resend.com"

// ResendClient sends mail through the Resend REST API.
type ResendClient struct {
	httpClient *http.Client
	apiKey     string

	// Overridable for testing.
	baseURL string
}

// NewResendClient creates a Resend client with the given API key.
func NewResendClient(apiKey string) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is required")
	}
	return &ResendClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     apiKey,
		baseURL:    defaultResendURL,
	}, nil
}

// Provider implements Sender.
func (c *ResendClient) Provider() string { return "resend" }

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type resendResponse struct {
	ID string `json:"id"`
}

// Send posts msg to the Resend emails endpoint. One attempt only.
func (c *ResendClient) Send(ctx context.Context, msg Message) (err error) {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients")
	}

	payload, err := json.Marshal(resendRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing body: %w", closeErr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.DebugContext(ctx, "resend rejected email", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	var result resendResponse
	if err := json.Unmarshal(body, &result); err == nil && result.ID != "" {
		slog.DebugContext(ctx, "resend accepted email", "id", result.ID)
	}

	return nil
}
