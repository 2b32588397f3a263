package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"antique-models-store/internal/config"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoMailer sends transactional mail through the Brevo REST API.
type BrevoMailer struct {
	apiKey     string
	fromEmail  string
	fromName   string
	httpClient *http.Client
}

func NewBrevoMailer(cfg config.Brevo) *BrevoMailer {
	return &BrevoMailer{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type brevoRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
	TextContent string         `json:"textContent"`
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

func (m *BrevoMailer) SendDownloadLink(ctx context.Context, email DownloadEmail) error {
	subject := fmt.Sprintf("Your download is ready - %s", email.ModelName)

	htmlContent := fmt.Sprintf(`
		<p>Thank you for your purchase of <strong>%s</strong>.</p>
		<p><a href="%s">Download your 3D model</a></p>
		<p>The link is valid until %s and allows up to 10 downloads.</p>
	`, email.ModelName, email.URL, email.ExpiresAt.UTC().Format(time.RFC1123))

	textContent := fmt.Sprintf(
		"Thank you for your purchase of %s.\n\nDownload: %s\n\nThe link is valid until %s and allows up to 10 downloads.\n",
		email.ModelName, email.URL, email.ExpiresAt.UTC().Format(time.RFC1123),
	)

	payload := brevoRequest{
		Sender:      brevoAddress{Name: m.fromName, Email: m.fromEmail},
		To:          []brevoAddress{{Email: email.To}},
		Subject:     subject,
		HTMLContent: htmlContent,
		TextContent: textContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("brevo API error: status %d", resp.StatusCode)
	}

	return nil
}
