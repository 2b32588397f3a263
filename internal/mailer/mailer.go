// Package mailer delivers the download link after a successful payment.
// Sending is best-effort: the webhook ack never waits on a retryable mail
// failure.
package mailer

import (
	"context"
	"time"

	"antique-models-store/internal/logging"
)

type DownloadEmail struct {
	To        string
	ModelName string
	URL       string
	ExpiresAt time.Time
}

type Mailer interface {
	SendDownloadLink(ctx context.Context, email DownloadEmail) error
}

// LogMailer is the development implementation: it only logs the link, the
// way the MVP storefront did before a mail provider was wired in.
type LogMailer struct {
	log logging.Logger
}

func NewLogMailer(log logging.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendDownloadLink(ctx context.Context, email DownloadEmail) error {
	m.log.Info(ctx, "download link generated",
		"customerEmail", email.To,
		"downloadUrl", email.URL,
		"expiresAt", email.ExpiresAt.UTC().Format(time.RFC3339),
	)
	return nil
}
