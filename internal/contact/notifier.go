package contact

import (
	"context"
	"log/slog"

	"github.com/evcraddock/agent-site/internal/email"
)

// MethodLogged is the receipt method when no email provider is configured.
const MethodLogged = "logged"

// Message is what a notifier relays for one lead.
type Message struct {
	ReplyTo string
	Subject string
	Body    string
}

// Notifier puts a lead in front of a human.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
	// Method identifies the delivery path in the submission receipt.
	Method() string
}

// EmailNotifier emails leads to the site owner.
type EmailNotifier struct {
	sender email.Sender
	from   string
	to     string
}

// NewEmailNotifier creates a notifier that sends from the site identity to
// the owner's address.
func NewEmailNotifier(sender email.Sender, from, to string) *EmailNotifier {
	return &EmailNotifier{sender: sender, from: from, to: to}
}

// Notify implements Notifier.
func (n *EmailNotifier) Notify(ctx context.Context, msg Message) error {
	return n.sender.Send(ctx, email.Message{
		From:    n.from,
		To:      []string{n.to},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Body,
	})
}

// Method implements Notifier.
func (n *EmailNotifier) Method() string {
	return n.sender.Provider()
}

// LogNotifier writes leads to the process log. Nothing is delivered.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log notifier. A nil logger uses slog.Default.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	logger := n.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "=== CONTACT FORM SUBMISSION ===")
	logger.InfoContext(ctx, msg.Body, "subject", msg.Subject, "reply_to", msg.ReplyTo)
	logger.InfoContext(ctx, "=== END SUBMISSION ===")
	logger.WarnContext(ctx, "NOTE: Set RESEND_API_KEY environment variable to enable email delivery.")
	return nil
}

// Method implements Notifier.
func (n *LogNotifier) Method() string {
	return MethodLogged
}
