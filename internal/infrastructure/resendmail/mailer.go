package resendmail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"bluw/internal/dto"
)

type Mailer struct {
	client *resend.Client
}

func New(apiKey string) *Mailer {
	return &Mailer{client: resend.NewClient(apiKey)}
}

// Send dispatches one email and returns the provider's message id. There is
// no queuing and no retry; the caller decides whether a failure is fatal.
func (m *Mailer) Send(ctx context.Context, email dto.Email) (string, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("sending email: %w", err)
	}
	return sent.Id, nil
}
