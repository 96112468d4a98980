package notify

import (
	"context"
	"errors"
	"fmt"

	brevo "github.com/getbrevo/brevo-go/lib"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
)

// Email delivers alerts through the Brevo transactional e-mail API.
type Email struct {
	From   string
	To     string
	Sender string
	client *brevo.APIClient
}

// NewEmail returns nil unless an API key and both addresses are configured.
func NewEmail(apiKey, from, to, senderName string) *Email {
	if apiKey == "" || from == "" || to == "" {
		return nil
	}
	if senderName == "" {
		senderName = "Website Monitor"
	}
	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", apiKey)
	return &Email{
		From:   from,
		To:     to,
		Sender: senderName,
		client: brevo.NewAPIClient(cfg),
	}
}

func (e *Email) Send(ctx context.Context, ev domain.AlertEvent) error {
	if e == nil || e.client == nil {
		return errors.New("email disabled")
	}
	body := bodyFor(ev)
	msg := brevo.SendSmtpEmail{
		Sender: &brevo.SendSmtpEmailSender{
			Name:  e.Sender,
			Email: e.From,
		},
		To:          []brevo.SendSmtpEmailTo{{Email: e.To}},
		Subject:     subjectFor(ev),
		HtmlContent: fmt.Sprintf("<pre>%s</pre>", body),
		TextContent: body,
	}
	if _, _, err := e.client.TransactionalEmailsApi.SendTransacEmail(ctx, msg); err != nil {
		return fmt.Errorf("send email via brevo: %w", err)
	}
	return nil
}
