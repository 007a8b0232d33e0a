package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/emailkit/pkg/mailer"
	"github.com/dmitrymomot/emailkit/pkg/sanitizer"
)

// emailsAPI is the subset of the Resend client the provider uses.
type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Provider implements mailer.Provider using the Resend API.
type Provider struct {
	emails emailsAPI
	config Config
}

// New creates a Resend provider.
func New(cfg Config) *Provider {
	return &Provider{
		emails: resend.NewClient(cfg.APIKey).Emails,
		config: cfg,
	}
}

// Send implements mailer.Provider.
// The loggable response carries only the Resend message ID.
func (p *Provider) Send(ctx context.Context, msg mailer.Message) (*mailer.Response, error) {
	req := &resend.SendEmailRequest{
		From:    p.from(),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    sanitizer.PlainText(msg.HTML),
		ReplyTo: p.config.ReplyTo,
	}

	resp, err := p.emails.SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("resend: failed to send email: %w", err)
	}

	return mailer.OKResponse(resp, map[string]string{"id": resp.Id}), nil
}

func (p *Provider) from() string {
	if p.config.SenderName != "" {
		return fmt.Sprintf("%s <%s>", p.config.SenderName, p.config.SenderEmail)
	}
	return p.config.SenderEmail
}
