package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/dmitrymomot/emailkit/pkg/mailer"
	"github.com/dmitrymomot/emailkit/pkg/sanitizer"
)

// ErrInvalidConfig indicates the SMTP configuration cannot be used.
var ErrInvalidConfig = errors.New("smtp: invalid config")

// sender delivers a built message. *mail.Client satisfies it.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Provider implements mailer.Provider over SMTP.
type Provider struct {
	client sender
	config Config
}

// New validates cfg and creates an SMTP provider. No connection is made until Send.
func New(cfg Config) (*Provider, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("%w: port must be positive", ErrInvalidConfig)
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("%w: from address is required", ErrInvalidConfig)
	}

	mode, err := ParseTLSMode(cfg.TLSMode)
	if err != nil {
		return nil, err
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSConfig(&tls.Config{
			ServerName:         cfg.Host,
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // opt-in for local sinks
		}),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	switch mode.resolve(cfg.Port) {
	case TLSModeDisabled:
		opts = append(opts, mail.WithTLSPortPolicy(mail.NoTLS))
	case TLSModeImplicit:
		opts = append(opts, mail.WithSSL())
	default:
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}

	if cfg.Username != "" {
		opts = append(opts,
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
			mail.WithSMTPAuth(mail.SMTPAuthAutoDiscover),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Provider{client: client, config: cfg}, nil
}

// Send implements mailer.Provider.
func (p *Provider) Send(ctx context.Context, msg mailer.Message) (*mailer.Response, error) {
	m, err := p.buildMessage(msg)
	if err != nil {
		return nil, err
	}

	if err := p.client.DialAndSendWithContext(ctx, m); err != nil {
		return nil, fmt.Errorf("smtp: failed to send email: %w", err)
	}

	return mailer.OKResponse(nil, map[string]string{
		"message_id": m.GetMessageID(),
		"host":       p.config.Host,
	}), nil
}

func (p *Provider) buildMessage(msg mailer.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(p.config.From); err != nil {
		return nil, fmt.Errorf("smtp: invalid from address %q: %w", p.config.From, err)
	}
	if err := m.EnvelopeFrom(p.config.From); err != nil {
		return nil, fmt.Errorf("smtp: invalid envelope from address %q: %w", p.config.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("smtp: invalid to address %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetMessageID()
	m.SetDate()
	m.SetBodyString(mail.TypeTextPlain, sanitizer.PlainText(msg.HTML))
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	return m, nil
}
