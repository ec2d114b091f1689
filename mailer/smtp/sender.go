package smtp

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/zabka-mb/backend/mailer"
)

// Sender implements mailer.Sender over SMTP.
type Sender struct {
	client *gomail.Client
}

// New creates an SMTP sender from the given config.
func New(cfg Config) (*Sender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}
	if cfg.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Sender{client: client}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if email.To == "" {
		return mailer.ErrNoRecipient
	}

	msg := gomail.NewMsg()
	if err := msg.From(email.From); err != nil {
		return fmt.Errorf("invalid from address %q: %w", email.From, err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("invalid to address %q: %w", email.To, err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, email.HTML)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(mailer.ErrSendFailed, err)
	}
	return nil
}
