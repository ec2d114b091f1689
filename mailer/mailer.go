// Package mailer defines the outbound email boundary. Providers implement
// the Sender interface; the rest of the codebase only ever sees Email.
package mailer

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoRecipient is returned when an email has no recipient.
	ErrNoRecipient = errors.New("no recipient specified")
	// ErrSendFailed wraps transport-level delivery failures.
	ErrSendFailed = errors.New("email sending failed")
)

// Email is a fully-prepared message ready for sending.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender delivers one prepared email. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// Recipient formats a display name and address into RFC 5322 form.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
