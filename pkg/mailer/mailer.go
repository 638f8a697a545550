// Package mailer provides outbound email delivery with pluggable transports.
package mailer

import (
	"context"
	"fmt"
)

// Message represents an email message to be sent.
type Message struct {
	To      string
	Subject string
	Text    string // plain-text fallback body
	HTML    string
}

// Sender is the interface that mail transports must implement.
// It performs exactly one delivery attempt per call; retry policy,
// if any, belongs to the caller.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// DeliveryError reports a failed delivery attempt.
type DeliveryError struct {
	To  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mail delivery to %s failed: %v", e.To, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
