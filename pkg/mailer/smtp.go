package mailer

import (
	"context"

	gomail "gopkg.in/gomail.v2"

	"vrikzo-backend/pkg/config"
)

// SMTPSender delivers mail through a plain SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.FromEmail,
	}
}

// Send performs a single delivery attempt. The gomail dialer has no
// context support, so the send runs in a goroutine and the call returns
// early when ctx expires; a hung SMTP connection cannot block the caller.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return &DeliveryError{To: msg.To, Err: err}
		}
		return nil
	case <-ctx.Done():
		return &DeliveryError{To: msg.To, Err: ctx.Err()}
	}
}
