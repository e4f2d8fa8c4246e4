package facades

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/sbilibin2017/gw-template-studio/internal/logger"
)

// SMTPMailer sends plain-text mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one message. gomail has no context support, so ctx is only used for logging.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := newMessage(m.from, to, subject, body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.FromContext(ctx).Errorw("failed to send mail", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("send mail: %w", err)
	}

	logger.FromContext(ctx).Infow("mail sent", "to", to, "subject", subject)
	return nil
}

func newMessage(from, to, subject, body string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return msg
}
