package utils

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailMessage is one outbound transactional email. Bodies are HTML.
type EmailMessage struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer builds an SMTP mailer from the EMAIL_SERVER_* environment.
// Port defaults to 587 (STARTTLS).
func NewMailer() (Mailer, error) {
	host := os.Getenv("EMAIL_SERVER_HOST")
	if host == "" {
		host = "localhost"
	}

	port := 587
	if p := os.Getenv("EMAIL_SERVER_PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid EMAIL_SERVER_PORT %q: %w", p, err)
		}
		port = parsed
	}

	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = os.Getenv("EMAIL_SERVER_USER")
	}

	dialer := gomail.NewDialer(host, port, os.Getenv("EMAIL_SERVER_USER"), os.Getenv("EMAIL_SERVER_PASSWORD"))

	return &smtpMailer{dialer: dialer, from: from}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		message.SetHeader("Reply-To", msg.ReplyTo)
	}
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	return nil
}
