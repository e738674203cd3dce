package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"guid-gatherer/config"
)

type Mailer interface {
	SendWelcome(to, name string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

func (m *SMTPMailer) SendWelcome(to, name string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome to GUID Gatherer")
	msg.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nYour account has been created. You can now sign in with %s.\n", name, to))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}
	return nil
}

// NoopMailer is used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) SendWelcome(string, string) error { return nil }

func NewMailer(cfg *config.Config) Mailer {
	if !cfg.MailEnabled() {
		return NoopMailer{}
	}
	return NewSMTPMailer(cfg)
}
