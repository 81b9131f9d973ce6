// Package email sends outbound notification mail over SMTP.
package email

import (
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Mailer is the single outbound mail operation the portal needs.
type Mailer interface {
	// Send delivers an HTML email to the recipients and reports which
	// addresses were accepted and which were rejected.
	Send(recipients []string, subject, htmlBody string) (accepted, rejected []string, err error)
}

// SMTPConfig holds the SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewMailer creates a Mailer backed by an SMTP relay.
func NewMailer(config SMTPConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{config: config, logger: logger}
}

// Send delivers the message in one SMTP transaction. When no credentials are
// configured the message is logged instead, so development setups without a
// relay still succeed.
func (m *smtpMailer) Send(recipients []string, subject, htmlBody string) ([]string, []string, error) {
	if m.config.Username == "" || m.config.Password == "" {
		m.logger.Warn().
			Strs("recipients", recipients).
			Str("subject", subject).
			Msg("SMTP credentials not configured, mail not sent")
		return recipients, nil, nil
	}

	from := m.config.From
	if from == "" {
		from = m.config.Username
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.config.Host, m.config.Port, m.config.Username, m.config.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		m.logger.Error().Err(err).Str("host", m.config.Host).Msg("Failed to send email")
		return nil, recipients, err
	}

	return recipients, nil, nil
}
