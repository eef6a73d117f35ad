package lib

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/config"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/logger"
)

// Mail is the notification collaborator, set at startup. Delivery is always
// best-effort: callers fire it in a goroutine and never couple the primary
// operation to its outcome.
var Mail *Mailer

// Mailer sends plain-text mail over SMTP. Without credentials configured it
// degrades to logging the message, which keeps development setups working.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer builds a Mailer from config.
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// Send delivers one message.
func (m *Mailer) Send(to, subject, body string) error {
	if m.host == "" || m.username == "" || m.password == "" {
		logger.L().Warn("SMTP not configured, mail not sent",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body))
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	return smtp.SendMail(addr, auth, m.from, []string{to}, msg)
}

// SendAsync delivers in the background and only logs failures.
func (m *Mailer) SendAsync(to, subject, body string) {
	go func() {
		if err := m.Send(to, subject, body); err != nil {
			logger.L().Warn("notification mail failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err),
			)
		}
	}()
}
