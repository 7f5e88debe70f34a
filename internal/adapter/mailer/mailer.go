package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Mailer delivers transactional mail.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	addr   string
	from   string
	logger *slog.Logger
}

// NewSMTP creates an SMTP mailer.
func NewSMTP(addr, from string, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from, logger: logger}
}

// SendPasswordReset mails the reset link to the account holder.
func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	msg.WriteString("Subject: Restablece tu contrasena\r\n")
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "Para restablecer tu contrasena, abre este enlace:\r\n%s\r\n", resetLink)
	fmt.Fprintf(&msg, "\r\nEl enlace expira en 15 minutos.\r\n")

	if err := smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// LogMailer logs the reset link instead of sending mail. Used when no SMTP
// relay is configured, typically in local runs.
type LogMailer struct {
	logger *slog.Logger
}

// NewLog creates a log-only mailer.
func NewLog(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	m.logger.Info("password reset requested",
		slog.String("to", to),
		slog.String("link", resetLink),
	)
	return nil
}
