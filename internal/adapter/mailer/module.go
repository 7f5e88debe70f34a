package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/qorikusi/backend/internal/config"
)

// Module exposes the mailer implementation to the fx graph.
var Module = fx.Provide(newMailer)

type mailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newMailer(p mailerParams) Mailer {
	if p.Config.SMTPAddress == "" {
		return NewLog(p.Logger)
	}
	return NewSMTP(p.Config.SMTPAddress, p.Config.MailFrom, p.Logger)
}
