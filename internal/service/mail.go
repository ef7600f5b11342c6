package service

import (
	"context"
	"time"

	"storefront/config"

	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"
)

// Mailer 外寄信件的最小介面；測試與停用情境用 NoopMailer。
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type MailgunMailer struct {
	client *mailgun.MailgunImpl
	sender string
	logger *zap.Logger
}

type NoopMailer struct{}

func (NoopMailer) Send(ctx context.Context, to, subject, body string) error { return nil }

// NewMailer 依設定決定實作；未啟用或缺 API key 時退回 Noop。
func NewMailer(logger *zap.Logger, config *config.Configuration) Mailer {
	if !config.Mail.Enabled || config.Mail.APIKey == "" {
		logger.Info("mail disabled, using noop mailer")
		return NoopMailer{}
	}
	return &MailgunMailer{
		client: mailgun.NewMailgun(config.Mail.Domain, config.Mail.APIKey),
		sender: config.Mail.Sender,
		logger: logger,
	}
}

func (mailer *MailgunMailer) Send(ctx context.Context, to, subject, body string) error {
	message := mailer.client.NewMessage(mailer.sender, subject, body, to)
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, id, err := mailer.client.Send(ctx, message)
	if err != nil {
		mailer.logger.Error("mailgun send failed", zap.String("to", to), zap.Error(err))
		return err
	}
	mailer.logger.Info("mail sent", zap.String("to", to), zap.String("message_id", id))
	return nil
}
