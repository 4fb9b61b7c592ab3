package notify

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-marketplace-storefront/internal/config"
	mail "github.com/wneessen/go-mail"
)

// SMTP — реализация Notifier поверх SMTP (wneessen/go-mail).
type SMTP struct {
	cfg    config.SMTPConfig
	client *mail.Client
}

// NewSMTP собирает SMTP-клиент из конфигурации.
// Соединение ленивое: устанавливается на каждую отправку (DialAndSend),
// объём исходящей почты витрины не оправдывает постоянный коннект.
func NewSMTP(cfg config.SMTPConfig) (*SMTP, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}

	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTP{cfg: cfg, client: client}, nil
}

// Send отправляет письмо. Пустой From заменяется на сконфигурированный.
func (s *SMTP) Send(ctx context.Context, msg Message) error {
	const op = "notify/smtp/Send"

	m := mail.NewMsg()

	from := msg.From
	if from == "" {
		from = s.cfg.From
	}

	if err := m.From(from); err != nil {
		return fmt.Errorf("%s: from: %w", op, err)
	}

	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("%s: to: %w", op, err)
	}

	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("%s: reply-to: %w", op, err)
		}
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%s: send: %w", op, err)
	}

	return nil
}
