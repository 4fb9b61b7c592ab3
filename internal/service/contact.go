package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/pribylovaa/go-marketplace-storefront/internal/notify"
	"github.com/pribylovaa/go-marketplace-storefront/pkg/log"
)

// ContactInput — сообщение с формы обратной связи.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmitContact пересылает сообщение с формы контакта администратору.
//
// В отличие от алерта об отзыве, здесь доставка — и есть операция,
// поэтому путь fail closed:
//   - пустые Name/Email/Message -> ValidationError;
//   - SMTP не сконфигурирован -> ErrCapabilityUnavailable (503);
//   - прочие ошибки отправки -> ErrInternal.
func (s *Service) SubmitContact(ctx context.Context, in ContactInput) error {
	const op = "service/contact/SubmitContact"

	lg := log.From(ctx).With("op", op)

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" || in.Email == "" || in.Message == "" {
		lg.Warn("contact rejected: missing fields")
		return validationErr("All fields are required")
	}

	subject := in.Subject
	if subject == "" {
		subject = fmt.Sprintf("Contact form message from %s", in.Name)
	}

	msg := notify.Message{
		To:      []string{s.cfg.SMTP.AdminEmail},
		ReplyTo: in.Email,
		Subject: subject,
		HTMLBody: fmt.Sprintf(
			"<p>From: <strong>%s</strong> &lt;%s&gt;</p><p>%s</p>",
			html.EscapeString(in.Name),
			html.EscapeString(in.Email),
			html.EscapeString(in.Message),
		),
	}

	if err := s.notifier.Send(ctx, msg); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			lg.Warn("contact delivery unavailable: notifier not configured")
			return fmt.Errorf("%s: %w", op, ErrCapabilityUnavailable)
		}

		lg.Error("contact delivery failed", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("contact message delivered")

	return nil
}
