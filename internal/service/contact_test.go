package service

// Тесты формы обратной связи (internal/service/contact.go).

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-marketplace-storefront/internal/notify"
	"github.com/stretchr/testify/require"
)

func validContact() ContactInput {
	return ContactInput{
		Name:    "alice",
		Email:   "alice@example.com",
		Subject: "Question about licensing",
		Message: "Can I use the template on two sites?",
	}
}

func TestSubmitContact_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	cases := []ContactInput{
		func() ContactInput { in := validContact(); in.Name = ""; return in }(),
		func() ContactInput { in := validContact(); in.Email = "  "; return in }(),
		func() ContactInput { in := validContact(); in.Message = ""; return in }(),
	}

	for _, in := range cases {
		err := s.SubmitContact(context.Background(), in)
		require.ErrorIs(t, err, ErrInvalidArgument)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, "All fields are required", verr.Message)
	}
}

// Subject опционален: при пустой теме подставляется дефолтная.
func TestSubmitContact_OK(t *testing.T) {
	s, _, mn, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := validContact()
	in.Subject = ""

	mn.EXPECT().
		Send(gomock.Any(), gomock.AssignableToTypeOf(notify.Message{})).
		DoAndReturn(func(_ context.Context, msg notify.Message) error {
			require.Equal(t, []string{"admin@example.com"}, msg.To)
			require.Equal(t, in.Email, msg.ReplyTo)
			require.Equal(t, "Contact form message from alice", msg.Subject)
			require.Contains(t, msg.HTMLBody, "alice@example.com")
			return nil
		})

	require.NoError(t, s.SubmitContact(context.Background(), in))
}

// Нет SMTP — возможность недоступна (503), а не внутренняя ошибка.
func TestSubmitContact_NotConfigured(t *testing.T) {
	s, _, mn, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mn.EXPECT().Send(gomock.Any(), gomock.Any()).Return(notify.ErrNotConfigured)

	err := s.SubmitContact(context.Background(), validContact())
	require.ErrorIs(t, err, ErrCapabilityUnavailable)
}

// Доставка и есть операция: сбой отправки — fail closed.
func TestSubmitContact_SendError(t *testing.T) {
	s, _, mn, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mn.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	err := s.SubmitContact(context.Background(), validContact())
	require.ErrorIs(t, err, ErrInternal)
}
