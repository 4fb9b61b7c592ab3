// service содержит бизнес-логику storefront-сервиса.
package service

import (
	"errors"

	"github.com/pribylovaa/go-marketplace-storefront/internal/config"
	"github.com/pribylovaa/go-marketplace-storefront/internal/notify"
	"github.com/pribylovaa/go-marketplace-storefront/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrCapabilityUnavailable — операция требует внешней возможности
	// (например, SMTP-кредов), которая не сконфигурирована.
	ErrCapabilityUnavailable = errors.New("capability unavailable")
	// ErrInternal — внутренняя ошибка (сторадж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// ValidationError — ошибка валидации пользовательского ввода с конкретным
// сообщением для клиента. Совместима с errors.Is(err, ErrInvalidArgument).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}

// Service — бизнес-логика storefront-service.
//
// Политика ошибок:
//   - читающие списочные операции fail open: сбой стораджа даёт пустую
//     страницу (и запись в лог), чтобы витрина продолжала рендериться
//     при частичной деградации;
//   - пишущие операции fail closed: ошибка возвращается клиенту явно.
type Service struct {
	storage  storage.Storage
	notifier notify.Notifier
	cfg      config.Config
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, notifier notify.Notifier, cfg config.Config) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
		cfg:      cfg,
	}
}
