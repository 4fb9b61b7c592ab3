package notify

import "context"

// Noop — заглушка для окружений без SMTP-конфигурации.
// Send всегда возвращает ErrNotConfigured: решение «проглотить или 503»
// остаётся за бизнес-логикой.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (*Noop) Send(context.Context, Message) error {
	return ErrNotConfigured
}
