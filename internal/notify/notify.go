// notify определяет контракт сервиса уведомлений (email) и его реализации.
//
// Доставка — best effort: ошибка возвращается значением и никогда не должна
// ронять первичную операцию вызывающей стороны (persist-then-notify).
package notify

import (
	"context"
	"errors"
)

// ErrNotConfigured — отправка почты не сконфигурирована (нет SMTP-кредов).
// Вызывающая сторона решает, критично это (форма контакта -> 503) или
// нет (админ-алерт об отзыве -> лог).
var ErrNotConfigured = errors.New("notifier not configured")

// Message — структурированное письмо.
type Message struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
}

// Notifier отправляет письмо. Реализация обязана уважать контекст
// (таймаут/отмена транслируются в ошибку отправки).
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
