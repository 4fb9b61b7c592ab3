package mongo

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-marketplace-storefront/internal/config"
)

// encodeCursor кодирует пару (published_at, id) в непрозрачный токен для клиента.
// id — строковый идентификатор последнего элемента страницы (uuid для
// каталога/блога, hex ObjectID для отзывов).
func encodeCursor(t time.Time, id string) string {
	raw := fmt.Sprintf("%d|%s", t.UTC().UnixNano(), id)

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor декодирует токен обратно в пару ключей.
func decodeCursor(token string) (time.Time, string, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, "", err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("bad parts")
	}

	nanos, err := parseInt64(parts[0])
	if err != nil {
		return time.Time{}, "", err
	}

	return time.Unix(0, nanos).UTC(), parts[1], nil
}

// parseInt64 — локальная маленькая обёртка без импорта strconv везде.
func parseInt64(s string) (int64, error) {
	var x int64
	_, err := fmt.Sscan(s, &x)

	return x, err
}

// limitOrDefault приводит запрошенный размер страницы к [Default, Max].
func limitOrDefault(cfg *config.Config, pageSize int32) int64 {
	lim := pageSize
	if lim <= 0 {
		lim = cfg.Limits.Default
	}

	if lim > cfg.Limits.Max {
		lim = cfg.Limits.Max
	}

	return int64(lim)
}
