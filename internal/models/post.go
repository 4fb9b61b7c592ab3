package models

import (
	"time"

	"github.com/google/uuid"
)

// Post — доменная сущность записи блога.
//
// Особенности:
//   - ID — UUIDv4 (в MongoDB — строковое представление в _id);
//   - PublishedAt — в UTC; (published_at, _id) — ключ keyset-пагинации.
type Post struct {
	// ID — уникальный идентификатор записи.
	ID uuid.UUID
	// Title — заголовок.
	Title string
	// Slug — человекочитаемый идентификатор для URL.
	Slug string
	// Excerpt — тизер записи.
	Excerpt string
	// Author — имя автора.
	Author string
	// Content — полный текст записи.
	Content string
	// PublishedAt — время публикации (UTC).
	PublishedAt time.Time
}

// PostFilter — необязательные предикаты выборки блога.
// Семантика Query совпадает с каталогом: префиксный поиск, без пагинации.
type PostFilter struct {
	Query string
}

// PostListOptions — параметры выборки блога.
type PostListOptions struct {
	ListOptions
	Filter PostFilter
}

// PostPage — страница записей блога.
type PostPage struct {
	Items         []Post
	NextPageToken string
}
