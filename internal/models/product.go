// models содержит доменные сущности storefront-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Product — доменная сущность товара витрины.
//
// Особенности:
//   - ID — UUIDv4 (в MongoDB хранится строковое представление в _id);
//   - PriceCents — цена в центах, без плавающей точки;
//   - PublishedAt — в UTC; вместе с ID образует строгий тотальный порядок
//     для keyset-пагинации (published_at DESC, _id DESC).
type Product struct {
	// ID — уникальный идентификатор товара.
	ID uuid.UUID
	// Title — название товара.
	Title string
	// Slug — человекочитаемый идентификатор для URL.
	Slug string
	// Category — категория витрины (одна из фиксированного набора).
	Category string
	// TechStack — теги технологий, участвуют в текстовом поиске.
	TechStack []string
	// Description — описание товара.
	Description string
	// PriceCents — цена в центах (включительные границы фильтра min/max).
	PriceCents int64
	// PublishedAt — время публикации (UTC).
	PublishedAt time.Time
}

// RatingSummary — агрегат оценок товара.
// Производное значение: считается на каждый запрос и никогда не хранится.
type RatingSummary struct {
	// AvgRating — средняя оценка, округлённая до одного знака
	// (half away from zero); nil — подтверждённых оценок нет.
	AvgRating *float64
	// ReviewCount — количество подтверждённых отзывов.
	ReviewCount int32
}

// EnrichedProduct — товар, дополненный агрегатом оценок.
type EnrichedProduct struct {
	Product
	Rating RatingSummary
}

// ProductFilter — необязательные предикаты выборки каталога.
//
// Особенности:
//   - Query — префиксный текстовый поиск по фиксированному набору полей
//     (title/category/tech_stack); активный Query отключает курсорную
//     пагинацию — выдаётся только первая страница;
//   - Categories — OR-набор категорий;
//   - MinPriceCents/MaxPriceCents — включительные границы.
type ProductFilter struct {
	Query         string
	Categories    []string
	MinPriceCents *int64
	MaxPriceCents *int64
}

// IsZero сообщает, что ни один предикат не задан.
func (f ProductFilter) IsZero() bool {
	return f.Query == "" && len(f.Categories) == 0 && f.MinPriceCents == nil && f.MaxPriceCents == nil
}

// ProductListOptions — параметры выборки каталога.
type ProductListOptions struct {
	ListOptions
	Filter ProductFilter
}

// ProductPage — страница каталога.
type ProductPage struct {
	Items         []Product
	NextPageToken string
}

// EnrichedProductPage — страница каталога с агрегатами оценок.
type EnrichedProductPage struct {
	Items         []EnrichedProduct
	NextPageToken string
}
