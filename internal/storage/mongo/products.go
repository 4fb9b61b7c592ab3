package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// productDoc — схема документа каталога.
// _id — строковое представление UUID товара: строки UUID одинаковой длины,
// их лексикографический порядок тотален — годится как tie-break курсора.
type productDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Slug        string    `bson:"slug"`
	Category    string    `bson:"category"`
	TechStack   []string  `bson:"tech_stack,omitempty"`
	Description string    `bson:"description"`
	PriceCents  int64     `bson:"price_cents"`
	PublishedAt time.Time `bson:"published_at"`
}

func (d productDoc) toModel() (models.Product, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.Product{}, fmt.Errorf("bad product _id %q: %w", d.ID, err)
	}

	return models.Product{
		ID:          id,
		Title:       d.Title,
		Slug:        d.Slug,
		Category:    d.Category,
		TechStack:   d.TechStack,
		Description: d.Description,
		PriceCents:  d.PriceCents,
		PublishedAt: d.PublishedAt.UTC(),
	}, nil
}

// prefixRegex собирает безопасный префиксный предикат: пользовательский ввод
// экранируется QuoteMeta и попадает в запрос только как bound-значение.
func prefixRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(term), Options: "i"}
}

// productFilter транслирует models.ProductFilter в BSON-предикаты.
// Все значения фильтров — bound BSON values, никакой конкатенации строк запроса.
func productFilter(f models.ProductFilter) bson.D {
	filter := bson.D{}

	if q := strings.TrimSpace(f.Query); q != "" {
		re := prefixRegex(q)
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "category", Value: re}},
			bson.D{{Key: "tech_stack", Value: re}},
		}})
	}

	if len(f.Categories) > 0 {
		filter = append(filter, bson.E{Key: "category", Value: bson.D{{Key: "$in", Value: f.Categories}}})
	}

	price := bson.D{}
	if f.MinPriceCents != nil {
		price = append(price, bson.E{Key: "$gte", Value: *f.MinPriceCents})
	}
	if f.MaxPriceCents != nil {
		price = append(price, bson.E{Key: "$lte", Value: *f.MaxPriceCents})
	}
	if len(price) > 0 {
		filter = append(filter, bson.E{Key: "price_cents", Value: price})
	}

	return filter
}

// cursorPredicate — предикат keyset-пагинации для DESC-сортировки:
// published_at < t OR (published_at == t AND _id < id).
func cursorPredicate(t time.Time, id string) bson.E {
	return bson.E{Key: "$or", Value: bson.A{
		bson.D{{Key: "published_at", Value: bson.D{{Key: "$lt", Value: t}}}},
		bson.D{
			{Key: "published_at", Value: t},
			{Key: "_id", Value: bson.D{{Key: "$lt", Value: id}}},
		},
	}}
}

// ListProducts возвращает страницу каталога.
// Сортировка: published_at DESC, _id DESC.
// Активный текстовый поиск отключает курсор (и вход, и выход): поисковая
// выдача ограничена первой страницей — зафиксированное поведение витрины.
// NextPageToken выдаётся только при полностью заполненной странице.
// При некорректном page_token — storage.ErrInvalidCursor.
func (m *Mongo) ListProducts(ctx context.Context, opts models.ProductListOptions) (*models.ProductPage, error) {
	const op = "storage/mongo/ListProducts"

	limit := limitOrDefault(m.cfg, opts.PageSize)
	searching := strings.TrimSpace(opts.Filter.Query) != ""

	filter := productFilter(opts.Filter)

	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	// Курсор "меньше" для DESC-сортировки; при активном поиске игнорируется.
	if !searching && strings.TrimSpace(opts.PageToken) != "" {
		t, id, decErr := decodeCursor(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		if _, err := uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, cursorPredicate(t, id))
	}

	cur, err := m.products.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Product
	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		p, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, p)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	var next string
	if !searching && int64(len(items)) == limit {
		last := items[len(items)-1]
		next = encodeCursor(last.PublishedAt, last.ID.String())
	}

	return &models.ProductPage{
		Items:         items,
		NextPageToken: next,
	}, nil
}

// ProductByID возвращает товар по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	const op = "storage/mongo/ProductByID"

	var doc productDoc
	if err := m.products.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &p, nil
}
