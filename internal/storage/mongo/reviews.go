package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// reviewDoc — схема документа отзыва.
// _id — ObjectID MongoDB; product_id — строковое представление UUID товара.
type reviewDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductID   string             `bson:"product_id"`
	Rating      int32              `bson:"rating"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	Author      string             `bson:"author"`
	Email       string             `bson:"email"`
	Verified    bool               `bson:"verified"`
	PublishedAt time.Time          `bson:"published_at"`
}

func (d reviewDoc) toModel() (models.Review, error) {
	pid, err := uuid.Parse(d.ProductID)
	if err != nil {
		return models.Review{}, fmt.Errorf("bad review product_id %q: %w", d.ProductID, err)
	}

	return models.Review{
		ID:          d.ID.Hex(),
		ProductID:   pid,
		Rating:      d.Rating,
		Title:       d.Title,
		Content:     d.Content,
		Author:      d.Author,
		Email:       d.Email,
		Verified:    d.Verified,
		PublishedAt: d.PublishedAt.UTC(),
	}, nil
}

// CreateReview сохраняет новый отзыв.
// Хранилище выставляет ID, Verified=false (модерация отдельно) и PublishedAt.
func (m *Mongo) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	const op = "storage/mongo/CreateReview"

	// MongoDB DateTime хранит миллисекунды.
	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := reviewDoc{
		ProductID:   review.ProductID.String(),
		Rating:      review.Rating,
		Title:       review.Title,
		Content:     review.Content,
		Author:      review.Author,
		Email:       review.Email,
		Verified:    false,
		PublishedAt: now,
	}

	res, err := m.reviews.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	review.ID = oid.Hex()
	review.Verified = false
	review.PublishedAt = now

	return &review, nil
}

// VerifiedReviewsByProducts возвращает все подтверждённые отзывы для набора
// товаров одним запросом ($in по product_id). Порядок не гарантируется —
// группировку выполняет вызывающая сторона.
func (m *Mongo) VerifiedReviewsByProducts(ctx context.Context, productIDs []uuid.UUID) ([]models.Review, error) {
	const op = "storage/mongo/VerifiedReviewsByProducts"

	if len(productIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		ids = append(ids, id.String())
	}

	filter := bson.D{
		{Key: "product_id", Value: bson.D{{Key: "$in", Value: ids}}},
		{Key: "verified", Value: true},
	}

	cur, err := m.reviews.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Review
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		r, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, r)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// ListVerifiedByProduct возвращает страницу подтверждённых отзывов товара.
// Сортировка: published_at DESC, _id DESC.
// При некорректном page_token — storage.ErrInvalidCursor.
func (m *Mongo) ListVerifiedByProduct(ctx context.Context, productID uuid.UUID, opts models.ListOptions) (*models.ReviewPage, error) {
	const op = "storage/mongo/ListVerifiedByProduct"

	limit := limitOrDefault(m.cfg, opts.PageSize)

	filter := bson.D{
		{Key: "product_id", Value: productID.String()},
		{Key: "verified", Value: true},
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	// Курсор "меньше" для DESC-сортировки; tie-break — ObjectID.
	if strings.TrimSpace(opts.PageToken) != "" {
		t, id, decErr := decodeCursor(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		oid, oidErr := primitive.ObjectIDFromHex(id)
		if oidErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "published_at", Value: bson.D{{Key: "$lt", Value: t}}}},
			bson.D{
				{Key: "published_at", Value: t},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: oid}}},
			},
		}})
	}

	cur, err := m.reviews.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Review
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		r, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, r)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	var next string
	if int64(len(items)) == limit {
		last := items[len(items)-1]
		next = encodeCursor(last.PublishedAt, last.ID)
	}

	return &models.ReviewPage{
		Items:         items,
		NextPageToken: next,
	}, nil
}
