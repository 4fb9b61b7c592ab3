package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// postDoc — схема документа блога. _id — строковое представление UUID.
type postDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Slug        string    `bson:"slug"`
	Excerpt     string    `bson:"excerpt"`
	Author      string    `bson:"author"`
	Content     string    `bson:"content"`
	PublishedAt time.Time `bson:"published_at"`
}

func (d postDoc) toModel() (models.Post, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.Post{}, fmt.Errorf("bad post _id %q: %w", d.ID, err)
	}

	return models.Post{
		ID:          id,
		Title:       d.Title,
		Slug:        d.Slug,
		Excerpt:     d.Excerpt,
		Author:      d.Author,
		Content:     d.Content,
		PublishedAt: d.PublishedAt.UTC(),
	}, nil
}

// ListPosts возвращает страницу записей блога.
// Семантика пагинации и текстового поиска совпадает с ListProducts:
// DESC/DESC-сортировка, keyset-курсор, поиск — только первая страница.
func (m *Mongo) ListPosts(ctx context.Context, opts models.PostListOptions) (*models.PostPage, error) {
	const op = "storage/mongo/ListPosts"

	limit := limitOrDefault(m.cfg, opts.PageSize)
	searching := strings.TrimSpace(opts.Filter.Query) != ""

	filter := bson.D{}
	if searching {
		re := prefixRegex(strings.TrimSpace(opts.Filter.Query))
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "excerpt", Value: re}},
			bson.D{{Key: "author", Value: re}},
		}})
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

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

	cur, err := m.posts.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Post
	for cur.Next(ctx) {
		var doc postDoc
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

	return &models.PostPage{
		Items:         items,
		NextPageToken: next,
	}, nil
}

// PostByID возвращает запись блога по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	const op = "storage/mongo/PostByID"

	var doc postDoc
	if err := m.posts.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
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
