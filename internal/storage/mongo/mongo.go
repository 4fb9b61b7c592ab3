package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/go-marketplace-storefront/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	productsCollection = "products"
	postsCollection    = "posts"
	reviewsCollection  = "reviews"
	defaultDBName      = "storefront"
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	cfg      *config.Config
	client   *mongodriver.Client
	db       *mongodriver.Database
	products *mongodriver.Collection
	posts    *mongodriver.Collection
	reviews  *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции
// и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	dbName := databaseFromURI(cfg.DB.URL)
	db := cli.Database(dbName)

	m := &Mongo{
		cfg:      cfg,
		client:   cli,
		db:       db,
		products: db.Collection(productsCollection),
		posts:    db.Collection(postsCollection),
		reviews:  db.Collection(reviewsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые витрине.
// - Каталог: листинг (published_at desc, _id desc) + фильтры по категории/цене.
// - Блог: листинг (published_at desc, _id desc).
// - Отзывы: батч-выборка агрегатов и постраничная выдача по товару.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	productModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("published_desc"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "published_at", Value: -1}},
			Options: options.Index().SetName("category_published_desc"),
		},
		{
			Keys:    bson.D{{Key: "price_cents", Value: 1}},
			Options: options.Index().SetName("price"),
		},
	}

	if _, err := m.products.Indexes().CreateMany(ctx, productModels); err != nil {
		return fmt.Errorf("mongo ensure product indexes: %w", err)
	}

	postModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("published_desc"),
		},
	}

	if _, err := m.posts.Indexes().CreateMany(ctx, postModels); err != nil {
		return fmt.Errorf("mongo ensure post indexes: %w", err)
	}

	reviewModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "product_id", Value: 1}, {Key: "verified", Value: 1}, {Key: "published_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("product_verified_published_desc"),
		},
	}

	if _, err := m.reviews.Indexes().CreateMany(ctx, reviewModels); err != nil {
		return fmt.Errorf("mongo ensure review indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся разбору, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
