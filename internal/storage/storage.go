// storage определяет контракты доступа к хранилищу для storefront-service.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
)

// ProductStorage описывает операции над сущностью models.Product.
type ProductStorage interface {
	// ListProducts возвращает страницу каталога.
	// Сортировка: published_at DESC, _id DESC (строгий тотальный порядок,
	// элементы не теряются и не дублируются между страницами даже при
	// совпадающих published_at). NextPageToken выставляется только если
	// страница заполнена целиком: последняя «ровно полная» страница стоит
	// одного лишнего пустого запроса — осознанный компромисс.
	// Активный Filter.Query отключает курсор: входной PageToken игнорируется,
	// NextPageToken не выдаётся.
	// При некорректном page_token — ErrInvalidCursor.
	ListProducts(ctx context.Context, opts models.ProductListOptions) (*models.ProductPage, error)

	// ProductByID возвращает товар по идентификатору.
	// Если запись не найдена — ErrNotFound.
	ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// PostStorage описывает операции над сущностью models.Post.
type PostStorage interface {
	// ListPosts возвращает страницу записей блога; семантика пагинации
	// и поиска совпадает с ListProducts.
	ListPosts(ctx context.Context, opts models.PostListOptions) (*models.PostPage, error)

	// PostByID возвращает запись блога по идентификатору.
	// Если запись не найдена — ErrNotFound.
	PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
}

// ReviewStorage описывает операции над сущностью models.Review.
type ReviewStorage interface {
	// CreateReview сохраняет новый отзыв.
	// Входной Review должен содержать ProductID, Rating, Title, Content,
	// Author, Email. Вычисляются хранилищем: ID, Verified(=false), PublishedAt.
	CreateReview(ctx context.Context, review models.Review) (*models.Review, error)

	// VerifiedReviewsByProducts возвращает все подтверждённые отзывы для
	// набора товаров ОДНИМ запросом ($in по product_id) — обязательное
	// свойство производительности, не оптимизация.
	VerifiedReviewsByProducts(ctx context.Context, productIDs []uuid.UUID) ([]models.Review, error)

	// ListVerifiedByProduct возвращает страницу подтверждённых отзывов товара.
	// Сортировка: published_at DESC, _id DESC.
	// При некорректном page_token — ErrInvalidCursor.
	ListVerifiedByProduct(ctx context.Context, productID uuid.UUID, opts models.ListOptions) (*models.ReviewPage, error)
}

// Storage задаёт контракт доступа к хранилищу для storefront-сервиса.
type Storage interface {
	ProductStorage
	PostStorage
	ReviewStorage
	Close(ctx context.Context) error
}
