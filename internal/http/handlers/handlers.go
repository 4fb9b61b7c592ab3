package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/internal/service"
)

// Storefront — срез сервисного слоя, нужный HTTP-хендлерам.
// Интерфейс объявлен на стороне потребителя, чтобы хендлеры
// тестировались без реального стораджа.
type Storefront interface {
	ListProducts(ctx context.Context, opts models.ProductListOptions) (*models.EnrichedProductPage, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*models.EnrichedProduct, error)
	ListProductReviews(ctx context.Context, productID uuid.UUID, opts models.ListOptions) (*models.ReviewPage, error)
	CreateReview(ctx context.Context, in service.CreateReviewInput) (*models.Review, error)
	ListPosts(ctx context.Context, opts models.PostListOptions) (*models.PostPage, error)
	PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	SubmitContact(ctx context.Context, in service.ContactInput) error
}

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Service Storefront
}

func New(s Storefront) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
