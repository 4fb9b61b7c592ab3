package handlers

// HTTP-тесты хендлеров: мок сервисного слоя + httptest.
// Маршруты поднимаем через chi, чтобы работали URL-параметры.

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/internal/service"
	"github.com/pribylovaa/go-marketplace-storefront/mocks/storefront"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (chi.Router, *mocks.MockStorefront, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStorefront(ctrl)
	h := New(svc)

	r := chi.NewRouter()
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.ProductByID)
	r.Get("/products/{id}/reviews", h.ListProductReviews)
	r.Post("/reviews", h.CreateReview)
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{id}", h.PostByID)
	r.Post("/contact", h.SubmitContact)

	return r, svc, ctrl
}

func enriched(title string, avg *float64, count int32) models.EnrichedProduct {
	return models.EnrichedProduct{
		Product: models.Product{
			ID:          uuid.New(),
			Title:       title,
			Slug:        title,
			Category:    "templates",
			PriceCents:  4900,
			PublishedAt: time.Now().UTC(),
		},
		Rating: models.RatingSummary{AvgRating: avg, ReviewCount: count},
	}
}

func TestListProducts_ParsesQuery(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	avg := 4.5
	svc.EXPECT().
		ListProducts(gomock.Any(), gomock.AssignableToTypeOf(models.ProductListOptions{})).
		DoAndReturn(func(_ any, opts models.ProductListOptions) (*models.EnrichedProductPage, error) {
			require.EqualValues(t, 5, opts.PageSize)
			require.Equal(t, "tok", opts.PageToken)
			require.Equal(t, "react", opts.Filter.Query)
			require.Equal(t, []string{"templates", "plugins"}, opts.Filter.Categories)
			require.NotNil(t, opts.Filter.MinPriceCents)
			require.EqualValues(t, 1000, *opts.Filter.MinPriceCents)
			require.Nil(t, opts.Filter.MaxPriceCents)
			return &models.EnrichedProductPage{
				Items:         []models.EnrichedProduct{enriched("alpha", &avg, 2)},
				NextPageToken: "next",
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/products?limit=5&page_token=tok&q=react&category=templates&category=plugins&min_price=1000", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Items []struct {
			Title       string   `json:"title"`
			AvgRating   *float64 `json:"avg_rating"`
			ReviewCount int32    `json:"review_count"`
		} `json:"items"`
		NextPageToken string `json:"next_page_token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.Equal(t, "alpha", resp.Items[0].Title)
	require.NotNil(t, resp.Items[0].AvgRating)
	require.InDelta(t, 4.5, *resp.Items[0].AvgRating, 1e-9)
	require.Equal(t, "next", resp.NextPageToken)
}

func TestListProducts_BadLimit(t *testing.T) {
	r, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/products?limit=abc", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

// Товар без оценок сериализуется с avg_rating: null, не 0.
func TestProductByID_NoRatingIsNull(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	p := enriched("alpha", nil, 0)
	svc.EXPECT().ProductByID(gomock.Any(), p.ID).Return(&p, nil)

	req := httptest.NewRequest(http.MethodGet, "/products/"+p.ID.String(), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `"avg_rating":null`)
}

func TestProductByID_BadUUID(t *testing.T) {
	r, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProductByID_NotFound(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	svc.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(nil, service.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListProductReviews_OK(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	productID := uuid.New()
	svc.EXPECT().
		ListProductReviews(gomock.Any(), productID, models.ListOptions{PageSize: 10, PageToken: "tok"}).
		Return(&models.ReviewPage{
			Items: []models.Review{{
				ID:        "507f1f77bcf86cd799439011",
				ProductID: productID,
				Rating:    5,
				Title:     "Great",
				Content:   "Solid work, well documented.",
				Author:    "alice",
				Email:     "alice@example.com",
				Verified:  true,
			}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/products/"+productID.String()+"/reviews?limit=10&page_token=tok", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	// Email автора не должен утекать наружу.
	require.NotContains(t, rr.Body.String(), "alice@example.com")
	require.Contains(t, rr.Body.String(), `"rating":5`)
}

func TestCreateReview_Created(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	productID := uuid.New()
	svc.EXPECT().
		CreateReview(gomock.Any(), gomock.AssignableToTypeOf(service.CreateReviewInput{})).
		DoAndReturn(func(_ any, in service.CreateReviewInput) (*models.Review, error) {
			require.Equal(t, productID.String(), in.ProductID)
			require.NotNil(t, in.Rating)
			require.EqualValues(t, 5, *in.Rating)
			return &models.Review{
				ID:        "507f1f77bcf86cd799439011",
				ProductID: productID,
				Rating:    5,
				Title:     in.Title,
				Content:   in.Text,
				Author:    in.Author,
			}, nil
		})

	body := `{"product_id":"` + productID.String() + `","rating":5,"title":"Great theme","text":"Clean code, easy to use.","author":"alice","email":"alice@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Contains(t, rr.Body.String(), `"verified":false`)
}

// Сообщение валидации доходит до клиента дословно.
func TestCreateReview_ValidationMessage(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	svc.EXPECT().
		CreateReview(gomock.Any(), gomock.Any()).
		Return(nil, &service.ValidationError{Message: "Rating must be a whole number between 1 and 5"})

	body := `{"product_id":"` + uuid.NewString() + `","rating":6,"title":"Great","text":"Long enough text.","author":"a","email":"a@b.c"}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "Rating must be a whole number between 1 and 5")
}

func TestCreateReview_MalformedJSON(t *testing.T) {
	r, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"product_id":`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateReview_UnknownField(t *testing.T) {
	r, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"unexpected":1}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListPosts_OK(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	svc.EXPECT().
		ListPosts(gomock.Any(), gomock.Any()).
		Return(&models.PostPage{
			Items: []models.Post{{
				ID:     uuid.New(),
				Title:  "Launch notes",
				Author: "alice",
			}},
			NextPageToken: "next",
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Launch notes")
}

func TestPostByID_NotFound(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	svc.EXPECT().PostByID(gomock.Any(), gomock.Any()).Return(nil, service.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/posts/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSubmitContact_Accepted(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	svc.EXPECT().
		SubmitContact(gomock.Any(), service.ContactInput{
			Name:    "alice",
			Email:   "alice@example.com",
			Subject: "Hello",
			Message: "A question about your templates.",
		}).
		Return(nil)

	body := `{"name":"alice","email":"alice@example.com","subject":"Hello","message":"A question about your templates."}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)
	require.Contains(t, rr.Body.String(), `"status":"accepted"`)
}

// SMTP выключен: форма контакта отвечает 503, а не 500.
func TestSubmitContact_Unavailable(t *testing.T) {
	r, svc, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	svc.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).Return(service.ErrCapabilityUnavailable)

	body := `{"name":"alice","email":"alice@example.com","message":"hi there"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
