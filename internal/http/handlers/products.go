package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	apierrors "github.com/pribylovaa/go-marketplace-storefront/internal/errors"
	"github.com/pribylovaa/go-marketplace-storefront/internal/models"
	"github.com/pribylovaa/go-marketplace-storefront/internal/service"
)

// ListProducts — GET /products.
//
// Query-параметры:
//   - limit, page_token — пагинация;
//   - q — свободный поиск (отключает пагинацию);
//   - category — фильтр по категориям, можно повторять;
//   - min_price, max_price — границы цены в центах.
func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	var opts models.ProductListOptions

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}

		opts.PageSize = int32(n)
	}

	opts.PageToken = r.URL.Query().Get("page_token")
	opts.Filter.Query = r.URL.Query().Get("q")
	opts.Filter.Categories = r.URL.Query()["category"]

	if v := r.URL.Query().Get("min_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}

		opts.Filter.MinPriceCents = &n
	}

	if v := r.URL.Query().Get("max_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}

		opts.Filter.MaxPriceCents = &n
	}

	page, err := h.Service.ListProducts(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, productListFromModel(page))
}

// ProductByID — GET /products/{id}.
// Некорректный UUID неотличим от несуществующего товара: 404.
func (h *Handlers) ProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrNotFound)
		return
	}

	product, err := h.Service.ProductByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, productFromModel(*product))
}

// ListProductReviews — GET /products/{id}/reviews.
func (h *Handlers) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrNotFound)
		return
	}

	var opts models.ListOptions
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}

		opts.PageSize = int32(n)
	}
	opts.PageToken = r.URL.Query().Get("page_token")

	page, err := h.Service.ListProductReviews(r.Context(), id, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewListFromModel(page))
}
