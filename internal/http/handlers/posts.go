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

// ListPosts — GET /posts.
// Параметры: limit, page_token, q (поиск, отключает пагинацию).
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	var opts models.PostListOptions

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

	page, err := h.Service.ListPosts(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postListFromModel(page))
}

// PostByID — GET /posts/{id}.
func (h *Handlers) PostByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrNotFound)
		return
	}

	post, err := h.Service.PostByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postFromModel(*post))
}
