package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-marketplace-storefront/internal/errors"
	"github.com/pribylovaa/go-marketplace-storefront/internal/service"
)

type createReviewRequest struct {
	ProductID string `json:"product_id"`
	Rating    *int32 `json:"rating"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	Email     string `json:"email"`
}

// CreateReview — POST /reviews.
//
// Валидация полей живёт в сервисе и возвращает точные сообщения для
// формы; здесь только разбор JSON. Успех — 201 с сохранённым отзывом
// (verified=false, на витрине он появится после модерации).
func (h *Handlers) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	review, err := h.Service.CreateReview(r.Context(), service.CreateReviewInput{
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Title:     req.Title,
		Text:      req.Text,
		Author:    req.Author,
		Email:     req.Email,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, reviewFromModel(*review))
}
