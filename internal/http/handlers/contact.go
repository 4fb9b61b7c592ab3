package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-marketplace-storefront/internal/errors"
	"github.com/pribylovaa/go-marketplace-storefront/internal/service"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactResponse struct {
	Status string `json:"status"`
}

// SubmitContact — POST /contact.
// 202 — письмо ушло администратору; 503 — SMTP не сконфигурирован.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	err := h.Service.SubmitContact(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, contactResponse{Status: "accepted"})
}
