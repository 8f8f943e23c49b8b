package entitlement

import (
	"net/http"

	"github.com/eod-app/eod-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	status, err := h.service.Status(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to read entitlement status")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, status)
}
