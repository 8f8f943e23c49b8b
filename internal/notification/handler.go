package notification

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eod-app/eod-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetTime(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	value, err := h.service.Time(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to read notification time")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, NotificationTimeDTO{Time: value})
}

func (h *Handler) SetTime(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto NotificationTimeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SetTime(r.Context(), dto.Time); err != nil {
		if errors.Is(err, ErrInvalidTime) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to set notification time")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, dto)
}
