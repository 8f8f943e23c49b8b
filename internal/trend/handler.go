package trend

import (
	"net/http"
	"strconv"

	"github.com/eod-app/eod-lambda/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	trends, err := h.service.Trends(r.Context(), daysParam(r))
	if err != nil {
		log.WithError(err).Error("Failed to compute trends")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, trends)
}

func (h *Handler) Series(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	idStr := chi.URLParam(r, "questionId")
	questionID, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	series, err := h.service.SeriesFor(r.Context(), questionID, daysParam(r))
	if err != nil {
		log.WithError(err).Error("Failed to compute series")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, series)
}

func daysParam(r *http.Request) int {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil {
		return DefaultWindowDays
	}
	return days
}
