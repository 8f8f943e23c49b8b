package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eod-app/eod-lambda/internal/config"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service CheckInService
}

func NewHandler(service CheckInService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetCheckIn(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	day, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	view, err := h.service.CheckIn(r.Context(), day)
	if err != nil {
		log.WithError(err).Error("Failed to load check-in")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) SubmitCheckIn(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	day, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	var dto SubmitCheckInDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(dto.Responses) == 0 {
		http.Error(w, "responses required", http.StatusBadRequest)
		return
	}

	saved, err := h.service.Submit(r.Context(), day, dto.Responses)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuestionNotFound):
			http.Error(w, "question not found", http.StatusNotFound)
		case errors.Is(err, ErrTypeMismatch), errors.Is(err, ErrMissingValue):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to save check-in")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"date":      day,
		"responses": saved,
	})
}

func parseDateParam(w http.ResponseWriter, r *http.Request) (util.Day, bool) {
	dateStr := chi.URLParam(r, "date")
	if dateStr == "today" || dateStr == "" {
		return util.Today(), true
	}
	day, err := util.ParseDay(dateStr)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return "", false
	}
	return day, true
}
