package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/notification-time", h.GetTime)
	r.Put("/notification-time", h.SetTime)

	return r
}
