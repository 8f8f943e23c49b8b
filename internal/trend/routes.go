package trend

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Trends)
	r.Get("/{questionId}/series", h.Series)

	return r
}
