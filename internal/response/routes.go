package response

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{date}", h.GetCheckIn)
	r.Put("/{date}", h.SubmitCheckIn)

	return r
}
