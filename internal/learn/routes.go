package learn

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/learn", h.Learn)
	r.Get("/tasks", h.ListTasks)
	return r
}
