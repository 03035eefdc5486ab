package delivery

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hSubmit *SubmitHandler) {
	r.Post("/api/submissions", hSubmit.Submit)
}
