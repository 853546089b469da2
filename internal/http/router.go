package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/profile-service/internal/http/handlers"
)

// NewRouter registers HTTP routes. Profile listing is only mounted when the
// active profile has DEVELOPMENT enabled.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := chi.NewRouter()
	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/profile", handler.ActiveProfile)
	if handler.DevelopmentEnabled() {
		r.Get("/profiles", handler.ListProfiles)
		r.Get("/profiles/{name}", handler.ProfileByName)
	}
	return r
}
