package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/profile-service/internal/config"
)

// ReadyFunc reports whether downstream dependencies can serve traffic.
type ReadyFunc func(ctx context.Context) error

// Handler serves health probes and the resolved configuration profiles.
type Handler struct {
	registry *config.Registry
	active   config.Profile
	logger   *slog.Logger
	readyFn  ReadyFunc
}

// NewHandler constructs a Handler. readyFn may be nil when nothing gates readiness.
func NewHandler(registry *config.Registry, active config.Profile, logger *slog.Logger, readyFn ReadyFunc) *Handler {
	return &Handler{
		registry: registry,
		active:   active,
		logger:   logger,
		readyFn:  readyFn,
	}
}

// ProfileResponse is the wire form of a profile. DB_PASS is always masked.
type ProfileResponse struct {
	Name          string          `json:"name"`
	Settings      config.Settings `json:"settings"`
	DBPassDefault bool            `json:"dbPassDefault"`
}

func newProfileResponse(p config.Profile) ProfileResponse {
	return ProfileResponse{
		Name:          p.Name.String(),
		Settings:      p.Masked(),
		DBPassDefault: p.UsesDefaultDBPass(),
	}
}

// DevelopmentEnabled reports whether development-only routes should be mounted.
func (h *Handler) DevelopmentEnabled() bool {
	return h.active.Development
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.readyFn != nil {
		if err := h.readyFn(r.Context()); err != nil {
			loggerFromContext(r, h.logger).Warn("readiness check failed", "error", err)
			writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// ActiveProfile returns the profile this process was started with.
func (h *Handler) ActiveProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newProfileResponse(h.active), h.logger)
}

// ListProfiles returns every defined profile.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := h.registry.Profiles()
	resp := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		resp = append(resp, newProfileResponse(p))
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// ProfileByName returns one profile; unknown names are a 404.
func (h *Handler) ProfileByName(w http.ResponseWriter, r *http.Request) {
	p, err := h.registry.Lookup(chi.URLParam(r, "name"))
	if errors.Is(err, config.ErrUnknownProfile) {
		writeError(w, r, http.StatusNotFound, err.Error(), h.logger)
		return
	}
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "profile lookup failed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newProfileResponse(p), h.logger)
}
