package metrics

import (
	"net/http"
	"sync"
	"time"
)

type routeStats struct {
	requests    int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics and forwards them to
// OpenTelemetry instruments when Setup enabled them.
type Recorder struct {
	mu            sync.Mutex
	routes        map[string]*routeStats
	activeProfile string
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		routes: make(map[string]*routeStats),
		otel:   otel,
	}
}

// RecordProfileSelected notes which configuration profile the process runs with.
func (r *Recorder) RecordProfileSelected(profile string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.activeProfile = profile
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProfileSelected(profile)
	}
}

// ActiveProfile returns the last profile passed to RecordProfileSelected.
func (r *Recorder) ActiveProfile() string {
	if r == nil {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeProfile
}

// RecordHTTPRequest tracks request counts, server errors and latency per path.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(path)
	stats.requests++
	stats.lastLatency = duration
	if status >= http.StatusInternalServerError {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// Snapshot is a copy of the current stats for one path.
type Snapshot struct {
	Requests    int
	Errors      int
	LastLatency time.Duration
}

// Snapshot returns a copy of the current stats for the path.
func (r *Recorder) Snapshot(path string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.routes[path]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Requests:    stats.requests,
		Errors:      stats.errors,
		LastLatency: stats.lastLatency,
	}
}

// callers hold r.mu.
func (r *Recorder) ensureStats(path string) *routeStats {
	stats, ok := r.routes[path]
	if !ok {
		stats = &routeStats{}
		r.routes[path] = stats
	}
	return stats
}
