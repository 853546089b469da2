package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledExportsProfileAndRequestMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil || handler == nil || shutdown == nil {
		t.Fatalf("expected recorder, handler and shutdown")
	}
	defer func() { _ = shutdown(context.Background()) }()

	rec.RecordProfileSelected("development")
	rec.RecordHTTPRequest(http.MethodGet, "/profile", http.StatusOK, time.Millisecond)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rr.Body.String()
	if !strings.Contains(body, "config_profile_selections_total") {
		t.Fatalf("expected profile selection counter in scrape, got %s", body)
	}
	if !strings.Contains(body, `profile="development"`) {
		t.Fatalf("expected profile label in scrape, got %s", body)
	}
	if !strings.Contains(body, "http_requests_total") {
		t.Fatalf("expected request counter in scrape, got %s", body)
	}
	if rec.Snapshot("/profile").Requests != 1 {
		t.Fatalf("expected in-memory stats alongside otel")
	}
}

func TestSetupPropagatesPrometheusError(t *testing.T) {
	original := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failure")
	}
	defer func() { promReaderFactory = original }()

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil {
		t.Fatalf("expected prometheus setup error")
	}
}

func TestSetupPropagatesOTLPError(t *testing.T) {
	original := otlpReaderFactory
	otlpReaderFactory = func(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
		return nil, errors.New("otlp failure")
	}
	defer func() { otlpReaderFactory = original }()

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "collector:4318"})
	if err == nil {
		t.Fatalf("expected otlp setup error")
	}
}
