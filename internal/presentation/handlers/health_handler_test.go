package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) HealthCheck(ctx context.Context) error {
	return s.err
}

func TestHealthHandler_Health(t *testing.T) {
	handler := NewHealthHandler(&stubChecker{}, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("expected healthy status, got %s", resp.Status)
	}
	if resp.Services["solscan"] != "healthy" {
		t.Errorf("unexpected solscan status: %s", resp.Services["solscan"])
	}
	if _, ok := resp.Services["cache"]; ok {
		t.Error("expected no cache entry when cache is disabled")
	}
}

func TestHealthHandler_Health_UpstreamDown(t *testing.T) {
	handler := NewHealthHandler(&stubChecker{err: errors.New("connection refused")}, &stubChecker{})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "unhealthy" {
		t.Errorf("expected unhealthy status, got %s", resp.Status)
	}
}

func TestHealthHandler_Health_CacheDownDegrades(t *testing.T) {
	handler := NewHealthHandler(&stubChecker{}, &stubChecker{err: errors.New("redis unreachable")})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Health(rec, req)

	// Cache loss degrades the service but does not take it down
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("expected degraded status, got %s", resp.Status)
	}
}

func TestHealthHandler_Ready(t *testing.T) {
	handler := NewHealthHandler(&stubChecker{}, nil)

	req := httptest.NewRequest("GET", "/ready", nil)
	rec := httptest.NewRecorder()
	handler.Ready(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Ready_NotReady(t *testing.T) {
	handler := NewHealthHandler(&stubChecker{err: errors.New("connection refused")}, nil)

	req := httptest.NewRequest("GET", "/ready", nil)
	rec := httptest.NewRecorder()
	handler.Ready(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rec.Code)
	}
}

func TestHealthHandler_Live(t *testing.T) {
	handler := NewHealthHandler(&stubChecker{err: errors.New("ignored")}, nil)

	req := httptest.NewRequest("GET", "/live", nil)
	rec := httptest.NewRecorder()
	handler.Live(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "alive" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}
