package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"fiscal-gateway/internal/auth"
	_ "fiscal-gateway/internal/drivers/custom"
	"fiscal-gateway/internal/fiscal"
	"fiscal-gateway/internal/gateway"
	"fiscal-gateway/internal/settings"

	goeen_log "github.com/eencloud/goeen/log"
)

func testLogger() *goeen_log.Logger {
	return goeen_log.NewContext(os.Stdout, "", goeen_log.LevelInfo).GetLogger("api-test", goeen_log.LevelInfo)
}

type fakeStore struct {
	cfg *settings.FiscalDeviceConfig
	err error
}

func (s *fakeStore) GetByLocation(ctx context.Context, locationID string) (*settings.FiscalDeviceConfig, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cfg, nil
}

func newTestServer(store settings.Store) *Server {
	logger := testLogger()
	dispatcher := gateway.NewDispatcher(logger, store)
	verifier := auth.NewTokenVerifier(map[string]string{"pos-token": "loc-1"}, logger)
	return NewServer(":0", logger, dispatcher, verifier)
}

func postFiscal(s *Server, token string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/fiscal", bytes.NewBufferString(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	return rec
}

func TestFiscalHandler_MissingTokenIs401(t *testing.T) {
	s := newTestServer(&fakeStore{})

	rec := postFiscal(s, "", `{"action":"test_connection","location_id":"loc-1"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Error == "" {
		t.Errorf("Expected an error body, got '%s'", rec.Body.String())
	}
}

func TestFiscalHandler_MissingSettingsRowIs404(t *testing.T) {
	s := newTestServer(&fakeStore{err: settings.ErrNotFound})

	rec := postFiscal(s, "pos-token", `{"action":"test_connection","location_id":"loc-1"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestFiscalHandler_DisabledDeviceIs400(t *testing.T) {
	cfg := &settings.FiscalDeviceConfig{
		LocationID: "loc-1",
		Enabled:    false,
		DriverID:   "custom",
		APIURL:     "http://device.local",
	}
	s := newTestServer(&fakeStore{cfg: cfg})

	rec := postFiscal(s, "pos-token", `{"action":"open_drawer","location_id":"loc-1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for disabled device, got %d", rec.Code)
	}
}

func TestFiscalHandler_CompletedFailedAttemptIs200(t *testing.T) {
	// The generic driver reports an unreachable device as a completed attempt
	// with success=false, which the HTTP layer returns as 200.
	cfg := &settings.FiscalDeviceConfig{
		LocationID:       "loc-1",
		Enabled:          true,
		DriverID:         "custom",
		APIURL:           "http://127.0.0.1:1",
		DefaultTimeoutMs: 500,
	}
	s := newTestServer(&fakeStore{cfg: cfg})

	rec := postFiscal(s, "pos-token", `{"action":"test_connection","location_id":"loc-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for a completed attempt, got %d", rec.Code)
	}

	var res fiscal.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if res.Success {
		t.Error("Expected success=false for unreachable device")
	}
}

func TestFiscalHandler_SuccessfulDispatch(t *testing.T) {
	device := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/status" {
			w.Write([]byte(`{"alive":true}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer device.Close()

	cfg := &settings.FiscalDeviceConfig{
		LocationID: "loc-1",
		Enabled:    true,
		DriverID:   "custom",
		APIURL:     device.URL,
	}
	s := newTestServer(&fakeStore{cfg: cfg})

	rec := postFiscal(s, "pos-token", `{"action":"test_connection"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var res fiscal.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("Failed to decode result: %v", err)
	}
	if !res.Success {
		t.Errorf("Expected success, got: %s", res.Message)
	}
}

func TestFiscalHandler_InvalidJSONIs400(t *testing.T) {
	s := newTestServer(&fakeStore{})

	rec := postFiscal(s, "pos-token", `{"action":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestFiscalHandler_GetMethodRejected(t *testing.T) {
	s := newTestServer(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/fiscal", nil)
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode health body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body["status"])
	}
}
