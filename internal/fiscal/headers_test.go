package fiscal

import (
	"encoding/base64"
	"testing"

	"fiscal-gateway/internal/settings"
)

func TestBuildHeaders_TokenWins(t *testing.T) {
	cfg := &settings.FiscalDeviceConfig{
		APIToken:    "tok-123",
		APILogin:    "admin",
		APIPassword: "secret",
	}

	h := BuildHeaders(cfg)

	if got := h.Get("Authorization"); got != "Bearer tok-123" {
		t.Errorf("Expected 'Bearer tok-123', got '%s'", got)
	}
	if len(h.Values("Authorization")) != 1 {
		t.Error("Expected exactly one Authorization header")
	}
	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected JSON content type, got '%s'", got)
	}
}

func TestBuildHeaders_BasicFromLoginPassword(t *testing.T) {
	cfg := &settings.FiscalDeviceConfig{
		APILogin:    "admin",
		APIPassword: "secret",
	}

	h := BuildHeaders(cfg)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
	if got := h.Get("Authorization"); got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}

func TestBuildHeaders_NoCredentials(t *testing.T) {
	h := BuildHeaders(&settings.FiscalDeviceConfig{})

	if got := h.Get("Authorization"); got != "" {
		t.Errorf("Expected no Authorization header, got '%s'", got)
	}
	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("Expected JSON content type, got '%s'", got)
	}
}

func TestBuildHeaders_LoginWithoutPassword(t *testing.T) {
	h := BuildHeaders(&settings.FiscalDeviceConfig{APILogin: "admin"})

	if got := h.Get("Authorization"); got != "" {
		t.Errorf("Expected no Authorization header without a password, got '%s'", got)
	}
}
