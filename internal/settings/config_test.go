package settings

import (
	"testing"
	"time"
)

func TestBaseURL_APIURLWins(t *testing.T) {
	cfg := &FiscalDeviceConfig{
		APIURL:    "https://fiscal.example.com/device/",
		IPAddress: "192.168.1.50",
		Port:      5555,
	}

	if got := cfg.BaseURL(); got != "https://fiscal.example.com/device" {
		t.Errorf("Expected api_url to take precedence, got '%s'", got)
	}
}

func TestBaseURL_SynthesizedFromIP(t *testing.T) {
	cfg := &FiscalDeviceConfig{
		IPAddress: "192.168.1.50",
		Port:      5555,
	}

	if got := cfg.BaseURL(); got != "http://192.168.1.50:5555" {
		t.Errorf("Expected synthesized URL, got '%s'", got)
	}
}

func TestBaseURL_IPWithoutPort(t *testing.T) {
	cfg := &FiscalDeviceConfig{IPAddress: "10.0.0.7"}

	if got := cfg.BaseURL(); got != "http://10.0.0.7" {
		t.Errorf("Expected URL without port, got '%s'", got)
	}
}

func TestBaseURL_Empty(t *testing.T) {
	cfg := &FiscalDeviceConfig{}

	if got := cfg.BaseURL(); got != "" {
		t.Errorf("Expected empty base URL, got '%s'", got)
	}
}

func TestTimeouts_Defaults(t *testing.T) {
	cfg := &FiscalDeviceConfig{}

	if cfg.DefaultTimeout() != 10*time.Second {
		t.Errorf("Expected 10s default timeout, got %v", cfg.DefaultTimeout())
	}
	if cfg.PaymentTimeout() != 30*time.Second {
		t.Errorf("Expected 30s payment timeout, got %v", cfg.PaymentTimeout())
	}
}

func TestTimeouts_Configured(t *testing.T) {
	cfg := &FiscalDeviceConfig{
		DefaultTimeoutMs: 2500,
		PaymentTimeoutMs: 45000,
	}

	if cfg.DefaultTimeout() != 2500*time.Millisecond {
		t.Errorf("Expected 2.5s default timeout, got %v", cfg.DefaultTimeout())
	}
	if cfg.PaymentTimeout() != 45*time.Second {
		t.Errorf("Expected 45s payment timeout, got %v", cfg.PaymentTimeout())
	}
}
