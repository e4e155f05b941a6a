package settings

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
	paymentTimeout = 30 * time.Second
)

// FiscalDeviceConfig is one location's fiscal device row. The gateway only
// ever reads it; it is re-fetched on every call because a location's device
// can be reconfigured between calls.
type FiscalDeviceConfig struct {
	LocationID string `json:"location_id"`
	Enabled    bool   `json:"enabled"`
	DriverID   string `json:"driver_id"`

	APIURL    string `json:"api_url,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	Port      int    `json:"port,omitempty"`

	APIToken    string `json:"api_token,omitempty"`
	APILogin    string `json:"api_login,omitempty"`
	APIPassword string `json:"api_password,omitempty"`
	KKMPassword string `json:"kkm_password,omitempty"`

	DeviceID     string `json:"device_id,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	TerminalID   string `json:"terminal_id,omitempty"`

	INN            string `json:"inn,omitempty"`
	OperatorName   string `json:"operator_name,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`

	VATRate          float64 `json:"vat_rate,omitempty"`
	DefaultTimeoutMs int     `json:"default_timeout_ms,omitempty"`
	PaymentTimeoutMs int     `json:"payment_timeout_ms,omitempty"`

	AutoPrintReceipt bool `json:"auto_print_receipt,omitempty"`
	PrintCopy        bool `json:"print_copy,omitempty"`
}

// BaseURL resolves the device address. An explicit api_url wins; otherwise a
// URL is synthesized from ip_address and port. Empty means the row is not
// usable for network calls.
func (c *FiscalDeviceConfig) BaseURL() string {
	if u := strings.TrimSpace(c.APIURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	if ip := strings.TrimSpace(c.IPAddress); ip != "" {
		if c.Port > 0 {
			return fmt.Sprintf("http://%s:%d", ip, c.Port)
		}
		return "http://" + ip
	}
	return ""
}

// DefaultTimeout is the budget for control actions.
func (c *FiscalDeviceConfig) DefaultTimeout() time.Duration {
	if c.DefaultTimeoutMs > 0 {
		return time.Duration(c.DefaultTimeoutMs) * time.Millisecond
	}
	return defaultTimeout
}

// PaymentTimeout is the budget for payment-bearing calls (receipt printing).
func (c *FiscalDeviceConfig) PaymentTimeout() time.Duration {
	if c.PaymentTimeoutMs > 0 {
		return time.Duration(c.PaymentTimeoutMs) * time.Millisecond
	}
	return paymentTimeout
}
