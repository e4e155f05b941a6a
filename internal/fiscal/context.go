package fiscal

import (
	"context"
	"net/http"
	"time"

	"fiscal-gateway/internal/settings"

	goeen_log "github.com/eencloud/goeen/log"
)

// DriverContext is the immutable per-call snapshot handed to a driver: the
// resolved device address, composed headers and the configuration fields a
// driver may need. Built once per call, never shared between calls.
type DriverContext struct {
	RequestID string
	BaseURL   string
	Headers   http.Header
	Config    *settings.FiscalDeviceConfig
	Logger    *goeen_log.Logger

	transport *Transport
}

// NewDriverContext composes a context for one gateway call.
func NewDriverContext(requestID string, cfg *settings.FiscalDeviceConfig, logger *goeen_log.Logger) *DriverContext {
	return &DriverContext{
		RequestID: requestID,
		BaseURL:   cfg.BaseURL(),
		Headers:   BuildHeaders(cfg),
		Config:    cfg,
		Logger:    logger,
		transport: NewTransport(logger),
	}
}

// TimeoutFor picks the budget for an action: the payment budget for receipt
// printing, the default budget for every control action.
func (dc *DriverContext) TimeoutFor(action Action) time.Duration {
	if action == ActionPrintReceipt {
		return dc.Config.PaymentTimeout()
	}
	return dc.Config.DefaultTimeout()
}

// Call issues a single outbound request against the device base URL.
func (dc *DriverContext) Call(ctx context.Context, method, path string, body interface{}, timeout time.Duration) (*CallResult, error) {
	return dc.transport.Call(ctx, method, dc.BaseURL+path, dc.Headers, body, timeout)
}

// Probe tries candidates one at a time against the device base URL,
// short-circuiting on the first success.
func (dc *DriverContext) Probe(ctx context.Context, candidates []Candidate, timeout time.Duration) (*CallResult, error) {
	return dc.transport.Probe(ctx, dc.BaseURL, dc.Headers, candidates, timeout)
}
