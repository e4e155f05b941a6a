// Package gateway routes a verified caller's fiscal action to the right
// vendor driver. Every precondition is checked before any network I/O; a
// disabled or misconfigured device never causes an outbound call.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiscal-gateway/internal/auth"
	"fiscal-gateway/internal/drivers"
	"fiscal-gateway/internal/fiscal"
	"fiscal-gateway/internal/metrics"
	"fiscal-gateway/internal/settings"

	"github.com/google/uuid"

	goeen_log "github.com/eencloud/goeen/log"
)

type Dispatcher struct {
	logger *goeen_log.Logger
	store  settings.Store
}

func NewDispatcher(logger *goeen_log.Logger, store settings.Store) *Dispatcher {
	return &Dispatcher{logger: logger, store: store}
}

// Dispatch runs one gateway call end to end and returns the uniform result
// envelope. Classified errors come back as error values; a driver reporting
// failure without raising comes back as a Result with Success=false.
func (d *Dispatcher) Dispatch(ctx context.Context, caller *auth.Caller, req *fiscal.Request) (*fiscal.Result, error) {
	action, ok := fiscal.ParseAction(req.Action)
	if !ok {
		return nil, &fiscal.ConfigError{Reason: fmt.Sprintf("unknown action %q", req.Action)}
	}

	locationID := req.LocationID
	if locationID == "" && caller != nil {
		locationID = caller.LocationID
	}
	if locationID == "" {
		return nil, &fiscal.ConfigError{Reason: "no location could be resolved for this call"}
	}

	cfg, err := d.store.GetByLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return nil, &fiscal.ConfigError{Reason: "no fiscal device configured for location " + locationID, NotFound: true}
		}
		return nil, fmt.Errorf("settings lookup failed: %w", err)
	}

	if !cfg.Enabled {
		// Hard stop: nothing may reach the network for a disabled device.
		return nil, &fiscal.DeviceDisabledError{LocationID: locationID}
	}

	if cfg.BaseURL() == "" {
		return nil, &fiscal.ConfigError{Reason: "no API URL or IP address configured"}
	}

	if action == fiscal.ActionPrintReceipt && req.OrderData == nil {
		return nil, &fiscal.ConfigError{Reason: "order_data is required for print_receipt"}
	}

	newFunc, err := drivers.Get(cfg.DriverID)
	if err != nil {
		return nil, fmt.Errorf("driver registry: %w", err)
	}
	driver := newFunc(d.logger)

	requestID := uuid.New().String()
	dc := fiscal.NewDriverContext(requestID, cfg, d.logger)

	d.logger.Infof("Dispatching %s to driver %s for location %s (request %s)",
		action, driver.Name(), locationID, requestID)

	start := time.Now()
	res, err := d.invoke(ctx, driver, dc, action, req.OrderData)
	metrics.DispatchDuration.WithLabelValues(string(action), driver.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.GatewayRequestsTotal.WithLabelValues(string(action), driver.Name(), "error").Inc()
		var unsupported *fiscal.UnsupportedActionError
		if errors.As(err, &unsupported) {
			return nil, err
		}
		d.logger.Errorf("Driver %s failed on %s (request %s): %v", driver.Name(), action, requestID, err)
		return nil, &fiscal.DriverError{Driver: driver.Name(), Err: err}
	}

	outcome := "failure"
	if res.Success {
		outcome = "success"
	}
	metrics.GatewayRequestsTotal.WithLabelValues(string(action), driver.Name(), outcome).Inc()

	if data, ok := res.Data.(map[string]interface{}); ok {
		data["request_id"] = requestID
	}

	return res, nil
}

// invoke maps the action onto the driver's capability set.
func (d *Dispatcher) invoke(ctx context.Context, driver drivers.Driver, dc *fiscal.DriverContext, action fiscal.Action, order *fiscal.OrderData) (res *fiscal.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	switch action {
	case fiscal.ActionTestConnection:
		if t, ok := driver.(drivers.ConnectionTester); ok {
			return t.TestConnection(ctx, dc)
		}
	case fiscal.ActionPrintReceipt:
		if p, ok := driver.(drivers.ReceiptPrinter); ok {
			return p.PrintReceipt(ctx, dc, order)
		}
	case fiscal.ActionOpenDrawer:
		if o, ok := driver.(drivers.DrawerOpener); ok {
			return o.OpenDrawer(ctx, dc)
		}
	case fiscal.ActionXReport:
		if x, ok := driver.(drivers.XReporter); ok {
			return x.XReport(ctx, dc)
		}
	case fiscal.ActionZReport:
		if z, ok := driver.(drivers.ZReporter); ok {
			return z.ZReport(ctx, dc)
		}
	}

	return nil, &fiscal.UnsupportedActionError{Driver: driver.Name(), Action: action}
}
