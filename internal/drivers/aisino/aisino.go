// Package aisino implements the Aisino fiscal terminal dialect.
package aisino

import (
	"context"
	"net/http"

	"fiscal-gateway/internal/drivers"
	"fiscal-gateway/internal/fiscal"

	goeen_log "github.com/eencloud/goeen/log"
)

const DriverName = "aisino"

func init() {
	drivers.Register(DriverName, New)
}

// Driver speaks the Aisino JSON API. The status endpoint differs between
// firmware lines, so testConnection carries one alternative candidate.
type Driver struct {
	logger *goeen_log.Logger
}

func New(logger *goeen_log.Logger) drivers.Driver {
	return &Driver{logger: logger}
}

func (d *Driver) Name() string { return DriverName }

func (d *Driver) TestConnection(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	candidates := []fiscal.Candidate{
		{Method: http.MethodGet, Path: "/api/v1/device/status"},
		{Method: http.MethodGet, Path: "/device/status"},
	}
	res, err := dc.Probe(ctx, candidates, dc.TimeoutFor(fiscal.ActionTestConnection))
	if err != nil {
		return &fiscal.Result{Success: false, Message: "device unreachable: " + err.Error()}, nil
	}
	return &fiscal.Result{Success: true, Message: "device is online", Data: res.JSON()}, nil
}

func (d *Driver) PrintReceipt(ctx context.Context, dc *fiscal.DriverContext, order *fiscal.OrderData) (*fiscal.Result, error) {
	body := fiscalInvoice(dc.Config, order)
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/fiscal/print", body, dc.TimeoutFor(fiscal.ActionPrintReceipt))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "invoice printed", Data: res.JSON()}, nil
}

func (d *Driver) XReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := map[string]interface{}{"reportType": "X", "deviceId": dc.Config.DeviceID}
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/report", body, dc.TimeoutFor(fiscal.ActionXReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "X report printed", Data: res.JSON()}, nil
}

func (d *Driver) ZReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := map[string]interface{}{"reportType": "Z", "deviceId": dc.Config.DeviceID}
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/report", body, dc.TimeoutFor(fiscal.ActionZReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "Z report printed", Data: res.JSON()}, nil
}
