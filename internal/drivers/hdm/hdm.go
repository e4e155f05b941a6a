// Package hdm implements the HDM cash register dialect. Every call carries a
// login-style body: cashier id and PIN come from the api login/password pair
// and the device password rides alongside. Receipt printing is a
// cash-handling operation and runs on the payment timeout budget.
package hdm

import (
	"context"
	"net/http"

	"fiscal-gateway/internal/drivers"
	"fiscal-gateway/internal/fiscal"

	goeen_log "github.com/eencloud/goeen/log"
)

const DriverName = "hdm"

func init() {
	drivers.Register(DriverName, New)
}

type Driver struct {
	logger *goeen_log.Logger
}

func New(logger *goeen_log.Logger) drivers.Driver {
	return &Driver{logger: logger}
}

func (d *Driver) Name() string { return DriverName }

func (d *Driver) TestConnection(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := loginBody(dc)
	// Older firmware answers on /api/ping, newer on /api/v1/ping.
	candidates := []fiscal.Candidate{
		{Method: http.MethodPost, Path: "/api/ping", Body: body},
		{Method: http.MethodPost, Path: "/api/v1/ping", Body: body},
	}
	res, err := dc.Probe(ctx, candidates, dc.TimeoutFor(fiscal.ActionTestConnection))
	if err != nil {
		return &fiscal.Result{Success: false, Message: "device unreachable: " + err.Error()}, nil
	}
	return &fiscal.Result{Success: true, Message: "device is online", Data: res.JSON()}, nil
}

func (d *Driver) PrintReceipt(ctx context.Context, dc *fiscal.DriverContext, order *fiscal.OrderData) (*fiscal.Result, error) {
	body := receiptBody(dc, order)
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/receipt", body, dc.TimeoutFor(fiscal.ActionPrintReceipt))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "fiscal receipt printed", Data: res.JSON()}, nil
}

func (d *Driver) OpenDrawer(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/cash-drawer", loginBody(dc), dc.TimeoutFor(fiscal.ActionOpenDrawer))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "drawer opened", Data: res.JSON()}, nil
}

func (d *Driver) XReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := loginBody(dc)
	body["reportType"] = "X"
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/report", body, dc.TimeoutFor(fiscal.ActionXReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "X report printed", Data: res.JSON()}, nil
}

func (d *Driver) ZReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := loginBody(dc)
	body["reportType"] = "Z"
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/report", body, dc.TimeoutFor(fiscal.ActionZReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "Z report printed", Data: res.JSON()}, nil
}
