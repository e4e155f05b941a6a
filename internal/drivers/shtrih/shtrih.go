// Package shtrih implements the Shtrih-M HTTP dialect.
package shtrih

import (
	"context"
	"net/http"

	"fiscal-gateway/internal/drivers"
	"fiscal-gateway/internal/fiscal"

	goeen_log "github.com/eencloud/goeen/log"
)

const DriverName = "shtrih"

func init() {
	drivers.Register(DriverName, New)
}

// Driver speaks the Shtrih-M fixed-endpoint JSON API. Money stays decimal;
// payment types are numeric codes.
type Driver struct {
	logger *goeen_log.Logger
}

func New(logger *goeen_log.Logger) drivers.Driver {
	return &Driver{logger: logger}
}

func (d *Driver) Name() string { return DriverName }

func (d *Driver) TestConnection(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	res, err := dc.Call(ctx, http.MethodGet, "/api/v1/status", nil, dc.TimeoutFor(fiscal.ActionTestConnection))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "device is online", Data: res.JSON()}, nil
}

func (d *Driver) PrintReceipt(ctx context.Context, dc *fiscal.DriverContext, order *fiscal.OrderData) (*fiscal.Result, error) {
	body := printDocument(dc.Config.KKMPassword, order)
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/print", body, dc.TimeoutFor(fiscal.ActionPrintReceipt))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "receipt printed", Data: res.JSON()}, nil
}

func (d *Driver) OpenDrawer(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := map[string]interface{}{"password": dc.Config.KKMPassword}
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/cashdrawer", body, dc.TimeoutFor(fiscal.ActionOpenDrawer))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "drawer opened", Data: res.JSON()}, nil
}

func (d *Driver) XReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := map[string]interface{}{"password": dc.Config.KKMPassword}
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/report/x", body, dc.TimeoutFor(fiscal.ActionXReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "X report printed", Data: res.JSON()}, nil
}

func (d *Driver) ZReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := map[string]interface{}{"password": dc.Config.KKMPassword}
	res, err := dc.Call(ctx, http.MethodPost, "/api/v1/report/z", body, dc.TimeoutFor(fiscal.ActionZReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "Z report printed", Data: res.JSON()}, nil
}
