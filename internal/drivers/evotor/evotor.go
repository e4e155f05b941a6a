// Package evotor implements the Evotor cloud document dialect.
package evotor

import (
	"context"
	"net/http"

	"fiscal-gateway/internal/drivers"
	"fiscal-gateway/internal/fiscal"

	goeen_log "github.com/eencloud/goeen/log"
)

const DriverName = "evotor"

func init() {
	drivers.Register(DriverName, New)
}

// Driver speaks the Evotor cloud API: documents posted per device, money in
// integer minor units. No drawer control and no X report in this dialect.
type Driver struct {
	logger *goeen_log.Logger
}

func New(logger *goeen_log.Logger) drivers.Driver {
	return &Driver{logger: logger}
}

func (d *Driver) Name() string { return DriverName }

func (d *Driver) TestConnection(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	res, err := dc.Call(ctx, http.MethodGet, "/api/v1/devices", nil, dc.TimeoutFor(fiscal.ActionTestConnection))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "cloud API reachable", Data: res.JSON()}, nil
}

func (d *Driver) PrintReceipt(ctx context.Context, dc *fiscal.DriverContext, order *fiscal.OrderData) (*fiscal.Result, error) {
	body := sellDocument(order)
	path := "/api/v1/devices/" + dc.Config.DeviceID + "/documents"
	res, err := dc.Call(ctx, http.MethodPost, path, body, dc.TimeoutFor(fiscal.ActionPrintReceipt))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "receipt submitted", Data: res.JSON()}, nil
}

func (d *Driver) ZReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := map[string]interface{}{"type": "CLOSE_SESSION"}
	path := "/api/v1/devices/" + dc.Config.DeviceID + "/documents"
	res, err := dc.Call(ctx, http.MethodPost, path, body, dc.TimeoutFor(fiscal.ActionZReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "session closed", Data: res.JSON()}, nil
}
