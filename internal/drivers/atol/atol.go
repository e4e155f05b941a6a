// Package atol implements the ATOL web-server JSON task dialect.
package atol

import (
	"context"
	"net/http"

	"fiscal-gateway/internal/drivers"
	"fiscal-gateway/internal/fiscal"

	goeen_log "github.com/eencloud/goeen/log"
)

const DriverName = "atol"

func init() {
	drivers.Register(DriverName, New)
}

// Driver talks to the ATOL web server task queue. Money and quantities are
// decimal; the device expects tasks wrapped in a request array.
type Driver struct {
	logger *goeen_log.Logger
}

func New(logger *goeen_log.Logger) drivers.Driver {
	return &Driver{logger: logger}
}

func (d *Driver) Name() string { return DriverName }

func (d *Driver) TestConnection(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	res, err := dc.Call(ctx, http.MethodGet, "/api/v2/serverInfo", nil, dc.TimeoutFor(fiscal.ActionTestConnection))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "device is online", Data: res.JSON()}, nil
}

func (d *Driver) PrintReceipt(ctx context.Context, dc *fiscal.DriverContext, order *fiscal.OrderData) (*fiscal.Result, error) {
	task := sellTask(dc.Config.OperatorName, dc.Config.VATRate, order)
	res, err := dc.Call(ctx, http.MethodPost, "/api/v2/requests", taskRequest(task), dc.TimeoutFor(fiscal.ActionPrintReceipt))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "receipt queued", Data: res.JSON()}, nil
}

func (d *Driver) OpenDrawer(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	task := map[string]interface{}{"type": "cashDrawerOpen"}
	res, err := dc.Call(ctx, http.MethodPost, "/api/v2/requests", taskRequest(task), dc.TimeoutFor(fiscal.ActionOpenDrawer))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "drawer opened", Data: res.JSON()}, nil
}

func (d *Driver) XReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	task := map[string]interface{}{
		"type":     "reportX",
		"operator": map[string]interface{}{"name": dc.Config.OperatorName},
	}
	res, err := dc.Call(ctx, http.MethodPost, "/api/v2/requests", taskRequest(task), dc.TimeoutFor(fiscal.ActionXReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "X report printed", Data: res.JSON()}, nil
}

func (d *Driver) ZReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	task := map[string]interface{}{
		"type":     "closeShift",
		"operator": map[string]interface{}{"name": dc.Config.OperatorName},
	}
	res, err := dc.Call(ctx, http.MethodPost, "/api/v2/requests", taskRequest(task), dc.TimeoutFor(fiscal.ActionZReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "shift closed", Data: res.JSON()}, nil
}

func taskRequest(task map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"request": []interface{}{task}}
}
