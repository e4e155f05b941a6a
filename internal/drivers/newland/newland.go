// Package newland implements the Newland terminal dialect. Endpoint paths
// moved between firmware generations, so status and print calls carry one
// alternative candidate each.
package newland

import (
	"context"
	"net/http"

	"fiscal-gateway/internal/drivers"
	"fiscal-gateway/internal/fiscal"

	goeen_log "github.com/eencloud/goeen/log"
)

const DriverName = "newland"

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
	// Primary endpoint, then exactly one alternative. Sequential by contract.
	candidates := []fiscal.Candidate{
		{Method: http.MethodGet, Path: "/api/status"},
		{Method: http.MethodGet, Path: "/cgi-bin/status"},
	}
	res, err := dc.Probe(ctx, candidates, dc.TimeoutFor(fiscal.ActionTestConnection))
	if err != nil {
		return &fiscal.Result{Success: false, Message: "device unreachable: " + err.Error()}, nil
	}
	return &fiscal.Result{Success: true, Message: "device is online", Data: res.JSON()}, nil
}

func (d *Driver) PrintReceipt(ctx context.Context, dc *fiscal.DriverContext, order *fiscal.OrderData) (*fiscal.Result, error) {
	body := printRequest(dc.Config.TerminalID, order)
	candidates := []fiscal.Candidate{
		{Method: http.MethodPost, Path: "/api/print", Body: body},
		{Method: http.MethodPost, Path: "/cgi-bin/print", Body: body},
	}
	res, err := dc.Probe(ctx, candidates, dc.TimeoutFor(fiscal.ActionPrintReceipt))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "receipt printed", Data: res.JSON()}, nil
}

func (d *Driver) OpenDrawer(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	body := map[string]interface{}{"terminalId": dc.Config.TerminalID}
	res, err := dc.Call(ctx, http.MethodPost, "/api/drawer", body, dc.TimeoutFor(fiscal.ActionOpenDrawer))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "drawer opened", Data: res.JSON()}, nil
}
