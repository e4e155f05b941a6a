// Package custom is the generic prober driver. It serves vendors the gateway
// has no dedicated dialect for: every action walks an ordered candidate list
// of common endpoint shapes, one at a time, stopping at the first success.
package custom

import (
	"context"
	"net/http"

	"fiscal-gateway/internal/drivers"
	"fiscal-gateway/internal/fiscal"

	goeen_log "github.com/eencloud/goeen/log"
)

const DriverName = "custom"

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
	candidates := []fiscal.Candidate{
		{Method: http.MethodGet, Path: "/api/status"},
		{Method: http.MethodGet, Path: "/status"},
		{Method: http.MethodGet, Path: "/api/v1/status"},
	}
	res, err := dc.Probe(ctx, candidates, dc.TimeoutFor(fiscal.ActionTestConnection))
	if err != nil {
		// A probing driver reports unreachable as a failed result, not an error.
		return &fiscal.Result{Success: false, Message: "device unreachable: " + err.Error()}, nil
	}
	return &fiscal.Result{Success: true, Message: "device responded", Data: res.JSON()}, nil
}

func (d *Driver) PrintReceipt(ctx context.Context, dc *fiscal.DriverContext, order *fiscal.OrderData) (*fiscal.Result, error) {
	body := neutralReceipt(order)
	candidates := []fiscal.Candidate{
		{Method: http.MethodPost, Path: "/api/print-receipt", Body: body},
		{Method: http.MethodPost, Path: "/api/receipt", Body: body},
		{Method: http.MethodPost, Path: "/print", Body: body},
	}
	res, err := dc.Probe(ctx, candidates, dc.TimeoutFor(fiscal.ActionPrintReceipt))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "receipt accepted", Data: res.JSON()}, nil
}

func (d *Driver) OpenDrawer(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	candidates := []fiscal.Candidate{
		{Method: http.MethodPost, Path: "/api/open-drawer"},
		{Method: http.MethodPost, Path: "/open-drawer"},
		{Method: http.MethodPost, Path: "/api/drawer"},
	}
	res, err := dc.Probe(ctx, candidates, dc.TimeoutFor(fiscal.ActionOpenDrawer))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "drawer opened", Data: res.JSON()}, nil
}

func (d *Driver) XReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	candidates := []fiscal.Candidate{
		{Method: http.MethodPost, Path: "/api/x-report"},
		{Method: http.MethodPost, Path: "/x-report"},
	}
	res, err := dc.Probe(ctx, candidates, dc.TimeoutFor(fiscal.ActionXReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "X report printed", Data: res.JSON()}, nil
}

func (d *Driver) ZReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error) {
	candidates := []fiscal.Candidate{
		{Method: http.MethodPost, Path: "/api/z-report"},
		{Method: http.MethodPost, Path: "/z-report"},
	}
	res, err := dc.Probe(ctx, candidates, dc.TimeoutFor(fiscal.ActionZReport))
	if err != nil {
		return nil, err
	}
	return &fiscal.Result{Success: true, Message: "Z report printed", Data: res.JSON()}, nil
}

// neutralReceipt passes the vendor-neutral order shape through as-is; an
// unknown device gets the canonical decimal representation.
func neutralReceipt(order *fiscal.OrderData) map[string]interface{} {
	items := make([]interface{}, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, map[string]interface{}{
			"name":     it.Name,
			"quantity": it.Quantity,
			"price":    it.Price,
			"total":    it.Total,
		})
	}
	return map[string]interface{}{
		"order_number":   order.OrderNumber,
		"items":          items,
		"subtotal":       order.Subtotal,
		"discount":       order.Discount,
		"total":          order.Total,
		"payment_method": order.PaymentMethod,
		"cashier_name":   order.CashierName,
		"date":           order.Date,
	}
}
