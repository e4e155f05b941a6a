package aisino

import (
	"fiscal-gateway/internal/fiscal"
	"fiscal-gateway/internal/settings"
)

var payMethods = map[string]string{
	"cash": "CASH",
	"card": "ELECTRON",
}

// fiscalInvoice embeds the organization fields verbatim; Aisino prints them
// on the receipt header.
func fiscalInvoice(cfg *settings.FiscalDeviceConfig, order *fiscal.OrderData) map[string]interface{} {
	lines := make([]interface{}, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, map[string]interface{}{
			"itemName": it.Name,
			"quantity": it.Quantity,
			"price":    it.Price,
			"amount":   it.Total,
		})
	}

	method, ok := payMethods[order.PaymentMethod]
	if !ok {
		method = payMethods["cash"]
	}

	return map[string]interface{}{
		"deviceId":       cfg.DeviceID,
		"taxpayerId":     cfg.INN,
		"companyName":    cfg.CompanyName,
		"companyAddress": cfg.CompanyAddress,
		"invoiceNo":      order.OrderNumber,
		"lines":          lines,
		"subtotal":       order.Subtotal,
		"discount":       order.Discount,
		"totalAmount":    order.Total,
		"payMethod":      method,
		"cashier":        order.CashierName,
		"date":           order.Date,
	}
}
