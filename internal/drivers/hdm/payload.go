package hdm

import (
	"strconv"

	"fiscal-gateway/internal/fiscal"
)

// loginBody builds the credential fields every HDM call carries. A
// non-numeric api login yields cashier id 0; the device rejects it as an
// upstream error rather than the gateway failing early, since these are body
// fields, not headers.
func loginBody(dc *fiscal.DriverContext) map[string]interface{} {
	cashierID, _ := strconv.Atoi(dc.Config.APILogin)
	return map[string]interface{}{
		"cashierId":   cashierID,
		"cashierPin":  dc.Config.APIPassword,
		"kkmPassword": dc.Config.KKMPassword,
	}
}

// receiptBody maps the order onto the HDM receipt shape. Cash goes to
// paidAmount, card to paidAmountCard; the device treats the two fields as the
// payment split.
func receiptBody(dc *fiscal.DriverContext, order *fiscal.OrderData) map[string]interface{} {
	items := make([]interface{}, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, map[string]interface{}{
			"productName": it.Name,
			"qty":         it.Quantity,
			"price":       it.Price,
			"totalPrice":  it.Total,
		})
	}

	body := loginBody(dc)
	body["seq"] = order.OrderNumber
	body["items"] = items
	body["subtotal"] = order.Subtotal
	body["discount"] = order.Discount

	switch order.PaymentMethod {
	case "card":
		body["paidAmount"] = 0.0
		body["paidAmountCard"] = order.Total
	default:
		body["paidAmount"] = order.Total
		body["paidAmountCard"] = 0.0
	}

	return body
}
