package shtrih

import "fiscal-gateway/internal/fiscal"

// Shtrih uses numeric payment codes.
var paymentCodes = map[string]int{
	"cash": 0,
	"card": 1,
}

func printDocument(kkmPassword string, order *fiscal.OrderData) map[string]interface{} {
	items := make([]interface{}, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, map[string]interface{}{
			"name":     it.Name,
			"price":    it.Price,
			"quantity": it.Quantity,
			"sum":      it.Total,
		})
	}

	code, ok := paymentCodes[order.PaymentMethod]
	if !ok {
		code = paymentCodes["cash"]
	}

	return map[string]interface{}{
		"password": kkmPassword,
		"operator": order.CashierName,
		"document": map[string]interface{}{
			"number":   order.OrderNumber,
			"items":    items,
			"subtotal": order.Subtotal,
			"discount": order.Discount,
			"total":    order.Total,
			"payments": []interface{}{
				map[string]interface{}{"type": code, "sum": order.Total},
			},
		},
	}
}
