package atol

import (
	"fmt"

	"fiscal-gateway/internal/fiscal"
)

// ATOL disagrees with the other dialects on payment naming; keep the table
// local to this driver.
var paymentTypes = map[string]string{
	"cash": "cash",
	"card": "electronically",
}

// sellTask reshapes the vendor-neutral order into an ATOL "sell" task.
// Prices and quantities stay decimal; totals pass through unchanged.
func sellTask(operator string, vatRate float64, order *fiscal.OrderData) map[string]interface{} {
	items := make([]interface{}, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, map[string]interface{}{
			"type":     "position",
			"name":     it.Name,
			"price":    it.Price,
			"quantity": it.Quantity,
			"amount":   it.Total,
			"tax":      map[string]interface{}{"type": taxType(vatRate)},
		})
	}

	payType, ok := paymentTypes[order.PaymentMethod]
	if !ok {
		payType = paymentTypes["cash"]
	}

	task := map[string]interface{}{
		"type":     "sell",
		"items":    items,
		"payments": []interface{}{map[string]interface{}{"type": payType, "sum": order.Total}},
		"total":    order.Total,
	}
	if operator != "" {
		task["operator"] = map[string]interface{}{"name": operator}
	} else if order.CashierName != "" {
		task["operator"] = map[string]interface{}{"name": order.CashierName}
	}
	return task
}

func taxType(vatRate float64) string {
	if vatRate <= 0 {
		return "none"
	}
	return fmt.Sprintf("vat%d", int(vatRate))
}
