package evotor

import (
	"math"

	"fiscal-gateway/internal/fiscal"
)

var paymentTypes = map[string]string{
	"cash": "CASH",
	"card": "CARD",
}

// minorUnits converts a decimal money amount to integer minor units (x100).
func minorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}

// thousandths converts a decimal quantity to integer thousandths (x1000).
func thousandths(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// sellDocument reshapes the order into an Evotor SELL document. All money is
// scaled to integer minor units and quantities to thousandths; totals are
// scaled but never recomputed.
func sellDocument(order *fiscal.OrderData) map[string]interface{} {
	positions := make([]interface{}, 0, len(order.Items))
	for _, it := range order.Items {
		positions = append(positions, map[string]interface{}{
			"name":     it.Name,
			"price":    minorUnits(it.Price),
			"quantity": thousandths(it.Quantity),
			"sum":      minorUnits(it.Total),
		})
	}

	payType, ok := paymentTypes[order.PaymentMethod]
	if !ok {
		payType = paymentTypes["cash"]
	}

	return map[string]interface{}{
		"type": "SELL",
		"receipt": map[string]interface{}{
			"number":    order.OrderNumber,
			"positions": positions,
			"subtotal":  minorUnits(order.Subtotal),
			"discount":  minorUnits(order.Discount),
			"total":     minorUnits(order.Total),
			"payments": []interface{}{
				map[string]interface{}{"type": payType, "sum": minorUnits(order.Total)},
			},
		},
	}
}
