package newland

import "fiscal-gateway/internal/fiscal"

// Newland encodes payment types as string digits.
var payTypes = map[string]string{
	"cash": "0",
	"card": "1",
}

func printRequest(terminalID string, order *fiscal.OrderData) map[string]interface{} {
	goods := make([]interface{}, 0, len(order.Items))
	for _, it := range order.Items {
		goods = append(goods, map[string]interface{}{
			"goodsName": it.Name,
			"qty":       it.Quantity,
			"price":     it.Price,
			"amount":    it.Total,
		})
	}

	payType, ok := payTypes[order.PaymentMethod]
	if !ok {
		payType = payTypes["cash"]
	}

	return map[string]interface{}{
		"terminalId": terminalID,
		"orderNo":    order.OrderNumber,
		"goods":      goods,
		"subtotal":   order.Subtotal,
		"discount":   order.Discount,
		"amount":     order.Total,
		"payType":    payType,
		"cashier":    order.CashierName,
	}
}
