package fiscal

// Action is one of the gateway's uniform fiscal operations.
type Action string

const (
	ActionTestConnection Action = "test_connection"
	ActionPrintReceipt   Action = "print_receipt"
	ActionOpenDrawer     Action = "open_drawer"
	ActionXReport        Action = "x_report"
	ActionZReport        Action = "z_report"
)

// ParseAction validates a wire-format action string.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionTestConnection, ActionPrintReceipt, ActionOpenDrawer, ActionXReport, ActionZReport:
		return Action(s), true
	}
	return "", false
}

// OrderItem is one sold position in vendor-neutral form.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// OrderData is the vendor-neutral order representation. Totals are carried
// through unchanged; drivers reshape but never recompute them.
type OrderData struct {
	OrderNumber   int64       `json:"order_number"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method"`
	CashierName   string      `json:"cashier_name,omitempty"`
	Date          string      `json:"date,omitempty"`
}

// Request is the inbound gateway call.
type Request struct {
	Action     string     `json:"action"`
	LocationID string     `json:"location_id,omitempty"`
	OrderData  *OrderData `json:"order_data,omitempty"`
}

// Result is the uniform envelope returned to the caller regardless of which
// vendor dialect produced it.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
