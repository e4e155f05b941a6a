// Command gateway-smoke exercises a running gateway from the command line.
// It is a development aid, not part of the service surface: it sends one
// action per invocation the same way the point-of-sale front-end would.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"fiscal-gateway/internal/fiscal"
)

var (
	gatewayURL = flag.String("gateway", "http://localhost:8475", "base URL of the running gateway")
	token      = flag.String("token", "", "caller token")
	action     = flag.String("action", "test_connection", "action to send")
	locationID = flag.String("location", "", "location id (optional if the token maps to one)")
)

func main() {
	flag.Parse()

	req := fiscal.Request{
		Action:     *action,
		LocationID: *locationID,
	}

	if *action == string(fiscal.ActionPrintReceipt) {
		req.OrderData = sampleOrder()
	}

	body, err := json.Marshal(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode request: %v\n", err)
		os.Exit(1)
	}

	httpReq, err := http.NewRequest(http.MethodPost, *gatewayURL+"/api/fiscal", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build request: %v\n", err)
		os.Exit(1)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if *token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+*token)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gateway call failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = resp.Body.Close() }()

	data, _ := io.ReadAll(resp.Body)
	fmt.Printf("HTTP %d\n%s\n", resp.StatusCode, data)
}

func sampleOrder() *fiscal.OrderData {
	return &fiscal.OrderData{
		OrderNumber: 999,
		Items: []fiscal.OrderItem{
			{Name: "Test1", Quantity: 2, Price: 100, Total: 200},
			{Name: "Test2", Quantity: 1, Price: 150, Total: 150},
		},
		Subtotal:      350,
		Discount:      0,
		Total:         350,
		PaymentMethod: "cash",
		CashierName:   "Smoke Test",
		Date:          time.Now().Format(time.RFC3339),
	}
}
