package hdm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"fiscal-gateway/internal/fiscal"
	"fiscal-gateway/internal/settings"

	goeen_log "github.com/eencloud/goeen/log"
)

func testLogger() *goeen_log.Logger {
	return goeen_log.NewContext(os.Stdout, "", goeen_log.LevelInfo).GetLogger("hdm-test", goeen_log.LevelInfo)
}

func testContext(baseURL string) *fiscal.DriverContext {
	cfg := &settings.FiscalDeviceConfig{
		LocationID:  "loc-1",
		Enabled:     true,
		DriverID:    DriverName,
		APIURL:      baseURL,
		APILogin:    "3",
		APIPassword: "4321",
		KKMPassword: "kkm-secret",
	}
	return fiscal.NewDriverContext("req-1", cfg, testLogger())
}

func TestLoginBody_CredentialFields(t *testing.T) {
	body := loginBody(testContext("http://device"))

	if body["cashierId"].(int) != 3 {
		t.Errorf("Expected cashierId 3 parsed from api login, got %v", body["cashierId"])
	}
	if body["cashierPin"] != "4321" {
		t.Errorf("Expected cashierPin '4321', got '%v'", body["cashierPin"])
	}
	if body["kkmPassword"] != "kkm-secret" {
		t.Errorf("Expected kkmPassword 'kkm-secret', got '%v'", body["kkmPassword"])
	}
}

func TestLoginBody_NonNumericLoginNotFatal(t *testing.T) {
	dc := testContext("http://device")
	dc.Config.APILogin = "not-a-number"

	body := loginBody(dc)
	if body["cashierId"].(int) != 0 {
		t.Errorf("Expected cashierId 0 for unparseable login, got %v", body["cashierId"])
	}
}

func TestReceiptBody_PaymentSplit(t *testing.T) {
	dc := testContext("http://device")
	order := &fiscal.OrderData{
		OrderNumber:   8,
		Items:         []fiscal.OrderItem{{Name: "Khash", Quantity: 1, Price: 2500, Total: 2500}},
		Subtotal:      2500,
		Total:         2500,
		PaymentMethod: "cash",
	}

	body := receiptBody(dc, order)
	if body["paidAmount"].(float64) != 2500 || body["paidAmountCard"].(float64) != 0 {
		t.Errorf("Expected cash split 2500/0, got %v/%v", body["paidAmount"], body["paidAmountCard"])
	}

	order.PaymentMethod = "card"
	body = receiptBody(dc, order)
	if body["paidAmount"].(float64) != 0 || body["paidAmountCard"].(float64) != 2500 {
		t.Errorf("Expected card split 0/2500, got %v/%v", body["paidAmount"], body["paidAmountCard"])
	}
}

func TestTestConnection_SendsLoginPayload(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &received)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	d := New(testLogger()).(*Driver)
	res, err := d.TestConnection(context.Background(), testContext(server.URL))
	if err != nil {
		t.Fatalf("TestConnection failed: %v", err)
	}
	if !res.Success {
		t.Errorf("Expected success, got: %s", res.Message)
	}
	if received["cashierId"].(float64) != 3 || received["kkmPassword"] != "kkm-secret" {
		t.Errorf("Login payload not sent with test connection: %v", received)
	}
}

func TestPrintReceipt_UsesPaymentTimeoutBudget(t *testing.T) {
	// Default budget is made far too short to succeed; the payment budget is
	// generous. A print that survives the slow device proves it ran on the
	// payment budget.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"rseq":101}`))
	}))
	defer server.Close()

	dc := testContext(server.URL)
	dc.Config.DefaultTimeoutMs = 50
	dc.Config.PaymentTimeoutMs = 5000

	order := &fiscal.OrderData{
		OrderNumber:   9,
		Items:         []fiscal.OrderItem{{Name: "Dolma", Quantity: 1, Price: 1800, Total: 1800}},
		Subtotal:      1800,
		Total:         1800,
		PaymentMethod: "cash",
	}

	d := New(testLogger()).(*Driver)
	res, err := d.PrintReceipt(context.Background(), dc, order)
	if err != nil {
		t.Fatalf("Expected print to run on the payment budget, got: %v", err)
	}
	if !res.Success {
		t.Errorf("Expected success, got: %s", res.Message)
	}
}

func TestControlAction_UsesDefaultTimeoutBudget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	dc := testContext(server.URL)
	dc.Config.DefaultTimeoutMs = 50
	dc.Config.PaymentTimeoutMs = 5000

	d := New(testLogger()).(*Driver)
	_, err := d.OpenDrawer(context.Background(), dc)
	if err == nil {
		t.Fatal("Expected a timeout on the default budget")
	}

	var upstream *fiscal.UpstreamError
	if !errors.As(err, &upstream) || !upstream.Timeout {
		t.Errorf("Expected UpstreamError with timeout marker, got %v", err)
	}
}
