package drivers

import (
	"context"

	"fiscal-gateway/internal/fiscal"

	goeen_log "github.com/eencloud/goeen/log"
)

// Driver is a vendor HTTP dialect adapter. Each driver implements only the
// capability interfaces below that its device actually supports; the
// dispatcher surfaces the rest as unsupported.
type Driver interface {
	Name() string
}

// ConnectionTester checks that the device is reachable and alive.
type ConnectionTester interface {
	TestConnection(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error)
}

// ReceiptPrinter submits a fiscal sale for printing.
type ReceiptPrinter interface {
	PrintReceipt(ctx context.Context, dc *fiscal.DriverContext, order *fiscal.OrderData) (*fiscal.Result, error)
}

// DrawerOpener kicks the cash drawer.
type DrawerOpener interface {
	OpenDrawer(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error)
}

// XReporter prints a non-resetting interim sales summary.
type XReporter interface {
	XReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error)
}

// ZReporter prints the end-of-shift summary and resets interim counters.
type ZReporter interface {
	ZReport(ctx context.Context, dc *fiscal.DriverContext) (*fiscal.Result, error)
}

// NewFunc is a function signature for creating a driver instance.
// It is registered from the driver's package init() function.
type NewFunc func(logger *goeen_log.Logger) Driver
