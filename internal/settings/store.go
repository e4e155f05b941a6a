package settings

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a location has no fiscal device row.
var ErrNotFound = errors.New("settings: no fiscal device configuration for location")

// Store reads fiscal device configurations. The gateway never writes through
// this interface and never caches what it reads.
type Store interface {
	GetByLocation(ctx context.Context, locationID string) (*FiscalDeviceConfig, error)
}
