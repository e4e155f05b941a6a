package fiscal

import "fmt"

// AuthError means the caller's own credential was missing or invalid. Raised
// before any config lookup.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "unauthorized: " + e.Reason
}

// ConfigError means the location's configuration cannot support the call:
// no resolvable location, no settings row, no usable device address, or a
// malformed request. Raised before any network I/O.
type ConfigError struct {
	Reason string
	// NotFound marks the "no settings row" case so the HTTP layer can answer
	// 404 instead of 400.
	NotFound bool
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// DeviceDisabledError means a settings row exists but the master switch is
// off. No outbound call is ever made for a disabled device.
type DeviceDisabledError struct {
	LocationID string
}

func (e *DeviceDisabledError) Error() string {
	return fmt.Sprintf("fiscal device is disabled for location %s", e.LocationID)
}

// UnsupportedActionError means the configured driver does not implement the
// requested action.
type UnsupportedActionError struct {
	Driver string
	Action Action
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("driver %s does not support action %s", e.Driver, e.Action)
}

// UpstreamError means the vendor device answered with a non-success status,
// or the call exceeded its timeout budget. Timeout is kept distinct so
// callers can tell "unreachable" from "too slow".
type UpstreamError struct {
	Status  int
	Timeout bool
	Body    string
}

func (e *UpstreamError) Error() string {
	if e.Timeout {
		return "upstream device timeout"
	}
	if e.Body != "" {
		return fmt.Sprintf("upstream device returned status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("upstream device returned status %d", e.Status)
}

// DriverError wraps any other failure inside a driver, annotated with the
// driver's name.
type DriverError struct {
	Driver string
	Err    error
}

func (e *DriverError) Error() string {
	return fmt.Sprintf("driver %s failed: %v", e.Driver, e.Err)
}

func (e *DriverError) Unwrap() error {
	return e.Err
}
