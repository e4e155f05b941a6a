package drivers

import (
	"fmt"
)

// FallbackID is the generic prober driver used for unknown or not yet
// implemented vendor identifiers. Vendor coverage is expected to be
// incomplete, so a misconfigured id degrades to best-effort probing instead
// of a hard failure.
const FallbackID = "custom"

var driverRegistry = make(map[string]NewFunc)

// Register adds a new driver constructor to the registry.
// This is typically called from the driver's package init() function.
func Register(id string, newFunc NewFunc) {
	if _, exists := driverRegistry[id]; exists {
		return
	}
	driverRegistry[id] = newFunc
}

// Get returns the constructor for the given driver id, falling back to the
// generic driver when the id is unknown.
func Get(id string) (NewFunc, error) {
	if newFunc, exists := driverRegistry[id]; exists {
		return newFunc, nil
	}
	if newFunc, exists := driverRegistry[FallbackID]; exists {
		return newFunc, nil
	}
	return nil, fmt.Errorf("no driver registered with id %s and no fallback available", id)
}

// Registered reports whether a driver id has a dedicated implementation.
func Registered(id string) bool {
	_, exists := driverRegistry[id]
	return exists
}
