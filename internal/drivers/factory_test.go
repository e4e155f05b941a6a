package drivers

import (
	"testing"

	goeen_log "github.com/eencloud/goeen/log"
)

type stubDriver struct{ name string }

func (d *stubDriver) Name() string { return d.name }

func TestRegisterAndGet(t *testing.T) {
	Register("stub-vendor", func(logger *goeen_log.Logger) Driver {
		return &stubDriver{name: "stub-vendor"}
	})

	newFunc, err := Get("stub-vendor")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	d := newFunc(nil)
	if d.Name() != "stub-vendor" {
		t.Errorf("Expected driver 'stub-vendor', got '%s'", d.Name())
	}
}

func TestGet_UnknownFallsBackToCustom(t *testing.T) {
	Register(FallbackID, func(logger *goeen_log.Logger) Driver {
		return &stubDriver{name: FallbackID}
	})

	newFunc, err := Get("some-new-vendor")
	if err != nil {
		t.Fatalf("Expected fallback, got error: %v", err)
	}

	d := newFunc(nil)
	if d.Name() != FallbackID {
		t.Errorf("Expected fallback driver '%s', got '%s'", FallbackID, d.Name())
	}
}

func TestRegister_DuplicateKeepsFirst(t *testing.T) {
	Register("dup-vendor", func(logger *goeen_log.Logger) Driver {
		return &stubDriver{name: "first"}
	})
	Register("dup-vendor", func(logger *goeen_log.Logger) Driver {
		return &stubDriver{name: "second"}
	})

	newFunc, err := Get("dup-vendor")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if d := newFunc(nil); d.Name() != "first" {
		t.Errorf("Expected first registration to win, got '%s'", d.Name())
	}
}
