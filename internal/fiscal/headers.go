package fiscal

import (
	"encoding/base64"
	"net/http"

	"fiscal-gateway/internal/settings"
)

// BuildHeaders turns a location's stored credentials into outbound HTTP
// headers. Token wins over login/password; neither means no Authorization
// header at all. Recomputed on every call because credentials can rotate
// between calls.
func BuildHeaders(cfg *settings.FiscalDeviceConfig) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	switch {
	case cfg.APIToken != "":
		h.Set("Authorization", "Bearer "+cfg.APIToken)
	case cfg.APILogin != "" && cfg.APIPassword != "":
		cred := base64.StdEncoding.EncodeToString([]byte(cfg.APILogin + ":" + cfg.APIPassword))
		h.Set("Authorization", "Basic "+cred)
	}

	return h
}
