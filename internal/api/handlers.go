package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"fiscal-gateway/internal/auth"
	"fiscal-gateway/internal/fiscal"
	"fiscal-gateway/internal/metrics"
)

var serviceStartTime = time.Now() // Track service uptime

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) fiscalHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)
		return
	}

	// Caller credential first: an unknown caller never triggers a config
	// lookup.
	caller, ok := s.Verifier.Verify(auth.BearerToken(r))
	if !ok {
		s.writeError(w, &fiscal.AuthError{Reason: "missing or invalid caller token"})
		return
	}

	var req fiscal.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.Logger.Errorf("Invalid JSON in fiscal request: %v", err)
		s.writeError(w, &fiscal.ConfigError{Reason: "invalid JSON body"})
		return
	}

	res, err := s.Dispatcher.Dispatch(r.Context(), caller, &req)

	LogGatewayCall(r.RemoteAddr, &req, res, err)

	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(res); encodeErr != nil {
		s.Logger.Errorf("Failed to encode gateway result: %v", encodeErr)
	}
}

// writeError converts a classified gateway error into the HTTP contract:
// 401 for auth, 404 for a missing settings row, 400 for config/disabled/
// unsupported, 500 for upstream and driver failures.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		authErr     *fiscal.AuthError
		cfgErr      *fiscal.ConfigError
		disabled    *fiscal.DeviceDisabledError
		unsupported *fiscal.UnsupportedActionError
	)

	status := http.StatusInternalServerError
	class := "driver"

	switch {
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
		class = "auth"
	case errors.As(err, &cfgErr):
		status = http.StatusBadRequest
		class = "config"
		if cfgErr.NotFound {
			status = http.StatusNotFound
		}
	case errors.As(err, &disabled):
		status = http.StatusBadRequest
		class = "disabled"
	case errors.As(err, &unsupported):
		status = http.StatusBadRequest
		class = "unsupported"
	default:
		var upstream *fiscal.UpstreamError
		if errors.As(err, &upstream) {
			class = "upstream"
		}
	}

	metrics.GatewayErrorsTotal.WithLabelValues(class).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	hostname, _ := os.Hostname()
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": time.Since(serviceStartTime).Seconds(),
		"hostname":       hostname,
		"pid":            os.Getpid(),
	})
}

func (s *Server) recentHandler(w http.ResponseWriter, r *http.Request) {
	calls := RecentGatewayCalls()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"total_calls":  len(calls),
		"recent_calls": calls,
	})
}
