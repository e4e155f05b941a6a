package api

import (
	"sync"
	"time"

	"fiscal-gateway/internal/fiscal"
)

// In-memory ring of recent gateway calls for field debugging. Bounded and
// never persisted; the gateway stays stateless across restarts.

type gatewayCallLog struct {
	Timestamp  time.Time `json:"timestamp"`
	RemoteAddr string    `json:"remote_addr"`
	Action     string    `json:"action"`
	LocationID string    `json:"location_id,omitempty"`
	Success    bool      `json:"success"`
	Message    string    `json:"message,omitempty"`
	Error      string    `json:"error,omitempty"`
}

var (
	recentCallsMutex sync.RWMutex
	recentCalls      []gatewayCallLog
	maxRecentCalls   = 200
)

// LogGatewayCall records the outcome of one gateway call. Order payloads are
// deliberately not captured.
func LogGatewayCall(remoteAddr string, req *fiscal.Request, res *fiscal.Result, err error) {
	entry := gatewayCallLog{
		Timestamp:  time.Now(),
		RemoteAddr: remoteAddr,
		Action:     req.Action,
		LocationID: req.LocationID,
	}
	if err != nil {
		entry.Error = err.Error()
	} else if res != nil {
		entry.Success = res.Success
		entry.Message = res.Message
	}

	recentCallsMutex.Lock()
	defer recentCallsMutex.Unlock()

	recentCalls = append(recentCalls, entry)
	if len(recentCalls) > maxRecentCalls {
		recentCalls = recentCalls[len(recentCalls)-maxRecentCalls:]
	}
}

// RecentGatewayCalls returns a copy of the ring, newest last.
func RecentGatewayCalls() []gatewayCallLog {
	recentCallsMutex.RLock()
	defer recentCallsMutex.RUnlock()

	calls := make([]gatewayCallLog, len(recentCalls))
	copy(calls, recentCalls)
	return calls
}
