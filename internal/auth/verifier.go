// Package auth consumes the caller-identity contract. The gateway only
// verifies that a caller token is known and, when a request names no
// location, asks which location the caller belongs to.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	goeen_log "github.com/eencloud/goeen/log"
)

// Caller is a verified point-of-sale identity.
type Caller struct {
	Token      string
	LocationID string
}

// Verifier checks caller credentials. Implementations are external
// collaborators as far as the gateway is concerned.
type Verifier interface {
	Verify(token string) (*Caller, bool)
}

// TokenVerifier holds a token -> location mapping, seeded statically and
// optionally refreshed from a control server.
type TokenVerifier struct {
	mu     sync.RWMutex
	tokens map[string]string
	logger *goeen_log.Logger
}

func NewTokenVerifier(tokens map[string]string, logger *goeen_log.Logger) *TokenVerifier {
	if tokens == nil {
		tokens = make(map[string]string)
	}
	return &TokenVerifier{tokens: tokens, logger: logger}
}

func (v *TokenVerifier) Verify(token string) (*Caller, bool) {
	if token == "" {
		return nil, false
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	location, ok := v.tokens[token]
	if !ok {
		return nil, false
	}
	return &Caller{Token: token, LocationID: location}, true
}

// StartRefresh polls the control server for the current token set until the
// context is cancelled. A fetch failure keeps the previous set.
func (v *TokenVerifier) StartRefresh(ctx context.Context, controlURL string, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := v.refresh(ctx, controlURL); err != nil {
					v.logger.Warningf("Caller token refresh failed: %v", err)
				}
			}
		}
	}()
}

func (v *TokenVerifier) refresh(ctx context.Context, controlURL string) error {
	reqCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, controlURL+"/caller-tokens", nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	var payload struct {
		Tokens []struct {
			Token      string `json:"token"`
			LocationID string `json:"location_id"`
		} `json:"tokens"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}
	if len(payload.Tokens) == 0 {
		return nil
	}

	next := make(map[string]string, len(payload.Tokens))
	for _, t := range payload.Tokens {
		next[t.Token] = t.LocationID
	}

	v.mu.Lock()
	v.tokens = next
	v.mu.Unlock()
	return nil
}

// ParseTokenSpec reads the GATEWAY_TOKENS wiring format:
// "token1=location1,token2=location2". A token without a location maps to "".
func ParseTokenSpec(spec string) map[string]string {
	tokens := make(map[string]string)
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i := strings.IndexByte(part, '='); i >= 0 {
			tokens[part[:i]] = part[i+1:]
		} else {
			tokens[part] = ""
		}
	}
	return tokens
}

// BearerToken extracts the caller credential from an Authorization header.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	return ""
}
