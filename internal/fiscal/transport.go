package fiscal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	goeen_log "github.com/eencloud/goeen/log"
)

const maxResponseBody = 1 << 20

// CallResult is a completed upstream exchange.
type CallResult struct {
	Status int
	Body   []byte
}

// JSON decodes the response body into a generic value; vendor responses are
// passed through opaquely, so a non-JSON body just comes back as nil.
func (r *CallResult) JSON() interface{} {
	var v interface{}
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil
	}
	return v
}

// Transport performs single outbound HTTP calls with an explicit per-call
// timeout budget. The client is built per call; the gateway holds no
// connection state between invocations.
type Transport struct {
	logger *goeen_log.Logger
}

func NewTransport(logger *goeen_log.Logger) *Transport {
	return &Transport{logger: logger}
}

// Call sends one request and classifies the outcome: a 2xx response returns
// the body, a non-2xx response returns an UpstreamError carrying the status,
// and an exceeded budget returns an UpstreamError with the timeout marker.
func (t *Transport) Call(ctx context.Context, method, url string, headers http.Header, body interface{}, timeout time.Duration) (*CallResult, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	client := &http.Client{Timeout: timeout}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		if isTimeout(err) {
			t.logger.Warningf("Upstream call %s %s timed out after %v", method, url, time.Since(start))
			return nil, &UpstreamError{Timeout: true}
		}
		return nil, fmt.Errorf("upstream call failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		if isTimeout(err) {
			return nil, &UpstreamError{Timeout: true}
		}
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	t.logger.Debugf("Upstream %s %s -> %d (%d bytes, %v)", method, url, resp.StatusCode, len(data), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: truncate(data, 256)}
	}

	return &CallResult{Status: resp.StatusCode, Body: data}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n])
	}
	return string(b)
}
