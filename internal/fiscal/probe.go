package fiscal

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Candidate is one endpoint shape to try against a device whose exact URL is
// not guaranteed by its firmware.
type Candidate struct {
	Method string
	Path   string
	Body   interface{}
}

// ProbeError aggregates which candidates were tried when none succeeded.
type ProbeError struct {
	Tried []string
	Last  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("all candidate endpoints failed (%s): last error: %v", strings.Join(e.Tried, ", "), e.Last)
}

func (e *ProbeError) Unwrap() error {
	return e.Last
}

// Probe tries candidates strictly one at a time, returning the first
// completed success. Candidates are never issued in parallel: a fiscal sale
// or a drawer-open sent to two endpoints at once could fire twice, and that
// side effect cannot be undone.
func (t *Transport) Probe(ctx context.Context, baseURL string, headers http.Header, candidates []Candidate, timeout time.Duration) (*CallResult, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidate endpoints to probe")
	}

	var (
		tried   []string
		lastErr error
	)
	for _, c := range candidates {
		label := c.Method + " " + c.Path
		res, err := t.Call(ctx, c.Method, baseURL+c.Path, headers, c.Body, timeout)
		if err == nil {
			return res, nil
		}
		t.logger.Debugf("Probe candidate %s failed: %v", label, err)
		tried = append(tried, label)
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return nil, &ProbeError{Tried: tried, Last: lastErr}
}
