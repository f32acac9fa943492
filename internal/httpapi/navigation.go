package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// retryableStatus mirrors original_source/src/utils.py's
// requests_retry_session status_forcelist (500, 502, 504).
func retryableStatus(code int) bool {
	return code == http.StatusInternalServerError ||
		code == http.StatusBadGateway ||
		code == http.StatusGatewayTimeout
}

// NavigationClient pushes a computed PlanningResponse downstream to the
// navigation service, matching original_source/src/risks.py's
// update_risks PUT call, retried via
// original_source/src/utils.py's requests_retry_session policy (3 attempts,
// backoff factor 0.3, retry on 500/502/504).
type NavigationClient struct {
	baseURL string
	http    *http.Client
}

// NewNavigationClient builds a NavigationClient targeting baseURL (e.g.
// "http://navigation:8000").
func NewNavigationClient(baseURL string) *NavigationClient {
	return &NavigationClient{baseURL: baseURL, http: &http.Client{Timeout: 5 * time.Second}}
}

// Push PUTs resp to the navigation service's /map endpoint, retrying per
// the spec.md §7 retry policy. Returns the response body on success.
func (c *NavigationClient) Push(ctx context.Context, resp PlanningResponse) ([]byte, error) {
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("httpapi: encoding navigation push body: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 300 * time.Millisecond // backoff_factor=0.3 in seconds
	bo.Multiplier = 2
	bo.MaxElapsedTime = 5 * time.Second
	policy := backoff.WithMaxRetries(bo, 2) // 3 total attempts

	var result []byte
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/map", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		httpResp, err := c.http.Do(req)
		if err != nil {
			return err // connect-phase failure: retry
		}
		defer httpResp.Body.Close()

		data, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return err // read-phase failure: retry
		}

		if retryableStatus(httpResp.StatusCode) {
			return fmt.Errorf("httpapi: navigation service returned %d", httpResp.StatusCode)
		}
		if httpResp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("httpapi: navigation service returned %d", httpResp.StatusCode))
		}

		result = data
		return nil
	}

	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("httpapi: pushing to navigation service: %w", err)
	}
	return result, nil
}
