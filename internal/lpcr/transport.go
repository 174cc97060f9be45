package lpcr

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lpcr-submit/internal/common/errors"
	"lpcr-submit/internal/common/logger"
	"lpcr-submit/internal/common/metrics"
)

// Doer issues one HTTP request. Satisfied by the common http client wrapper.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Transport executes one logical POST with bounded retry on transport
// failure. A received HTTP response of any status is terminal: retrying a
// 4xx/5xx would resubmit a request the server already evaluated and risks
// duplicate report charges. Only failures that prove the server never durably
// processed the request are retried.
type Transport struct {
	client  Doer
	retries int
	backoff time.Duration
	log     logger.Logger

	// sleep is swapped out in tests to observe backoff without waiting.
	sleep func(time.Duration)
}

func NewTransport(client Doer, retries int, backoff time.Duration, log logger.Logger) *Transport {
	return &Transport{
		client:  client,
		retries: retries,
		backoff: backoff,
		log:     log,
		sleep:   time.Sleep,
	}
}

// Submit POSTs the payload to url, retrying transport-level failures with
// exponential backoff (backoff, 2x, 4x, ...) up to the configured retry
// count. The returned snapshot is set exactly when the error is nil.
func (t *Transport) Submit(ctx context.Context, url string, headers http.Header, payload RequestPayload) (*ResponseSnapshot, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header = headers.Clone()
		// net/http ignores a Host entry in the header map.
		if host := headers.Get("Host"); host != "" {
			req.Host = host
		}

		metrics.TransportAttemptsTotal.Inc()

		resp, err := t.client.Do(req)
		if err == nil {
			snapshot, err := snapshotResponse(resp)
			if err != nil {
				return nil, err
			}
			metrics.HTTPResponsesTotal.WithLabelValues(metrics.StatusClass(snapshot.StatusCode)).Inc()
			return snapshot, nil
		}

		if attempt >= t.retries {
			return nil, errors.NewTransportFailedError(err)
		}

		wait := t.backoff * time.Duration(1<<uint(attempt))
		t.log.Warn("transport failure, retrying", map[string]interface{}{
			"attempt":     attempt + 1,
			"maxRetries":  t.retries,
			"nextRetryIn": wait.String(),
			"error":       err.Error(),
		})
		metrics.TransportRetriesTotal.Inc()
		t.sleep(wait)
	}
}

// snapshotResponse drains the response and captures status, reason, headers
// and body. A body that is not valid JSON is kept as raw text.
func snapshotResponse(resp *http.Response) (*ResponseSnapshot, error) {
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	// Accept-Encoding is set explicitly on the request, which turns off the
	// stdlib's transparent gzip handling.
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err == nil {
			defer gz.Close()
			reader = gz
		}
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewTransportFailedError(fmt.Errorf("failed to read response body: %w", err))
	}

	headers := make(map[string]string, len(resp.Header))
	for name, values := range resp.Header {
		headers[name] = strings.Join(values, ", ")
	}

	var body interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		body = string(raw)
	}

	return &ResponseSnapshot{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Headers:    headers,
		Body:       body,
	}, nil
}

func reasonPhrase(resp *http.Response) string {
	prefix := fmt.Sprintf("%d ", resp.StatusCode)
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	return http.StatusText(resp.StatusCode)
}
