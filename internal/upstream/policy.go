// Package upstream holds the transport policy and error taxonomy shared by
// every outbound provider client.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy describes the retry behavior applied to outbound provider calls.
// The zero value performs a single attempt with no backoff.
type Policy struct {
	MaxRetries    uint64
	BackoffBase   time.Duration
	RetryStatuses []int
}

// DefaultPolicy mirrors the transport behavior the gateway has always had:
// three retries with exponential backoff from 400ms on transient statuses,
// for GET and POST alike.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:    3,
		BackoffBase:   400 * time.Millisecond,
		RetryStatuses: []int{429, 500, 502, 503, 504},
	}
}

// Result is a fully read upstream response.
type Result struct {
	StatusCode int
	Body       []byte
}

// Do executes the request produced by build, retrying transient failures.
// build runs once per attempt so request bodies can be replayed. When
// retries are exhausted on a retryable status the last response is handed
// back rather than an error; callers map non-success statuses themselves.
func (p Policy) Do(ctx context.Context, client *http.Client, build func() (*http.Request, error)) (Result, error) {
	var last Result
	var haveResponse bool

	op := func() error {
		req, err := build()
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := client.Do(req.WithContext(ctx))
		if err != nil {
			haveResponse = false
			return err
		}
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			haveResponse = false
			return err
		}
		last = Result{StatusCode: resp.StatusCode, Body: body}
		haveResponse = true
		if p.retryable(resp.StatusCode) {
			return fmt.Errorf("retryable upstream status %d", resp.StatusCode)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	if p.BackoffBase > 0 {
		bo.InitialInterval = p.BackoffBase
	}
	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, p.MaxRetries), ctx))
	if err != nil {
		if haveResponse {
			return last, nil
		}
		return Result{}, &TransportError{Err: err}
	}
	return last, nil
}

func (p Policy) retryable(status int) bool {
	for _, s := range p.RetryStatuses {
		if s == status {
			return true
		}
	}
	return false
}
