// Copyright 2023 Intrinsic Innovation LLC

// Package fetch retrieves remote documents over HTTP(S).
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	backoff "github.com/cenkalti/backoff/v4"
	log "github.com/golang/glog"
	"go.opencensus.io/trace"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

// ErrNotFound matches a StatusError for an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// StatusError is returned for responses outside of the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected response: %s", e.URL, e.Status)
}

// Is reports whether target is ErrNotFound and the response was a 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// permanent reports whether retrying the request cannot change the outcome.
func (e *StatusError) permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// Option allows setting client options.
type Option func(*Client)

// WithHTTPClient sets the http.Client used for requests. http.DefaultClient is used
// otherwise.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// WithMaxRetries sets how many times a failed request is retried. The default of
// zero makes exactly one attempt.
func WithMaxRetries(maxRetries int) Option {
	return func(client *Client) {
		client.maxRetries = maxRetries
	}
}

// Client downloads documents one at a time.
type Client struct {
	http       *http.Client
	maxRetries int
}

// NewClient creates a Client and applies opts.
func NewClient(opts ...Option) *Client {
	c := &Client{http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxRetries < 0 {
		c.maxRetries = 0
	}
	return c
}

// Fetch returns the body of the document at url.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, span := trace.StartSpan(ctx, "fetch.Fetch")
	defer span.End()
	span.AddAttributes(trace.StringAttribute("url", url))

	attempts := atomic.NewUint32(0)
	var body []byte
	err := backoff.Retry(func() error {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		attempt := attempts.Inc()
		b, err := c.get(ctx, url)
		if err == nil {
			body = b
			return nil
		}
		if c.maxRetries > 0 {
			log.Errorf("attempt %d/%d: failed to fetch %s: %v", attempt, c.maxRetries+1, url, err)
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.permanent() {
			return backoff.Permanent(err)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)), ctx))
	if err != nil {
		span.SetStatus(trace.Status{Code: trace.StatusCodeUnknown, Message: err.Error()})
		return nil, err
	}
	log.V(1).Infof("Fetched %s (%d bytes, %d attempt(s))", url, len(body), attempts.Load())
	return body, nil
}

func (c *Client) get(ctx context.Context, url string) (_ []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request for %s: %w", url, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer func() {
		err = multierr.Append(err, resp.Body.Close())
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return b, nil
}
