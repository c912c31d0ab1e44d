package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
	"github.com/custodia-labs/arbeidssokere/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// maxBodyBytes bounds the dataset size read into memory.
const maxBodyBytes = 64 << 20

const userAgent = "arbeidssokere/1.0"

var errInvalidRequest = errors.New("invalid request")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap classifies every status error as a transport failure.
func (e *StatusError) Unwrap() error {
	return domain.ErrTransport
}

// Retryable reports whether the status is worth retrying.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Config configures a Fetcher.
type Config struct {
	// Timeout bounds each attempt. Zero means no per-attempt timeout.
	Timeout time.Duration
	// Retries is the number of extra attempts after the first.
	Retries int
	// RateLimit paces attempts.
	RateLimit RateLimitConfig
}

// Fetcher downloads a URL into memory.
type Fetcher struct {
	client  *http.Client
	limiter *RateLimiter
	retries int
}

// New creates a fetcher. A nil client uses a fresh http.Client.
func New(client *http.Client, cfg Config) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	if cfg.Timeout > 0 {
		c := *client
		c.Timeout = cfg.Timeout
		client = &c
	}
	return &Fetcher{
		client:  client,
		limiter: NewRateLimiter(cfg.RateLimit),
		retries: max(0, cfg.Retries),
	}
}

// Fetch returns the response body for url.
// Failures wrap domain.ErrTransport; a *StatusError is available through
// errors.As for non-2xx responses.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= f.retries; attempt++ {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
		}

		body, retryAfter, err := f.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable(ctx, err) || attempt == f.retries {
			break
		}
		logger.Warn("Fetch attempt %d/%d failed: %v", attempt+1, f.retries+1, err)
		f.limiter.Backoff(retryAfter)
	}

	return nil, lastErr
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w: %w", domain.ErrTransport, errInvalidRequest, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, parseRetryAfter(resp.Header.Get("Retry-After")), &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read body: %w", domain.ErrTransport, err)
	}
	if len(body) > maxBodyBytes {
		return nil, 0, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrTransport, maxBodyBytes)
	}

	logger.Debug("GET %s -> %d (%d bytes)", url, resp.StatusCode, len(body))
	return body, 0, nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, errInvalidRequest) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return true
}

// parseRetryAfter reads the delay-seconds form of Retry-After.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
