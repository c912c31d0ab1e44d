package driven

import "context"

// Fetcher retrieves a remote resource.
// Implementations must return an error wrapping domain.ErrTransport for
// network failures and for any non-success response, even when the
// underlying client reports no error.
type Fetcher interface {
	// Fetch returns the full response body for url.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
