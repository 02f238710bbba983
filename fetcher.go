package vidmeta

import "context"

// Fetcher retrieves HTML documents from URLs. Fetching is a collaborator of
// the extraction core, never part of it: the core assumes a complete
// document is handed to it.
type Fetcher interface {
	// Fetch retrieves the HTML content from the given URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
