package jobpage

import "context"

// Fetcher retrieves a snapshot document from a URL.
type Fetcher interface {
	// Fetch returns the HTML served at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
