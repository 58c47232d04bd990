package pydocs

import "context"

// FetchResult is a retrieved page. Encoding is the charset the body was
// decoded with, which is fixed by the fetcher rather than taken from the
// server's headers.
type FetchResult struct {
	URL        string
	StatusCode int
	Encoding   string
	Body       []byte
	Text       string // Body decoded with Encoding
	FromCache  bool
}

// Fetcher retrieves pages over HTTP.
type Fetcher interface {
	// Fetch performs a single GET for url. Every failure, including non-2xx
	// responses, is reported as a *FetchError naming url.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// CacheHeader is set to "1" on responses replayed from the HTTP cache.
const CacheHeader = "X-From-Cache"
