// Package http provides an HTTP-based implementation of pydocs.Fetcher.
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pydocs"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultCharset is the encoding every response body is decoded with,
// regardless of the charset the server declares.
const DefaultCharset = "utf-8"

// Ensure Fetcher implements pydocs.Fetcher at compile time.
var _ pydocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages with a single GET per call. It never retries.
type Fetcher struct {
	client    *http.Client
	transport http.RoundTripper
	timeout   time.Duration
	charset   string
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithTransport sets the round tripper used for requests, e.g. a caching one.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// WithCharset overrides the encoding response bodies are decoded with.
func WithCharset(label string) Option {
	return func(f *Fetcher) {
		f.charset = label
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		charset: DefaultCharset,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: f.transport,
	}

	return f
}

// Fetch retrieves url and decodes its body with the configured charset.
// All failures are returned as *pydocs.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pydocs.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &pydocs.FetchError{URL: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &pydocs.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &pydocs.FetchError{URL: url, StatusCode: resp.StatusCode, Err: errStatus(resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &pydocs.FetchError{URL: url, Err: err}
	}

	text, err := decode(body, f.charset)
	if err != nil {
		return nil, &pydocs.FetchError{URL: url, Err: err}
	}

	return &pydocs.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		Encoding:   f.charset,
		Body:       body,
		Text:       text,
		FromCache:  resp.Header.Get(pydocs.CacheHeader) == "1",
	}, nil
}

// decode converts body to a string using the named charset. Invalid
// sequences become U+FFFD.
func decode(body []byte, label string) (string, error) {
	r, err := charset.NewReaderLabel(label, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

type errStatus string

func (e errStatus) Error() string { return "unexpected status " + string(e) }
