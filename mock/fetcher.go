package mock

import (
	"context"

	"github.com/fwojciec/pydocs"
)

var _ pydocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pydocs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pydocs.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pydocs.FetchResult, error) {
	return f.FetchFn(ctx, url)
}
