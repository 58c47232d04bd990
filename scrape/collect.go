package scrape

import (
	"context"

	"github.com/fwojciec/pydocs"
	"golang.org/x/sync/errgroup"
)

type result[T any] struct {
	position int
	url      string
	value    T
	err      error
}

// collect applies fn to every url and returns the successful values in
// input order. Failures are logged and dropped. Cancellation of ctx aborts
// the whole collection.
func collect[T any](ctx context.Context, s *Scraper, urls []string, fn func(ctx context.Context, url string) (T, error)) ([]T, error) {
	concurrency := s.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	resultCh := make(chan result[T], len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				v, err := fn(gctx, url)
				resultCh <- result[T]{position: i, url: url, value: v, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]result[T], len(urls))
	completed := 0
	for r := range resultCh {
		completed++
		results[r.position] = r
		if r.err != nil {
			s.logger().Error("sub-page failed", "url", r.url, "err", r.err)
		}
		if s.Progress != nil {
			s.Progress(pydocs.Progress{
				URL:       r.url,
				Completed: completed,
				Total:     len(urls),
				Error:     r.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]T, 0, len(urls))
	for _, r := range results {
		if r.err == nil {
			values = append(values, r.value)
		}
	}
	return values, nil
}
