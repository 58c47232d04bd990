package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/pydocs"
)

// Compile-time interface verification.
var _ http.RoundTripper = (*Cache)(nil)

// Cache is an http.RoundTripper that stores successful GET responses in
// SQLite and replays them on later requests for the same URL. Replayed
// responses carry the pydocs.CacheHeader header.
//
// Cache failures never fail a request: they are logged and the request
// goes to the network instead.
type Cache struct {
	db     *DB
	next   http.RoundTripper
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL treats entries not confirmed within d as misses. Zero, the
// default, keeps entries until they are cleared.
func WithTTL(d time.Duration) CacheOption {
	return func(c *Cache) {
		c.ttl = d
	}
}

// WithClock overrides the time source used for entry timestamps.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// WithLogger sets the logger that receives cache read and write failures.
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		c.logger = logger
	}
}

// NewCache creates a Cache that forwards misses to next. A nil next uses
// http.DefaultTransport.
func NewCache(db *DB, next http.RoundTripper, opts ...CacheOption) *Cache {
	if next == nil {
		next = http.DefaultTransport
	}
	c := &Cache{
		db:     db,
		next:   next,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RoundTrip serves req from the cache when possible. Only GET requests are
// cached and only 200 responses are stored.
func (c *Cache) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.next.RoundTrip(req)
	}

	ctx := req.Context()
	key := cacheKey(req.Method, req.URL.String())

	resp, err := c.lookup(ctx, key, req)
	if err != nil {
		c.logger.Warn("cache read failed", "url", req.URL.String(), "err", err)
	}
	if resp != nil {
		return resp, nil
	}

	resp, err = c.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if err := c.store(ctx, key, req, resp, body); err != nil {
		c.logger.Warn("cache write failed", "url", req.URL.String(), "err", err)
	}
	return resp, nil
}

// Clear removes every cached response and returns how many were removed.
func (c *Cache) Clear(ctx context.Context) (int, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM responses`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Len returns the number of cached responses.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (c *Cache) lookup(ctx context.Context, key string, req *http.Request) (*http.Response, error) {
	var (
		status    int
		rawHeader string
		body      []byte
		checkedAt string
	)
	err := c.db.QueryRowContext(ctx, `
		SELECT status, header, body, checked_at
		FROM responses
		WHERE key = ?
	`, key).Scan(&status, &rawHeader, &body, &checkedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache entry: %w", err)
	}

	checked, err := parseRFC3339(checkedAt, "checked_at")
	if err != nil {
		return nil, err
	}
	// Stale entries stay in place so store can tell whether the body changed.
	if c.ttl > 0 && c.now().Sub(checked) > c.ttl {
		return nil, nil
	}

	header := http.Header{}
	if err := json.Unmarshal([]byte(rawHeader), &header); err != nil {
		return nil, fmt.Errorf("failed to decode cached header: %w", err)
	}
	header.Set(pydocs.CacheHeader, "1")
	header.Set("Content-Length", strconv.Itoa(len(body)))

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}, nil
}

// store saves a response. When the body hash matches the stored entry only
// the status, headers and checked_at are refreshed and the body is left as is.
func (c *Cache) store(ctx context.Context, key string, req *http.Request, resp *http.Response, body []byte) error {
	header, err := json.Marshal(resp.Header)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}
	bodyHash := hashString(string(body))
	now := c.now().UTC().Format(time.RFC3339Nano)

	var storedHash string
	err = c.db.QueryRowContext(ctx, `SELECT body_hash FROM responses WHERE key = ?`, key).Scan(&storedHash)
	switch {
	case err == nil && storedHash == bodyHash:
		_, err = c.db.ExecContext(ctx, `
			UPDATE responses SET status = ?, header = ?, checked_at = ?
			WHERE key = ?
		`, resp.StatusCode, string(header), now, key)
		if err != nil {
			return fmt.Errorf("failed to refresh cache entry: %w", err)
		}
		return nil
	case err != nil && err != sql.ErrNoRows:
		return fmt.Errorf("failed to read cache entry: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO responses (key, method, url, status, header, body, body_hash, created_at, checked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			status = excluded.status,
			header = excluded.header,
			body = excluded.body,
			body_hash = excluded.body_hash,
			created_at = excluded.created_at,
			checked_at = excluded.checked_at
	`, key, req.Method, req.URL.String(), resp.StatusCode, string(header), body,
		bodyHash, now, now)
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

func cacheKey(method, url string) string {
	return hashString(method + " " + url)
}
