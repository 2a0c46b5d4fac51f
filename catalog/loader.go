package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

// ErrCatalogUnavailable means every load attempt failed. It is reported once
// per Load call, never once per attempt.
var ErrCatalogUnavailable = errors.New("catalog endpoint unavailable")

// Status is the externally visible loader state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

const (
	defaultAttempts       = 2
	defaultAttemptTimeout = 8 * time.Second
	defaultRetryDelay     = 2 * time.Second
	defaultMinVisible     = 600 * time.Millisecond
)

// Loader fetches the remote sheet and rebuilds the Index. A Load makes up to
// Attempts sequential tries, each bounded by AttemptTimeout, with RetryDelay
// between them. The Loading status is held for at least MinVisible so a fast
// network does not flash the indicator; the data itself is never delayed.
type Loader struct {
	URL            string
	Client         *http.Client
	Attempts       int
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
	MinVisible     time.Duration
	Index          *Index

	mu     sync.Mutex
	status Status
	gen    int
}

func NewLoader(url string, index *Index) *Loader {
	return &Loader{
		URL:            url,
		Client:         &http.Client{},
		Attempts:       defaultAttempts,
		AttemptTimeout: defaultAttemptTimeout,
		RetryDelay:     defaultRetryDelay,
		MinVisible:     defaultMinVisible,
		Index:          index,
		status:         StatusIdle,
	}
}

// Status reports the current loader state.
func (l *Loader) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Load runs one bounded-attempt fetch cycle. On success the Index is rebuilt
// wholesale before Load returns; on exhaustion the Index keeps its previous
// contents and a single aggregated ErrCatalogUnavailable comes back.
func (l *Loader) Load(ctx context.Context) error {
	started := time.Now()
	gen := l.enterLoading()

	var lastErr error
	for attempt := 1; attempt <= l.Attempts; attempt++ {
		if attempt > 1 {
			log.Printf("⏳ catalog: retrying load in %s (attempt %d/%d)", l.RetryDelay, attempt, l.Attempts)
			select {
			case <-time.After(l.RetryDelay):
			case <-ctx.Done():
				l.finish(gen, started, StatusFailed)
				return fmt.Errorf("%w: %v", ErrCatalogUnavailable, ctx.Err())
			}
		}

		rows, err := l.fetch(ctx)
		if err == nil {
			products := Normalize(rows)
			l.Index.Rebuild(products)
			l.finish(gen, started, StatusReady)
			log.Printf("✅ catalog: loaded %d products", len(products))
			return nil
		}
		lastErr = err
	}

	l.finish(gen, started, StatusFailed)
	return fmt.Errorf("%w after %d attempts: %v", ErrCatalogUnavailable, l.Attempts, lastErr)
}

func (l *Loader) fetch(ctx context.Context) ([]RawRow, error) {
	ctx, cancel := context.WithTimeout(ctx, l.AttemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach catalog endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint error (%d)", resp.StatusCode)
	}

	var parsed struct {
		Data []RawRow `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %v", err)
	}
	if parsed.Data == nil {
		return nil, errors.New("catalog response has no data array")
	}
	return parsed.Data, nil
}

func (l *Loader) enterLoading() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	l.status = StatusLoading
	return l.gen
}

// finish flips the visible status, no earlier than MinVisible after the load
// started. A newer Load supersedes any pending flip.
func (l *Loader) finish(gen int, started time.Time, status Status) {
	if wait := l.MinVisible - time.Since(started); wait > 0 {
		time.AfterFunc(wait, func() { l.setStatus(gen, status) })
		return
	}
	l.setStatus(gen, status)
}

func (l *Loader) setStatus(gen int, status Status) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	l.status = status
}
