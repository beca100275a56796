package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPollInterval    = 10 * time.Second
	DefaultPostSubmitDelay = 2 * time.Second
)

// TotalReconciler keeps a cached copy of the server-side total for one table.
// It fetches once on Start, then on every tick until Stop. A failed fetch
// keeps the previous value. Results that land after Stop are discarded.
type TotalReconciler struct {
	source   TotalSource
	slug     string
	table    string
	interval time.Duration

	mu      sync.RWMutex
	total   decimal.Decimal
	known   bool
	lastErr error
	ctx     context.Context
	cancel  context.CancelFunc

	wg sync.WaitGroup
}

func NewTotalReconciler(source TotalSource, slug, table string, interval time.Duration) *TotalReconciler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &TotalReconciler{
		source:   source,
		slug:     slug,
		table:    table,
		interval: interval,
	}
}

func (r *TotalReconciler) Table() string {
	return r.table
}

// Start begins polling. Calling Start on a running reconciler is a no-op.
func (r *TotalReconciler) Start(ctx context.Context) {
	r.mu.Lock()
	if r.cancel != nil {
		r.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.ctx, r.cancel = runCtx, cancel
	r.mu.Unlock()

	r.wg.Add(1)
	go r.poll(runCtx)
}

func (r *TotalReconciler) poll(ctx context.Context) {
	defer r.wg.Done()

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// RefreshAfter schedules one extra fetch after delay, on top of the regular
// polling. It does nothing when the reconciler is not running.
func (r *TotalReconciler) RefreshAfter(delay time.Duration) {
	r.mu.RLock()
	ctx := r.ctx
	r.mu.RUnlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			r.refresh(ctx)
		}
	}()
}

// Refresh fetches the total now and reports the outcome.
func (r *TotalReconciler) Refresh(ctx context.Context) error {
	r.mu.RLock()
	runCtx := r.ctx
	r.mu.RUnlock()
	if runCtx == nil {
		return r.store(ctx, r.fetch(ctx))
	}

	// Tie the fetch to the running generation so Stop still wins.
	merged, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(runCtx, cancel)
	defer stop()
	return r.store(runCtx, r.fetch(merged))
}

// Stop cancels polling and pending delayed fetches and waits for them to exit.
func (r *TotalReconciler) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.ctx = nil
	if cancel != nil {
		cancel()
	}
	r.mu.Unlock()

	r.wg.Wait()
}

// Total returns the cached total and whether any fetch has succeeded yet.
func (r *TotalReconciler) Total() (decimal.Decimal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.total, r.known
}

// Err returns the error of the latest fetch, nil after a success.
func (r *TotalReconciler) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

type fetchResult struct {
	total decimal.Decimal
	err   error
}

func (r *TotalReconciler) fetch(ctx context.Context) fetchResult {
	total, err := r.source.CurrentTotal(ctx, r.slug, r.table)
	return fetchResult{total: total, err: err}
}

func (r *TotalReconciler) refresh(ctx context.Context) {
	_ = r.store(ctx, r.fetch(ctx))
}

// store applies a fetch result unless ctx, the generation it was issued
// under, has been cancelled in the meantime.
func (r *TotalReconciler) store(ctx context.Context, result fetchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if result.err != nil {
		r.lastErr = fmt.Errorf("%w: %w", ErrTotalPollFailed, result.err)
		log.Printf("[reconciler] WARNING: total for %s table %s not refreshed: %v", r.slug, r.table, result.err)
		return r.lastErr
	}
	r.total = result.total
	r.known = true
	r.lastErr = nil
	return nil
}
