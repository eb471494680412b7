// Package debounce rate-limits keystroke-driven query submission before it
// reaches the engine. The debouncer is a two-state machine: idle, or pending
// with one armed timer. The newest call within the window replaces the
// pending one, which then delivers nothing.
package debounce

import (
	"context"
	"sync"
	"time"

	"github.com/retailpulse/searchd/internal/domain/search/query"
	"github.com/retailpulse/searchd/internal/usecase/search"
)

// DefaultWindow is the debounce window when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Searcher is the wrapped engine operation.
type Searcher interface {
	Search(ctx context.Context, q query.Query) search.Response
}

// state of the machine.
type state int

const (
	stateIdle state = iota
	statePending
)

// Debouncer issues only the last query submitted within the window.
// Superseded calls run no search and append no analytics record.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	engine  Searcher
	st      state
	timer   *time.Timer
	pending query.Query
	deliver func(search.Response)
	stopped bool
}

// New creates a debouncer over the engine. window <= 0 uses the default.
func New(engine Searcher, window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window, engine: engine, st: stateIdle}
}

// Submit schedules the query, superseding any pending one. deliver is called
// with the response iff this query is still the latest when the window
// elapses. deliver may be nil.
func (d *Debouncer) Submit(ctx context.Context, q query.Query, deliver func(search.Response)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if d.st == statePending && d.timer != nil {
		d.timer.Stop()
	}
	d.pending = q
	d.deliver = deliver
	d.st = statePending
	d.timer = time.AfterFunc(d.window, func() { d.fire(ctx) })
}

// fire runs the pending query, transitioning back to idle.
func (d *Debouncer) fire(ctx context.Context) {
	d.mu.Lock()
	if d.st != statePending || d.stopped {
		d.mu.Unlock()
		return
	}
	q, deliver := d.pending, d.deliver
	d.st = stateIdle
	d.timer = nil
	d.deliver = nil
	d.mu.Unlock()

	resp := d.engine.Search(ctx, q)
	if deliver != nil {
		deliver(resp)
	}
}

// Flush executes a pending query immediately. Deterministic tests and
// shutdown use it instead of waiting out the window.
func (d *Debouncer) Flush(ctx context.Context) {
	d.mu.Lock()
	if d.st == statePending && d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire(ctx)
}

// Stop cancels any pending query and rejects further submissions.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.st = stateIdle
	d.deliver = nil
}
