package debounce

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/retailpulse/searchd/internal/domain/search/query"
	"github.com/retailpulse/searchd/internal/usecase/search"
)

// recordingSearcher captures the queries that actually reach the engine.
type recordingSearcher struct {
	mu      sync.Mutex
	queries []string
}

func (r *recordingSearcher) Search(_ context.Context, q query.Query) search.Response {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q.Text())
	return search.Response{Total: 1}
}

func (r *recordingSearcher) executed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.queries))
	copy(out, r.queries)
	return out
}

func TestSubmit_LastCallWins(t *testing.T) {
	eng := &recordingSearcher{}
	d := New(eng, time.Hour) // window long enough that only Flush fires
	defer d.Stop()

	var delivered []string
	var mu sync.Mutex
	record := func(resp search.Response) {
		mu.Lock()
		defer mu.Unlock()
		delivered = append(delivered, "yes")
	}

	d.Submit(context.Background(), query.New("r"), record)
	d.Submit(context.Background(), query.New("re"), record)
	d.Submit(context.Background(), query.New("revenue"), record)
	d.Flush(context.Background())

	got := eng.executed()
	if len(got) != 1 || got[0] != "revenue" {
		t.Fatalf("executed queries: %v, want [revenue]", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 1 {
		t.Errorf("deliver called %d times, want once (superseded calls deliver nothing)", len(delivered))
	}
}

func TestSubmit_FiresAfterWindow(t *testing.T) {
	eng := &recordingSearcher{}
	d := New(eng, 10*time.Millisecond)
	defer d.Stop()

	done := make(chan search.Response, 1)
	d.Submit(context.Background(), query.New("orders"), func(resp search.Response) {
		done <- resp
	})

	select {
	case resp := <-done:
		if resp.Total != 1 {
			t.Errorf("response: %+v", resp)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced query never fired")
	}
	if got := eng.executed(); len(got) != 1 || got[0] != "orders" {
		t.Errorf("executed: %v", got)
	}
}

func TestFlush_NoopWhenIdle(t *testing.T) {
	eng := &recordingSearcher{}
	d := New(eng, time.Hour)
	defer d.Stop()

	d.Flush(context.Background())
	if got := eng.executed(); len(got) != 0 {
		t.Errorf("idle flush must run nothing, got %v", got)
	}
}

func TestStop_CancelsPending(t *testing.T) {
	eng := &recordingSearcher{}
	d := New(eng, 10*time.Millisecond)

	d.Submit(context.Background(), query.New("revenue"), nil)
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	if got := eng.executed(); len(got) != 0 {
		t.Errorf("stopped debouncer must not fire, got %v", got)
	}

	d.Submit(context.Background(), query.New("after stop"), nil)
	d.Flush(context.Background())
	if got := eng.executed(); len(got) != 0 {
		t.Errorf("submissions after Stop must be rejected, got %v", got)
	}
}

func TestNew_WindowDefault(t *testing.T) {
	d := New(&recordingSearcher{}, 0)
	if d.window != DefaultWindow {
		t.Errorf("window: got %v, want %v", d.window, DefaultWindow)
	}
}
