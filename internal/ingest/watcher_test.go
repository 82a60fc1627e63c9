package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startForward(t *testing.T, cfg WatchConfig) (chan fsnotify.Event, chan error, chan string, chan error, func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	events := make(chan fsnotify.Event)
	watchErrs := make(chan error)
	evCh := make(chan string, 64)
	errCh := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		forward(ctx, cfg, events, watchErrs, evCh, errCh)
		close(done)
	}()

	stop := func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("forward loop did not stop")
		}
	}
	return events, watchErrs, evCh, errCh, stop
}

func waitEvent(t *testing.T, evCh <-chan string) string {
	t.Helper()
	select {
	case p := <-evCh:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func TestWatcherDebounceCoalesces(t *testing.T) {
	events, _, evCh, _, stop := startForward(t, WatchConfig{Root: "docs", Debounce: 20 * time.Millisecond})
	defer stop()

	// a burst of writes on the same file must collapse into one emission,
	// even when the debounce timer fires while events are still arriving
	for i := 0; i < 10; i++ {
		events <- fsnotify.Event{Name: "docs/escritura.pdf", Op: fsnotify.Write}
	}
	events <- fsnotify.Event{Name: "docs/contrato.pdf", Op: fsnotify.Create}

	got := map[string]bool{}
	got[waitEvent(t, evCh)] = true
	got[waitEvent(t, evCh)] = true
	assert.True(t, got["docs/escritura.pdf"])
	assert.True(t, got["docs/contrato.pdf"])

	select {
	case p := <-evCh:
		t.Fatalf("unexpected extra event %q", p)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestWatcherEmitsImmediatelyWithoutDebounce(t *testing.T) {
	events, _, evCh, _, stop := startForward(t, WatchConfig{Root: "docs"})
	defer stop()

	events <- fsnotify.Event{Name: "docs/acta.pdf", Op: fsnotify.Write}
	assert.Equal(t, "docs/acta.pdf", waitEvent(t, evCh))
}

func TestWatcherFiltersEvents(t *testing.T) {
	events, _, evCh, _, stop := startForward(t, WatchConfig{Root: "docs"})
	defer stop()

	events <- fsnotify.Event{Name: "docs/notas.txt", Op: fsnotify.Create}
	events <- fsnotify.Event{Name: "docs/viejo.pdf", Op: fsnotify.Chmod}
	events <- fsnotify.Event{Name: "docs/nuevo.pdf", Op: fsnotify.Create}

	assert.Equal(t, "docs/nuevo.pdf", waitEvent(t, evCh), "non-pdf and chmod events must be dropped")
}

func TestWatcherBurstDuringFlushes(t *testing.T) {
	events, _, evCh, _, stop := startForward(t, WatchConfig{Root: "docs", Debounce: time.Millisecond})
	defer stop()

	const n = 40
	seen := map[string]bool{}
	collected := make(chan map[string]bool, 1)
	go func() {
		for len(seen) < n {
			select {
			case p := <-evCh:
				seen[p] = true
			case <-time.After(2 * time.Second):
				collected <- seen
				return
			}
		}
		collected <- seen
	}()

	// interleave arrivals with firing debounce timers
	for i := 0; i < n; i++ {
		events <- fsnotify.Event{Name: fmt.Sprintf("docs/doc-%02d.pdf", i), Op: fsnotify.Create}
		if i%5 == 0 {
			time.Sleep(3 * time.Millisecond)
		}
	}

	got := <-collected
	require.Len(t, got, n, "every distinct file must be emitted exactly once overall")
}

func TestWatcherForwardsErrors(t *testing.T) {
	_, watchErrs, _, errCh, stop := startForward(t, WatchConfig{Root: "docs"})
	defer stop()

	watchErrs <- errors.New("inotify queue overflow")

	select {
	case err := <-errCh:
		assert.EqualError(t, err, "inotify queue overflow")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for forwarded error")
	}
}

func TestStartWatcherRequiresRoot(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	require.Error(t, err)
}
