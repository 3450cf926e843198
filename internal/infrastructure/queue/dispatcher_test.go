package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/ports"
)

type recordingViewService struct {
	mu        sync.Mutex
	processed []ports.PostViewInput
	failOn    string
}

func (s *recordingViewService) Process(_ context.Context, view ports.PostViewInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if view.PostID == s.failOn {
		return errors.New("processing failed")
	}
	s.processed = append(s.processed, view)
	return nil
}

func (s *recordingViewService) snapshot() []ports.PostViewInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.PostViewInput(nil), s.processed...)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestDispatcher_ProcessesEnqueuedViews(t *testing.T) {
	svc := &recordingViewService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	want := 20
	for i := 0; i < want; i++ {
		d.Enqueue(ports.PostViewInput{
			PostID:    fmt.Sprintf("post-%d", i),
			ViewerKey: "10.0.0.1",
			Timestamp: time.Now(),
		})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == want })
}

func TestDispatcher_SamePostKeepsOrder(t *testing.T) {
	svc := &recordingViewService{}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	n := 50
	for i := 0; i < n; i++ {
		d.Enqueue(ports.PostViewInput{
			PostID:    "hot-post",
			ViewerKey: fmt.Sprintf("viewer-%d", i),
			Timestamp: time.Now(),
		})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == n })

	for i, view := range svc.snapshot() {
		if want := fmt.Sprintf("viewer-%d", i); view.ViewerKey != want {
			t.Fatalf("event %d out of order: got %s, want %s", i, view.ViewerKey, want)
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, &recordingViewService{}, zerolog.Nop())

	for _, id := range []string{"a", "post-123", "646f63756d656e74"} {
		first := d.shardIndex(id)
		if first < 0 || first >= 8 {
			t.Fatalf("shard index out of range: %d", first)
		}
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard index for %q changed: %d vs %d", id, got, first)
			}
		}
	}
}

func TestDispatcher_FailuresDoNotStopWorker(t *testing.T) {
	svc := &recordingViewService{failOn: "broken"}
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.PostViewInput{PostID: "broken", ViewerKey: "v", Timestamp: time.Now()})
	d.Enqueue(ports.PostViewInput{PostID: "fine", ViewerKey: "v", Timestamp: time.Now()})

	waitFor(t, func() bool {
		views := svc.snapshot()
		return len(views) == 1 && views[0].PostID == "fine"
	})
}
