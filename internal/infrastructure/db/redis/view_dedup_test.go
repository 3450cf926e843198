package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestDedup(t *testing.T) (*ViewDedup, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewViewDedup(client), mr
}

func TestViewDedup_SameWindow(t *testing.T) {
	dedup, _ := newTestDedup(t)
	ctx := context.Background()
	ts := time.Date(2026, 8, 28, 10, 15, 0, 0, time.UTC)

	dup, err := dedup.IsDuplicate(ctx, "post-1", "10.0.0.1", ts)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if dup {
		t.Fatalf("first view reported as duplicate")
	}

	if err := dedup.Mark(ctx, "post-1", "10.0.0.1", ts); err != nil {
		t.Fatalf("mark: %v", err)
	}

	// Later reads within the same hour window collapse to the first view.
	dup, err = dedup.IsDuplicate(ctx, "post-1", "10.0.0.1", ts.Add(40*time.Minute))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !dup {
		t.Fatalf("repeat view in same window not deduplicated")
	}
}

func TestViewDedup_DistinctKeys(t *testing.T) {
	dedup, _ := newTestDedup(t)
	ctx := context.Background()
	ts := time.Date(2026, 8, 28, 10, 15, 0, 0, time.UTC)

	if err := dedup.Mark(ctx, "post-1", "10.0.0.1", ts); err != nil {
		t.Fatalf("mark: %v", err)
	}

	cases := []struct {
		name      string
		postID    string
		viewerKey string
		ts        time.Time
	}{
		{"other post", "post-2", "10.0.0.1", ts},
		{"other viewer", "post-1", "10.0.0.2", ts},
		{"next window", "post-1", "10.0.0.1", ts.Add(time.Hour)},
	}
	for _, tc := range cases {
		dup, err := dedup.IsDuplicate(ctx, tc.postID, tc.viewerKey, tc.ts)
		if err != nil {
			t.Fatalf("%s: check: %v", tc.name, err)
		}
		if dup {
			t.Fatalf("%s: unexpectedly deduplicated", tc.name)
		}
	}
}

func TestViewDedup_MarkExpires(t *testing.T) {
	dedup, mr := newTestDedup(t)
	ctx := context.Background()
	ts := time.Now()

	if err := dedup.Mark(ctx, "post-1", "10.0.0.1", ts); err != nil {
		t.Fatalf("mark: %v", err)
	}

	mr.FastForward(viewWindow + time.Minute)

	dup, err := dedup.IsDuplicate(ctx, "post-1", "10.0.0.1", ts)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if dup {
		t.Fatalf("mark survived past its window")
	}
}
