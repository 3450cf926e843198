package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

type stubDedup struct {
	seen    map[string]bool
	failing bool
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, postID, viewerKey string, _ time.Time) (bool, error) {
	if d.failing {
		return false, errors.New("dedup store unavailable")
	}
	return d.seen[postID+"|"+viewerKey], nil
}

func (d *stubDedup) Mark(_ context.Context, postID, viewerKey string, _ time.Time) error {
	if d.failing {
		return errors.New("dedup store unavailable")
	}
	d.seen[postID+"|"+viewerKey] = true
	return nil
}

func TestViewService_CountsFirstViewOnly(t *testing.T) {
	posts := newStubPostRepo()
	post, _ := posts.Create(context.Background(), &domain.Post{Title: "p"})
	svc := NewViewService(posts, newStubDedup(), zerolog.Nop())

	view := ports.PostViewInput{PostID: post.ID, ViewerKey: "10.0.0.1", Timestamp: time.Now()}
	for i := 0; i < 3; i++ {
		if err := svc.Process(context.Background(), view); err != nil {
			t.Fatalf("process failed: %v", err)
		}
	}

	if got := posts.increments[post.ID]; got != 1 {
		t.Fatalf("expected exactly 1 counted view, got %d", got)
	}
}

func TestViewService_DistinctViewersAllCount(t *testing.T) {
	posts := newStubPostRepo()
	post, _ := posts.Create(context.Background(), &domain.Post{Title: "p"})
	svc := NewViewService(posts, newStubDedup(), zerolog.Nop())

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		view := ports.PostViewInput{PostID: post.ID, ViewerKey: ip, Timestamp: time.Now()}
		if err := svc.Process(context.Background(), view); err != nil {
			t.Fatalf("process failed: %v", err)
		}
	}

	if got := posts.increments[post.ID]; got != 3 {
		t.Fatalf("expected 3 counted views, got %d", got)
	}
}

func TestViewService_DedupFailureStillCounts(t *testing.T) {
	posts := newStubPostRepo()
	post, _ := posts.Create(context.Background(), &domain.Post{Title: "p"})
	svc := NewViewService(posts, &stubDedup{failing: true}, zerolog.Nop())

	view := ports.PostViewInput{PostID: post.ID, ViewerKey: "10.0.0.1", Timestamp: time.Now()}
	if err := svc.Process(context.Background(), view); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	if got := posts.increments[post.ID]; got != 1 {
		t.Fatalf("dedup outage must not lose the view, got %d", got)
	}
}

func TestViewService_MissingPost(t *testing.T) {
	svc := NewViewService(newStubPostRepo(), newStubDedup(), zerolog.Nop())

	view := ports.PostViewInput{PostID: "missing", ViewerKey: "10.0.0.1", Timestamp: time.Now()}
	if err := svc.Process(context.Background(), view); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
