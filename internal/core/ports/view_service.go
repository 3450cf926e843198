package ports

import (
	"context"
	"time"
)

// PostViewInput is one read of a post, reported by the transport layer and
// processed asynchronously.
type PostViewInput struct {
	PostID    string
	ViewerKey string // opaque viewer identity, typically the remote IP
	Timestamp time.Time
}

// ViewService counts post views, deduplicating repeated reads by the same
// viewer within a time window.
type ViewService interface {
	Process(ctx context.Context, view PostViewInput) error
}
