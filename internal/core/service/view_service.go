package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/ports"
)

// ViewDedup abstracts the viewer-dedup store (Redis).
type ViewDedup interface {
	IsDuplicate(ctx context.Context, postID, viewerKey string, ts time.Time) (bool, error)
	Mark(ctx context.Context, postID, viewerKey string, ts time.Time) error
}

type viewService struct {
	posts ports.PostRepository
	dedup ViewDedup
	log   zerolog.Logger
}

// NewViewService returns a ViewService that counts each viewer once per
// dedup window and bumps the post's view counter.
func NewViewService(posts ports.PostRepository, dedup ViewDedup, log zerolog.Logger) ports.ViewService {
	return &viewService{posts: posts, dedup: dedup, log: log}
}

func (s *viewService) Process(ctx context.Context, view ports.PostViewInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, view.PostID, view.ViewerKey, view.Timestamp)
	if err != nil {
		// Dedup store trouble must not lose the view; count it anyway.
		s.log.Warn().Err(err).Str("post_id", view.PostID).Msg("view dedup check failed, counting anyway")
	} else if isDup {
		s.log.Debug().Str("post_id", view.PostID).Msg("duplicate view skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, view.PostID, view.ViewerKey, view.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("post_id", view.PostID).Msg("failed to set view dedup key")
	}

	if err := s.posts.IncrementViews(ctx, view.PostID, 1); err != nil {
		return fmt.Errorf("process view: %w", err)
	}
	return nil
}
