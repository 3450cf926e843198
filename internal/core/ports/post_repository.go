package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// ListPostsFilter carries all query parameters for the paged post listing.
type ListPostsFilter struct {
	Page    int    // 0-based page number
	Size    int    // rows per page (capped by the service)
	SortBy  string // field name, e.g. "title" or "created_at"
	SortDir string // "asc" or "desc"
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns one page of posts and the total count across all pages.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
	FindByCategory(ctx context.Context, categoryID string) ([]*domain.Post, error)
	// Search matches the keyword against title, description and content.
	Search(ctx context.Context, keyword string) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	// IncrementViews atomically bumps the post's view counter.
	IncrementViews(ctx context.Context, id string, delta int64) error
}
