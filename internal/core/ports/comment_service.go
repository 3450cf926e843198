package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CommentInput carries the writable fields of a comment.
type CommentInput struct {
	Name  string
	Email string
	Body  string
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	FindByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

// CommentService defines use-case operations for comments. Every operation
// addressing a single comment validates that it belongs to the given post.
type CommentService interface {
	Create(ctx context.Context, postID string, input CommentInput) (*domain.Comment, error)
	GetByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	GetByID(ctx context.Context, postID, commentID string) (*domain.Comment, error)
	Update(ctx context.Context, postID, commentID string, input CommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, postID, commentID string) error
}
