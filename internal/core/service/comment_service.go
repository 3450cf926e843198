package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// CommentService implements comment use cases. Every single-comment operation
// resolves both the post and the comment and rejects a mismatch.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	log      zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, posts ports.PostRepository, log zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, log: log}
}

func (s *CommentService) Create(ctx context.Context, postID string, input ports.CommentInput) (*domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:    post.ID,
		Name:      input.Name,
		Email:     input.Email,
		Body:      input.Body,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Str("comment_id", created.ID).Msg("comment created")
	return created, nil
}

func (s *CommentService) GetByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.FindByPost(ctx, postID)
}

func (s *CommentService) GetByID(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	return s.resolve(ctx, postID, commentID)
}

func (s *CommentService) Update(ctx context.Context, postID, commentID string, input ports.CommentInput) (*domain.Comment, error) {
	comment, err := s.resolve(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Name = input.Name
	comment.Email = input.Email
	comment.Body = input.Body

	return s.comments.Update(ctx, comment)
}

func (s *CommentService) Delete(ctx context.Context, postID, commentID string) error {
	if _, err := s.resolve(ctx, postID, commentID); err != nil {
		return err
	}
	return s.comments.Delete(ctx, commentID)
}

// resolve loads both records and enforces that the comment hangs off the post.
func (s *CommentService) resolve(ctx context.Context, postID, commentID string) (*domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != post.ID {
		return nil, domain.ErrCommentMismatch
	}
	return comment, nil
}
