package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PostService implements post use cases. Writes are already role-gated by the
// transport layer; the service only validates referential integrity.
type PostService struct {
	posts      ports.PostRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewPostService(posts ports.PostRepository, categories ports.CategoryRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, categories: categories, log: log}
}

func (s *PostService) Create(ctx context.Context, input ports.PostInput) (*domain.Post, error) {
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		CategoryID:  input.CategoryID,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("title", created.Title).Msg("post created")
	return created, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context, filter ports.ListPostsFilter) (*ports.PostPage, error) {
	filter = normalizeFilter(filter)

	posts, total, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filter.Size
	if int(total)%filter.Size != 0 {
		totalPages++
	}

	return &ports.PostPage{
		Content:       posts,
		PageNo:        filter.Page,
		PageSize:      filter.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          filter.Page >= totalPages-1,
	}, nil
}

func (s *PostService) GetByCategory(ctx context.Context, categoryID string) ([]*domain.Post, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.posts.FindByCategory(ctx, categoryID)
}

func (s *PostService) Search(ctx context.Context, keyword string) ([]*domain.Post, error) {
	return s.posts.Search(ctx, strings.TrimSpace(keyword))
}

func (s *PostService) Update(ctx context.Context, id string, input ports.PostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Description = input.Description
	post.Content = input.Content
	post.CategoryID = input.CategoryID

	return s.posts.Update(ctx, post)
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if _, err := s.posts.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

// normalizeFilter applies listing defaults and caps the page size.
func normalizeFilter(f ports.ListPostsFilter) ports.ListPostsFilter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.Size <= 0 {
		f.Size = defaultPageSize
	}
	if f.Size > maxPageSize {
		f.Size = maxPageSize
	}
	if f.SortBy == "" {
		f.SortBy = "created_at"
	}
	if !strings.EqualFold(f.SortDir, "desc") {
		f.SortDir = "asc"
	} else {
		f.SortDir = "desc"
	}
	return f
}
