package handler

import (
	"time"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// --- Request / Response types ---

type postRequest struct {
	Title       string `json:"title"       validate:"required,min=2"`
	Description string `json:"description" validate:"required,min=10"`
	Content     string `json:"content"     validate:"required"`
	CategoryID  string `json:"category_id" validate:"required"`
}

type postResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	CategoryID  string `json:"category_id"`
	ViewCount   int64  `json:"view_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type postPageResponse struct {
	Content       []postResponse `json:"content"`
	PageNo        int            `json:"page_no"`
	PageSize      int            `json:"page_size"`
	TotalElements int64          `json:"total_elements"`
	TotalPages    int            `json:"total_pages"`
	Last          bool           `json:"last"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		CategoryID:  p.CategoryID,
		ViewCount:   p.ViewCount,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toPostResponses(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
