package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations, always
// addressed through their parent post.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type commentRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Body  string `json:"body"  validate:"required,min=10"`
}

type commentResponse struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// Create handles POST /api/posts/:postId/comments (authenticated users).
//
// @Summary      Create a comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string          true  "Post id"
// @Param        body    body      commentRequest  true  "Comment fields"
// @Success      201     {object}  commentResponse
// @Failure      404     {object}  map[string]string
// @Router       /api/posts/{postId}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	req, err := bindComment(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Create(c.Request().Context(), c.Param("postId"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// ListByPost handles GET /api/posts/:postId/comments.
//
// @Summary      List comments of a post
// @Tags         comments
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {array}   commentResponse
// @Failure      404     {object}  map[string]string
// @Router       /api/posts/{postId}/comments [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	comments, err := h.service.GetByPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}

	out := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, toCommentResponse(comment))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/posts/:postId/comments/:commentId.
//
// @Summary      Get a single comment of a post
// @Tags         comments
// @Produce      json
// @Param        postId     path      string  true  "Post id"
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  commentResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/posts/{postId}/comments/{commentId} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.service.GetByID(c.Request().Context(), c.Param("postId"), c.Param("commentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Update handles PUT /api/posts/:postId/comments/:commentId (authenticated users).
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId     path      string          true  "Post id"
// @Param        commentId  path      string          true  "Comment id"
// @Param        body       body      commentRequest  true  "Comment fields"
// @Success      200        {object}  commentResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/posts/{postId}/comments/{commentId} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	req, err := bindComment(c)
	if err != nil {
		return err
	}

	comment, err := h.service.Update(c.Request().Context(), c.Param("postId"), c.Param("commentId"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Delete handles DELETE /api/posts/:postId/comments/:commentId (authenticated users).
//
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        postId     path      string  true  "Post id"
// @Param        commentId  path      string  true  "Comment id"
// @Success      200        {object}  messageResponse
// @Failure      404        {object}  map[string]string
// @Router       /api/posts/{postId}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("postId"), c.Param("commentId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "comment deleted successfully"})
}

func bindComment(c echo.Context) (*commentRequest, error) {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

func (r *commentRequest) toInput() ports.CommentInput {
	return ports.CommentInput{Name: r.Name, Email: r.Email, Body: r.Body}
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Name:      c.Name,
		Email:     c.Email,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
