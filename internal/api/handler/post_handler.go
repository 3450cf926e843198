package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/ports"
)

// ViewEnqueuer accepts post view events for asynchronous counting.
type ViewEnqueuer interface {
	Enqueue(view ports.PostViewInput)
}

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
	views   ViewEnqueuer
}

func NewPostHandler(service ports.PostService, views ViewEnqueuer) *PostHandler {
	return &PostHandler{service: service, views: views}
}

// Create handles POST /api/posts (admin only).
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post fields"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	req, err := bindPost(c)
	if err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPostResponse(post))
}

// List handles GET /api/posts with paging and sorting.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Param        pageNo    query     int     false  "0-based page number"
// @Param        pageSize  query     int     false  "page size"
// @Param        sortBy    query     string  false  "sort field"
// @Param        sortDir   query     string  false  "asc or desc"
// @Success      200       {object}  postPageResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("pageNo"))
	size, _ := strconv.Atoi(c.QueryParam("pageSize"))

	result, err := h.service.List(c.Request().Context(), ports.ListPostsFilter{
		Page:    page,
		Size:    size,
		SortBy:  c.QueryParam("sortBy"),
		SortDir: c.QueryParam("sortDir"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postPageResponse{
		Content:       toPostResponses(result.Content),
		PageNo:        result.PageNo,
		PageSize:      result.PageSize,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
		Last:          result.Last,
	})
}

// Get handles GET /api/posts/:id. Each successful read reports a view event
// for asynchronous counting.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	h.views.Enqueue(ports.PostViewInput{
		PostID:    post.ID,
		ViewerKey: c.RealIP(),
		Timestamp: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, toPostResponse(post))
}

// GetByCategory handles GET /api/posts/category/:id.
//
// @Summary      List posts in a category
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {array}   postResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/category/{id} [get]
func (h *PostHandler) GetByCategory(c echo.Context) error {
	posts, err := h.service.GetByCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// Search handles GET /api/posts/search?keyword=.
//
// @Summary      Search posts by keyword
// @Tags         posts
// @Produce      json
// @Param        keyword  query     string  true  "Search keyword"
// @Success      200      {array}   postResponse
// @Router       /api/posts/search [get]
func (h *PostHandler) Search(c echo.Context) error {
	posts, err := h.service.Search(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(posts))
}

// Update handles PUT /api/posts/:id (admin only).
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post id"
// @Param        body  body      postRequest  true  "Post fields"
// @Success      200   {object}  postResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	req, err := bindPost(c)
	if err != nil {
		return err
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(post))
}

// Delete handles DELETE /api/posts/:id (admin only).
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted successfully"})
}

func bindPost(c echo.Context) (*postRequest, error) {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

func (r *postRequest) toInput() ports.PostInput {
	return ports.PostInput{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		CategoryID:  r.CategoryID,
	}
}
