package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	Name        string `json:"name"        validate:"required,min=2"`
	Description string `json:"description"`
}

type categoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /api/categories (admin only).
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category fields"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	req, err := bindCategory(c)
	if err != nil {
		return err
	}

	category, err := h.service.Create(c.Request().Context(), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

// Get handles GET /api/categories/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  categoryResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// List handles GET /api/categories.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  categoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}
	return c.JSON(http.StatusOK, out)
}

// Update handles PUT /api/categories/:id (admin only).
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Category id"
// @Param        body  body      categoryRequest  true  "Category fields"
// @Success      200   {object}  categoryResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	req, err := bindCategory(c)
	if err != nil {
		return err
	}

	category, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Delete handles DELETE /api/categories/:id (admin only).
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "category deleted successfully"})
}

func bindCategory(c echo.Context) (*categoryRequest, error) {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}
