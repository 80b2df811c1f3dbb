package controllers

import (
	"log/slog"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

type CategoryController struct {
	Logger  *slog.Logger
	Service domain.CategoryService
}

func NewCategoryController(logger *slog.Logger, svc domain.CategoryService) *CategoryController {
	return &CategoryController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/categories [get]
func (c *CategoryController) List(w http.ResponseWriter, r *http.Request) {
	cats, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, cats)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param body body domain.InsertCategory true "Category fields"
// @Success 201 {object} domain.Category
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/categories [post]
func (c *CategoryController) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertCategory
	if !helpers.DecodeAndValidate(w, r, &in, "Invalid category data") {
		return
	}

	cat, err := c.Service.Create(r.Context(), in)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, cat)
}
