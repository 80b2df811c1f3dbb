package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{Logger: logger, Service: svc}
}

// Get godoc
// @Summary Get a user profile
// @Description The password field is never part of the response.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/users/{id} [get]
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	u, err := c.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, u)
}

// Create godoc
// @Summary Create a user
// @Description The password field is never part of the response.
// @Tags users
// @Accept json
// @Produce json
// @Param body body domain.InsertUser true "User fields"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/users [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertUser
	if !helpers.DecodeAndValidate(w, r, &in, "Invalid user data") {
		return
	}

	u, err := c.Service.Create(r.Context(), in)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, u)
}
