package controllers

import (
	"log/slog"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

type FavoriteController struct {
	Logger  *slog.Logger
	Service domain.FavoriteService
}

func NewFavoriteController(logger *slog.Logger, svc domain.FavoriteService) *FavoriteController {
	return &FavoriteController{Logger: logger, Service: svc}
}

// ListByUser godoc
// @Summary List a user's favorites
// @Tags favorites
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.Favorite
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/users/{userId}/favorites [get]
func (c *FavoriteController) ListByUser(w http.ResponseWriter, r *http.Request) {
	favs, err := c.Service.ListByUser(r.Context(), r.PathValue("userId"))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, favs)
}

// Add godoc
// @Summary Save an event as a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param body body domain.InsertFavorite true "Favorite fields"
// @Success 201 {object} domain.Favorite
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/favorites [post]
func (c *FavoriteController) Add(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertFavorite
	if !helpers.DecodeAndValidate(w, r, &in, "Invalid favorite data") {
		return
	}

	fav, err := c.Service.Add(r.Context(), in)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, fav)
}

// Remove godoc
// @Summary Remove a favorite
// @Tags favorites
// @Param userId path string true "User ID"
// @Param eventId path string true "Event ID"
// @Success 204
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/users/{userId}/favorites/{eventId} [delete]
func (c *FavoriteController) Remove(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Remove(r.Context(), r.PathValue("userId"), r.PathValue("eventId")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
