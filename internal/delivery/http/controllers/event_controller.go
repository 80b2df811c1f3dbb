package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// List godoc
// @Summary List events
// @Description Lists events, optionally filtered by ?category= or ?featured=true. The featured filter takes precedence.
// @Tags events
// @Produce json
// @Param category query string false "Category ID"
// @Param featured query string false "Pass \"true\" to list featured events only"
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.EventFilter{
		CategoryID:   r.URL.Query().Get("category"),
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
	}

	events, err := c.Service.List(r.Context(), filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// Get godoc
// @Summary Get one event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := c.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ev)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param body body domain.InsertEvent true "Event fields"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertEvent
	if !helpers.DecodeAndValidate(w, r, &in, "Invalid event data") {
		return
	}

	ev, err := c.Service.Create(r.Context(), in)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, ev)
}

// Update godoc
// @Summary Partially update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body domain.EventPatch true "Fields to change"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.EventPatch
	if !helpers.DecodeAndValidate(w, r, &patch, "Invalid event data") {
		return
	}

	ev, err := c.Service.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ev)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
