package controllers

import (
	"log/slog"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{Logger: logger, Service: svc}
}

// registerRequest is the body for POST /api/events/{eventId}/attendees; the
// event id comes from the path.
type registerRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// ListByEvent godoc
// @Summary List an event's attendees
// @Tags attendees
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} domain.EventAttendee
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{id}/attendees [get]
func (c *AttendeeController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.ListByEvent(r.Context(), r.PathValue("id"))
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to fetch attendees")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, regs)
}

// Register godoc
// @Summary Register a user for an event
// @Tags attendees
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Param body body controllers.registerRequest true "User to register"
// @Success 201 {object} domain.EventAttendee
// @Failure 400 {object} helpers.ErrorResponse
// @Router /api/events/{eventId}/attendees [post]
func (c *AttendeeController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !helpers.DecodeAndValidate(w, r, &req, "Invalid attendee data") {
		return
	}

	in := domain.InsertEventAttendee{
		EventID: r.PathValue("eventId"),
		UserID:  req.UserID,
	}
	reg, err := c.Service.Register(r.Context(), in)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to register attendee")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, reg)
}

// Unregister godoc
// @Summary Remove a user's registration for an event
// @Tags attendees
// @Param eventId path string true "Event ID"
// @Param userId path string true "User ID"
// @Success 204
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventId}/attendees/{userId} [delete]
func (c *AttendeeController) Unregister(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Unregister(r.Context(), r.PathValue("eventId"), r.PathValue("userId")); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to remove attendee")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
