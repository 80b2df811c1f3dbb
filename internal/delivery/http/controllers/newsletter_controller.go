package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventlane/internal/delivery/http/helpers"
	"eventlane/internal/domain"
)

type NewsletterController struct {
	Logger  *slog.Logger
	Service domain.NewsletterService
}

func NewNewsletterController(logger *slog.Logger, svc domain.NewsletterService) *NewsletterController {
	return &NewsletterController{Logger: logger, Service: svc}
}

// Subscribe godoc
// @Summary Subscribe an email address to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param body body domain.InsertNewsletterSubscription true "Email address"
// @Success 201 {object} domain.NewsletterSubscription
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Router /api/newsletter/subscribe [post]
func (c *NewsletterController) Subscribe(w http.ResponseWriter, r *http.Request) {
	var in domain.InsertNewsletterSubscription
	if !helpers.DecodeAndValidate(w, r, &in, "Invalid subscription data") {
		return
	}

	sub, err := c.Service.Subscribe(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteError(w, http.StatusConflict, "Email already subscribed")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, sub)
}
