// Package http wires controllers onto the request router.
package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventlane/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	categoryController *controllers.CategoryController,
	eventController *controllers.EventController,
	attendeeController *controllers.AttendeeController,
	favoriteController *controllers.FavoriteController,
	userController *controllers.UserController,
	newsletterController *controllers.NewsletterController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Categories
	mux.HandleFunc("GET /api/categories", categoryController.List)
	mux.HandleFunc("POST /api/categories", categoryController.Create)

	// Events
	mux.HandleFunc("GET /api/events", eventController.List)
	mux.HandleFunc("GET /api/events/{id}", eventController.Get)
	mux.HandleFunc("POST /api/events", eventController.Create)
	mux.HandleFunc("PUT /api/events/{id}", eventController.Update)
	mux.HandleFunc("DELETE /api/events/{id}", eventController.Delete)

	// Attendees
	mux.HandleFunc("GET /api/events/{id}/attendees", attendeeController.ListByEvent)
	mux.HandleFunc("POST /api/events/{eventId}/attendees", attendeeController.Register)
	mux.HandleFunc("DELETE /api/events/{eventId}/attendees/{userId}", attendeeController.Unregister)

	// Favorites
	mux.HandleFunc("GET /api/users/{userId}/favorites", favoriteController.ListByUser)
	mux.HandleFunc("POST /api/favorites", favoriteController.Add)
	mux.HandleFunc("DELETE /api/users/{userId}/favorites/{eventId}", favoriteController.Remove)

	// Users
	mux.HandleFunc("GET /api/users/{id}", userController.Get)
	mux.HandleFunc("POST /api/users", userController.Create)

	// Newsletter
	mux.HandleFunc("POST /api/newsletter/subscribe", newsletterController.Subscribe)

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
