package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quillstack/quill-api/internal/api"
	apiMiddleware "github.com/quillstack/quill-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.hasher,
		app.hasher,
	)
	postHandler := api.NewPostHandler(app.postStore)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Register routes. The path shapes mirror the API's original public
	// surface, bulk listing included.
	r.Route("/api/v1", func(r chi.Router) {
		// The API is consumed cross-origin by browser frontends; allow
		// any origin, matching the permissive policy it has always had.
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "HEAD", "POST", "PUT", "DELETE", "PATCH"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))

		// Authentication endpoints (public)
		r.Post("/user/signup", authHandler.Signup)
		r.Post("/user/signin", authHandler.Signin)

		// Public post reads
		r.Get("/blogs/blog/{id}", postHandler.GetPost)
		r.Get("/blog/bulk", postHandler.ListPosts)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/blog", postHandler.CreatePost)
			r.Put("/blog", postHandler.UpdatePost)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
