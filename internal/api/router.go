package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pawfinder/adoption-backend/internal/api/handlers"
	"github.com/pawfinder/adoption-backend/internal/api/middleware"
	"github.com/pawfinder/adoption-backend/internal/config"
	"github.com/pawfinder/adoption-backend/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	centerHandler := handlers.NewCenterHandler(services.Center)
	commentHandler := handlers.NewCommentHandler(services.Comment)

	// Public auth routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Route("/api", func(r chi.Router) {
		// Center routes
		r.Route("/centers", func(r chi.Router) {
			r.Get("/", centerHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", centerHandler.Create)
			})
		})

		// Comment routes
		r.Route("/comments", func(r chi.Router) {
			r.Get("/", commentHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", commentHandler.Create)
			})
		})
	})

	// Static pages, with an SPA-style fallback: unknown routes get the
	// default page rather than a 404.
	serveStatic := func(page string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(cfg.StaticDir, page))
		}
	}
	r.Get("/", serveStatic("index.html"))
	r.Get("/home.html", serveStatic("home.html"))
	r.Get("/info.html", serveStatic("info.html"))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		index := filepath.Join(cfg.StaticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	})

	return r
}
