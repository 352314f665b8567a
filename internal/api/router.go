package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zemedic/zemedic-be/internal/api/handlers"
	"github.com/zemedic/zemedic-be/internal/auth"
	"github.com/zemedic/zemedic-be/internal/metrics"
	"github.com/zemedic/zemedic-be/internal/models"
	"github.com/zemedic/zemedic-be/internal/services"
)

// NewRouter creates and configures a new Chi router. collector and gatherer
// may be nil, in which case no metrics are recorded or exposed.
func NewRouter(
	tokens *auth.TokenService,
	userService services.UserServiceProvider,
	analysisService services.AnalysisServiceProvider,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	if collector != nil {
		r.Use(collector.Middleware)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens)
	userHandler := handlers.NewUserHandler(userService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, collector)
	modelHandler := handlers.NewModelHandler()

	requireAuth := auth.Middleware(tokens, userService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Get("/health", handlers.Health)
		r.Post("/token", authHandler.Token)
		r.Post("/users", userHandler.Register)

		// Bearer-protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/users/me", userHandler.Me)
			r.Post("/analyze", analysisHandler.Analyze)
			r.Get("/analyses", analysisHandler.List)
			r.Get("/analyses/{id}", analysisHandler.Get)

			// Role-gated endpoints
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRoles(models.RoleDoctor, models.RoleAdmin))
				r.Post("/model/train", modelHandler.Train)
			})
		})
	})

	if gatherer != nil {
		r.Handle("/metrics", metrics.Handler(gatherer))
	}

	return r
}
