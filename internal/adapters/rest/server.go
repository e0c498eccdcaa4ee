package rest

import (
	"context"
	"net/http"

	core_port "backoffice-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server - HTTP-сервер бэк-офиса.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(
	port string,
	propertyHandlers *PropertyHandlers,
	userHandlers *UserHandlers,
	dbPing func(ctx context.Context) error,
	baseLogger core_port.LoggerPort,
) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/properties", propertyHandlers.List)
	r.Post("/properties", propertyHandlers.Create)
	r.Get("/properties/{propertyID}", propertyHandlers.GetByID)
	r.Patch("/properties/{propertyID}", propertyHandlers.Update)
	r.Delete("/properties/{propertyID}", propertyHandlers.Delete)

	r.Get("/users", userHandlers.List)
	r.Post("/users", userHandlers.Create)
	r.Post("/auth/login", userHandlers.Login)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := dbPing(req.Context()); err != nil {
			WriteJSONError(w, http.StatusServiceUnavailable, "datastore unreachable")
			return
		}
		RespondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
