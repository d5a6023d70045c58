package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/planview/internal/config"
	"github.com/dgallion1/planview/internal/readmodel"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the read-only HTTP facade over the read model.
type Server struct {
	router chi.Router
	model  *readmodel.Model
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(model *readmodel.Model, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		model: model,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints. Assets stay public so <img> tags can load screenshots.
	r.Get("/health", s.handleHealth)
	r.Get(s.cfg.AssetPrefix+"/*", s.handleAsset)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/api/product", s.handleProduct)
		r.Get("/api/phases", s.handlePhases)
		r.Get("/api/sections", s.handleListSections)
		r.Get("/api/sections/{sectionID}", s.handleSection)
		r.Get("/api/sections/{sectionID}/screen-designs/{name}", s.handleScreenDesign)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
