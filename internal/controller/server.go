package controller

import (
	"encoding/json"
	"net/http"

	"github.com/Freeeeeet/reservation_service/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Server HTTP-фасад над Ledger и AdminGate
type Server struct {
	ledger    *service.Ledger
	admin     *service.AdminGate
	staticDir string
	logger    *zap.Logger
}

func NewServer(ledger *service.Ledger, admin *service.AdminGate, staticDir string, logger *zap.Logger) *Server {
	return &Server{
		ledger:    ledger,
		admin:     admin,
		staticDir: staticDir,
		logger:    logger,
	}
}

// Router собирает маршруты API
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", s.handleConfig)
		r.Get("/reservations", s.handleReservations)
		r.Post("/reserve", s.handleReserve)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", s.handleAdminLogin)
			r.Post("/settings", s.handleAdminSettings)
			r.Post("/delete-reservation", s.handleAdminDelete)
		})
	})

	if s.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.staticDir)))
	}

	return r
}

func (s *Server) renderJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) renderError(w http.ResponseWriter, status int, message string) {
	s.renderJSON(w, status, map[string]string{"error": message})
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.renderError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
