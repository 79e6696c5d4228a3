package controller

import (
	"errors"
	"net/http"

	"github.com/Freeeeeet/reservation_service/internal/model"
	"github.com/Freeeeeet/reservation_service/internal/service"
	"go.uber.org/zap"
)

type configResponse struct {
	Teachers    []model.TeacherConfig `json:"teachers"`
	StorageMode string                `json:"storageMode"`
}

// handleConfig публичная конфигурация: преподаватели и режим хранения
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	s.renderJSON(w, http.StatusOK, configResponse{
		Teachers:    s.ledger.Teachers(r.Context()),
		StorageMode: s.ledger.StorageMode(),
	})
}

// handleReservations все брони без токенов
func (s *Server) handleReservations(w http.ResponseWriter, r *http.Request) {
	s.renderJSON(w, http.StatusOK, s.ledger.ListSafe(r.Context()))
}

type reserveRequest struct {
	Teacher     string `json:"teacher"`
	Time        string `json:"time"`
	StudentName string `json:"studentName"`
	SecretToken string `json:"secretToken"`
}

type reserveResponse struct {
	Success     bool                `json:"success"`
	Reservation *reservationCreated `json:"reservation,omitempty"`
}

type reservationCreated struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

func (s *Server) handleReserve(w http.ResponseWriter, r *http.Request) {
	var req reserveRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	result, err := s.ledger.Reserve(r.Context(), req.Teacher, req.Time, req.StudentName, req.SecretToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadRequest):
			s.renderError(w, http.StatusBadRequest, "Missing teacher or time")
		case errors.Is(err, service.ErrUnauthorized):
			s.renderError(w, http.StatusForbidden, "Unauthorized: invalid token")
		default:
			s.logger.Error("Reserve failed", zap.Error(err))
			s.renderError(w, http.StatusInternalServerError, "Failed to save reservation")
		}
		return
	}

	resp := reserveResponse{Success: true}
	if result != nil {
		resp.Reservation = &reservationCreated{ID: result.ID, Token: result.Token}
	}
	s.renderJSON(w, http.StatusOK, resp)
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	proof, err := s.admin.Login(r.Context(), req.Password)
	if err != nil {
		s.renderError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	s.renderJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   proof,
	})
}

type adminSettingsRequest struct {
	Token    string                `json:"token"`
	Teachers []model.TeacherConfig `json:"teachers"`
}

func (s *Server) handleAdminSettings(w http.ResponseWriter, r *http.Request) {
	var req adminSettingsRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	if err := s.admin.ReplaceTeachers(r.Context(), req.Token, req.Teachers); err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			s.renderError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		s.logger.Error("Replace teachers failed", zap.Error(err))
		s.renderError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	s.renderJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type adminDeleteRequest struct {
	Token   string `json:"token"`
	Teacher string `json:"teacher"`
	Time    string `json:"time"`
}

func (s *Server) handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	var req adminDeleteRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	err := s.admin.ForceDelete(r.Context(), req.Token, req.Teacher, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			s.renderError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, service.ErrNotFound):
			s.renderError(w, http.StatusNotFound, "Reservation not found (already deleted?)")
		default:
			s.logger.Error("Force delete failed", zap.Error(err))
			s.renderError(w, http.StatusInternalServerError, "Failed to delete reservation")
		}
		return
	}

	s.renderJSON(w, http.StatusOK, map[string]bool{"success": true})
}
