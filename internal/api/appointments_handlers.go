package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/internal/service"
	"github.com/limbo/cocoon/pkg/entity"
	"github.com/limbo/cocoon/pkg/httputil"
	"github.com/limbo/cocoon/pkg/optional"
)

type CreateAppointmentRequest struct {
	Date     time.Time `json:"date"`
	Kind     string    `json:"kind"`
	Location *string   `json:"location"`
	Doctor   *string   `json:"doctor"`
	Notes    *string   `json:"notes"`
}

// Fields missing from the body are left untouched. Present text fields are stored as sent.
type UpdateAppointmentRequest struct {
	Date     optional.Value[time.Time] `json:"date"`
	Kind     optional.Value[string]    `json:"kind"`
	Location optional.Value[string]    `json:"location"`
	Doctor   optional.Value[string]    `json:"doctor"`
	Notes    optional.Value[string]    `json:"notes"`
}

func (s *Server) ListAppointments(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list appointments error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	list, err := s.appointmentsService.List(ctx, uid)
	if err != nil {
		logger.Error("list appointments error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting appointments list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, list)
	logger.Info("appointments provided")
}

func (s *Server) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create appointment error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateAppointmentRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create appointment error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	a, err := s.appointmentsService.Create(ctx, uid, &service.CreateAppointmentRequest{
		Date:     req.Date,
		Kind:     req.Kind,
		Location: req.Location,
		Doctor:   req.Doctor,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create appointment error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid appointment", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create appointment error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create appointment: user doesn't exist", nil)
		default:
			logger.Error("create appointment error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating appointment", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, a)
	logger.Info("appointment created", slog.String("appointment_id", a.ID.String()))
}

func (s *Server) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update appointment error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("update appointment error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid appointment id in path value", nil)
		return
	}
	var req UpdateAppointmentRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update appointment error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	a, err := s.appointmentsService.Update(ctx, uid, id, &entity.AppointmentUpdate{
		Date:     req.Date,
		Kind:     req.Kind,
		Location: req.Location,
		Doctor:   req.Doctor,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNothingToUpdate):
			logger.Error("update appointment error: empty update")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update appointment error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid appointment", err)
		case errors.Is(err, errorvalues.ErrAppointmentNotFound):
			logger.Error("update appointment error: not found or foreign")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "appointment doesn't exist", nil)
		default:
			logger.Error("update appointment error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating appointment", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, a)
	logger.Info("appointment updated", slog.String("appointment_id", id.String()))
}

func (s *Server) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("appointment deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("appointment deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid appointment id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	err = s.appointmentsService.Delete(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAppointmentNotFound) {
			logger.Error("appointment deletion error: not found or foreign")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "appointment doesn't exist", nil)
			return
		}
		logger.Error("appointment deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting appointment", nil)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("appointment deleted", slog.String("appointment_id", id.String()))
}
