package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/internal/service"
	"github.com/limbo/cocoon/pkg/httputil"
)

type UpdatePregnancyRequest struct {
	PregnancyStart *time.Time `json:"pregnancy_start"`
	PregnancyDue   *time.Time `json:"pregnancy_due"`
}

func (s *Server) GetPregnancy(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get pregnancy error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	profile, err := s.pregnancyService.GetProfile(ctx, uid)
	if err != nil {
		writePregnancyError(w, logger, "get pregnancy error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

func (s *Server) UpdatePregnancy(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update pregnancy error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdatePregnancyRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update pregnancy error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	profile, err := s.pregnancyService.UpdateProfile(ctx, uid, &service.UpdatePregnancyRequest{
		Start: req.PregnancyStart,
		Due:   req.PregnancyDue,
	})
	if err != nil {
		writePregnancyError(w, logger, "update pregnancy error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("pregnancy dates updated")
}

func (s *Server) ResetPregnancy(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reset pregnancy error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	if err = s.pregnancyService.ResetDates(ctx, uid); err != nil {
		writePregnancyError(w, logger, "reset pregnancy error", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("pregnancy dates reset")
}

func writePregnancyError(w http.ResponseWriter, logger *slog.Logger, prefix string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrPregnancyDatesRequired):
		logger.Error(prefix + ": no dates given")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(prefix + ": validation failed")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid pregnancy dates", err)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(prefix + ": unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	default:
		logger.Error(prefix+": service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while processing pregnancy dates", nil)
	}
}
