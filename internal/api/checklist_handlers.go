package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/pkg/entity"
	"github.com/limbo/cocoon/pkg/httputil"
)

const notFoundMessage = "element not found"

func (s *Server) GetChecklist(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get checklist error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	checklistType, ok := entity.ParseChecklistType(chi.URLParam(r, "type"))
	if !ok {
		logger.Error("get checklist error: unknown type", slog.String("type", chi.URLParam(r, "type")))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown checklist type", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	payload, err := s.checklistService.Get(ctx, uid, checklistType)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUnknownChecklistType):
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown checklist type", nil)
		case errors.Is(err, errorvalues.ErrChecklistInit):
			logger.Error("get checklist error: initialization failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "couldn't initialize checklist", nil)
		default:
			logger.Error("get checklist error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while loading checklist", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, payload)
	logger.Info("checklist provided", slog.String("type", string(checklistType)))
}

func (s *Server) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle item error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("toggle item error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid item id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	payload, err := s.checklistService.ToggleItem(ctx, uid, itemID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFoundOrUnauthorized) {
			logger.Error("toggle item error: item not found or foreign")
			httputil.WriteErrorResponse(w, http.StatusNotFound, notFoundMessage, nil)
			return
		}
		logger.Error("toggle item error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while toggling item", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, payload)
	logger.Info("item toggled", slog.String("item_id", itemID.String()))
}

func (s *Server) ResetChecklist(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reset checklist error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	checklistID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("reset checklist error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid checklist id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	payload, err := s.checklistService.Reset(ctx, uid, checklistID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFoundOrUnauthorized) {
			logger.Error("reset checklist error: checklist not found or foreign")
			httputil.WriteErrorResponse(w, http.StatusNotFound, notFoundMessage, nil)
			return
		}
		logger.Error("reset checklist error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting checklist", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, payload)
	logger.Info("checklist reset", slog.String("checklist_id", checklistID.String()))
}
