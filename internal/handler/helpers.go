package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gavinflud/lists/internal/dto"
	"github.com/gavinflud/lists/internal/my_errors"
)

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dto.NewAPIResponse(body)); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dto.NewAPIError(code, message)); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}

// respondServiceError translates a service-layer error into the envelope,
// logging the failure with its context before translation.
func respondServiceError(w http.ResponseWriter, err error) {
	slog.Warn("request failed", "error", err)

	switch {
	case errors.Is(err, my_errors.ErrUserNotFound),
		errors.Is(err, my_errors.ErrRoleNotFound),
		errors.Is(err, my_errors.ErrTeamNotFound),
		errors.Is(err, my_errors.ErrNotATeamMember):
		respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, err.Error())
	case errors.Is(err, my_errors.ErrUserAlreadyExists),
		errors.Is(err, my_errors.ErrRoleAlreadyExists),
		errors.Is(err, my_errors.ErrTeamAlreadyExists):
		respondError(w, http.StatusConflict, dto.ErrCodeConflict, err.Error())
	case errors.Is(err, my_errors.ErrInvalidCredentials),
		errors.Is(err, my_errors.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, dto.ErrCodeUnauthorized, err.Error())
	case errors.Is(err, my_errors.ErrNotAllowed):
		respondError(w, http.StatusForbidden, dto.ErrCodeUnauthorized, err.Error())
	case errors.Is(err, my_errors.ErrEmptyField),
		errors.Is(err, my_errors.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadOperation, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, dto.ErrCodeBadOperation, "internal error")
	}
}
