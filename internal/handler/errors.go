package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rmaia/planner/internal/domain"
)

// errorResponse is the JSON error envelope every endpoint returns.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondError maps a service error to its HTTP status and error envelope.
// Unknown errors become an opaque 500 — the detail goes to the log, not
// the client.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrDuplicate):
		respondJSON(w, http.StatusConflict, errorResponse{
			Error: errorDetail{Code: "duplicate", Message: unwrapMessage(err)},
		})
	default:
		slog.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// respondBadRequest rejects a request before it reaches the service layer
// (malformed JSON, bad path parameter, oversized body).
func respondBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		respondJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
			Error: errorDetail{Code: "request_too_large", Message: "request body too large"},
		})
		return
	}
	respondJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "bad_request", Message: err.Error()},
	})
}

// unwrapMessage extracts the user-facing detail from a service error.
// Typed domain errors carry it directly, so the message survives intact
// no matter what characters it contains; bare sentinels fall back to
// their own text.
func unwrapMessage(err error) string {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Message
	}
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrDuplicate} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
