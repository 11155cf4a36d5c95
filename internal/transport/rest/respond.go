package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dojo-forms/internal/domain"
)

// errorResponse is the single error envelope every endpoint returns.
type errorResponse struct {
	Kind   string            `json:"kind"`
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

const (
	msgNotFound = "form not found"
	msgInternal = "internal server error"
	msgBadBody  = "invalid request body"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, kind domain.ErrorKind, message string) {
	writeJSON(w, status, errorResponse{Kind: kind.String(), Error: message})
}

// respondError maps a service error onto the HTTP contract by its kind.
// Only infrastructure failures are logged; the rest are client outcomes.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch kind := domain.KindOf(err); kind {
	case domain.KindValidation:
		resp := errorResponse{Kind: kind.String(), Error: "validation failed"}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			resp.Fields = ve.Fields()
			if len(ve.Errors) == 1 {
				resp.Error = ve.Errors[0].Message
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case domain.KindDuplicate:
		writeError(w, http.StatusConflict, kind, domain.DuplicateMessage)
	case domain.KindNotFound:
		writeError(w, http.StatusNotFound, kind, msgNotFound)
	case domain.KindUnauthorized:
		writeError(w, http.StatusUnauthorized, kind, "unauthorized")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, domain.KindInfrastructure, msgInternal)
	}
}
