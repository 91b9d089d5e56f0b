package rest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// errInvalidPage is reported as 404, the way page-number pagination treats a
// page past the end.
var errInvalidPage = fmt.Errorf("invalid page: %w", domain.ErrNotFound)

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeDetail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, detailResponse{Detail: message})
}

// decodeJSON reads a JSON request body into dst and checks its struct tags.
// Malformed bodies and tag violations are both reported as validation errors.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "required")
		}
		return domain.NewValidationError("body", "malformed JSON")
	}
	return validateStruct(dst)
}

// handleError maps a domain error onto an HTTP response. Unknown errors are
// logged and hidden behind a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ve.Fields())
	case errors.Is(err, domain.ErrValidation):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeDetail(w, http.StatusUnauthorized, "authentication credentials were not provided")
	case errors.Is(err, domain.ErrForbidden):
		writeDetail(w, http.StatusForbidden, "you do not have permission to perform this action")
	case errors.Is(err, domain.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeDetail(w, http.StatusBadRequest, "already exists")
	case errors.Is(err, domain.ErrInvalidRelation):
		writeDetail(w, http.StatusBadRequest, "you cannot subscribe to yourself")
	case errors.Is(err, domain.ErrEmptyCart):
		writeDetail(w, http.StatusBadRequest, "shopping cart is empty")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeDetail(w, http.StatusInternalServerError, "internal server error")
	}
}
