package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
)

// fieldErrorDTO is the JSON shape of one field-level failure.
type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// jsonError is the JSON error payload.
type jsonError struct {
	Error       string          `json:"error"`
	FieldErrors []fieldErrorDTO `json:"field_errors,omitempty"`
}

func writeJSONError(w http.ResponseWriter, status int, message string, fields []fieldErrorDTO) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonError{Error: message, FieldErrors: fields})
}

// writeCreationError maps the failure taxonomy onto HTTP responses.
// Validation failures and lost uniqueness races share the same external
// shape; unexpected failures stay opaque.
func (h *Handler) writeCreationError(w http.ResponseWriter, err error) {
	cerr, ok := domain.AsCreationError(err)
	if !ok {
		h.logger.Error("unclassified creation failure", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}

	switch cerr.Kind {
	case domain.ValidationFailed, domain.ConstraintViolation:
		fields := make([]fieldErrorDTO, len(cerr.Fields))
		for i, f := range cerr.Fields {
			fields[i] = fieldErrorDTO{Field: f.Field, Message: f.Message}
		}
		writeJSONError(w, http.StatusBadRequest, "validation_failed", fields)
	default:
		h.logger.Error("product creation failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
