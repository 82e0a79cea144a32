package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Flarenzy/netzone/internal/domain"
)

func encode[T any](w http.ResponseWriter, _ *http.Request, status int, v T) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// statusFor maps a domain error to its HTTP status and client message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "subnet not found"
	case errors.Is(err, domain.ErrViewUnavailable):
		return http.StatusServiceUnavailable, "zone data unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	if encErr := encode(w, r, status, ErrorResponse{Error: msg}); encErr != nil {
		a.Logger.ErrorContext(r.Context(), "responding to client", "err", encErr.Error())
	}
}
