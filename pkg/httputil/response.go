package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/Jathavedas/memento-backend/pkg/errors"
	"github.com/Jathavedas/memento-backend/pkg/logger"
)

// Message is the `{message}` body used for 400/404 responses and confirmations.
type Message struct {
	Message string `json:"message"`
}

// ServerError is the `{message, error}` body used for 500 responses. The
// underlying error string is passed through verbatim, matching the behavior
// of the original API this service replaces.
type ServerError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, headers are already sent so nothing meaningful can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError converts a service-layer error into this API's response shape:
// ErrNotFound -> 404 {message: notFoundMsg}, ErrInvalidInput -> 400 {message},
// anything else -> 500 {message: serverMsg, error}. Internal errors are logged
// through the request-scoped logger if the RequestLogger middleware is
// mounted, falling back to the given logger otherwise.
func WriteError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, serverMsg string, fallback *slog.Logger) {
	status := apperrors.HTTPStatus(err)

	switch status {
	case http.StatusNotFound:
		WriteJSON(w, http.StatusNotFound, Message{Message: notFoundMsg})
	case http.StatusBadRequest:
		WriteJSON(w, http.StatusBadRequest, Message{Message: badRequestMessage(err)})
	default:
		l := logger.FromContext(r.Context())
		if l == slog.Default() {
			l = fallback
		}
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		WriteJSON(w, http.StatusInternalServerError, ServerError{Message: serverMsg, Error: err.Error()})
	}
}

// badRequestMessage extracts the human-readable message from a 400-class
// error, preferring the AppError message over the wrapped error chain.
func badRequestMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
