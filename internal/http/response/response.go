// Package response writes coded JSON error bodies for rejections made in
// middleware, before a request reaches the huma pipeline. The shape matches
// the error bodies huma produces for handler failures, so clients see one
// format everywhere.
package response

import (
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"strconv"

	domainerrors "github.com/shloka-app/shloka-server/internal/errors"
)

// ErrorBody is the wire shape of an error response.
type ErrorBody struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error writes err as a JSON error response using the status its code maps
// to.
func Error(w http.ResponseWriter, err *domainerrors.Error, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(err.HTTPStatus())

	body := ErrorBody{
		Status:  err.HTTPStatus(),
		Code:    string(err.Code),
		Message: err.Message,
	}

	if encodeErr := json.MarshalWrite(w, body); encodeErr != nil {
		if logger != nil {
			logger.Error("failed to encode error response", "error", encodeErr)
		}
	}
}

// TooManyRequests writes a 429 with a Retry-After hint.
func TooManyRequests(w http.ResponseWriter, retryAfterSeconds int, logger *slog.Logger) {
	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	Error(w, domainerrors.RateLimited("too many requests, please slow down"), logger)
}
