package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lendbridge/intake-backend/internal/errs"
	"github.com/lendbridge/intake-backend/pkg/logger"
)

// ErrorResponse is the wire shape of every failure: a human-readable message
// plus the upstream error code when one exists.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

const (
	genericUpstreamMessage = "Validation failed — please check the UPI ID / phone and retry."
	genericNetworkMessage  = "Connection error. Please try again."
)

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Code:  code,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("request validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "", e.Message)

	case *errs.UpstreamError:
		status := e.StatusCode
		if status == 0 {
			status = http.StatusInternalServerError
		}
		message := e.Message
		if message == "" {
			message = genericUpstreamMessage
		}
		log.Error("upstream validation error",
			"status", status,
			"code", e.Code,
			"error", e.Message)
		h.WriteError(w, r, status, e.Code, message)

	case *errs.TimeoutError:
		log.Warn("validation polling timed out", "error", e.Message)
		h.WriteError(w, r, http.StatusGatewayTimeout, "", e.Message)

	case *errs.NetworkError:
		log.Error("upstream unreachable", "error", e.Message)
		h.WriteError(w, r, http.StatusBadGateway, "", genericNetworkMessage)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "", "An unexpected error occurred")
	}
}
