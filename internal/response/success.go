package response

import (
	"encoding/json"
	"net/http"

	"github.com/lendbridge/intake-backend/pkg/logger"
)

// WriteSuccess encodes v as-is; the endpoint DTOs carry their own
// success/demo envelope fields.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Last-ditch logging; can't return an error now
		log := logger.FromContext(r.Context())
		log.Error("failed to encode success response", "error", err)
	}
}
