package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lendbridge/intake-backend/internal/errs"
	"github.com/lendbridge/intake-backend/pkg/logger"
)

func handleErr(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	h := New(slog.New(logger.NewTestHandler(slog.LevelInfo)))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/validate", nil)
	h.HandleError(rr, req, err)

	var body ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rr.Code, body
}

func TestHandleValidationError(t *testing.T) {
	status, body := handleErr(t, errs.NewValidationError("type and value are required"))
	if status != http.StatusBadRequest {
		t.Errorf("status = %d", status)
	}
	if body.Error != "type and value are required" || body.Code != "" {
		t.Errorf("body = %+v", body)
	}
}

func TestHandleUpstreamErrorKeepsStatusAndCode(t *testing.T) {
	status, body := handleErr(t, errs.NewUpstreamError(400, "BAD_REQUEST_ERROR", "Invalid VPA"))
	if status != http.StatusBadRequest {
		t.Errorf("status = %d", status)
	}
	if body.Error != "Invalid VPA" || body.Code != "BAD_REQUEST_ERROR" {
		t.Errorf("body = %+v", body)
	}
}

func TestHandleUpstreamErrorDefaultsWhenAbsent(t *testing.T) {
	status, body := handleErr(t, errs.NewUpstreamError(0, "", ""))
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d", status)
	}
	if body.Error != genericUpstreamMessage {
		t.Errorf("body = %+v", body)
	}
}

func TestHandleTimeoutError(t *testing.T) {
	status, body := handleErr(t, errs.NewTimeoutError("Validation polling timed out — please try again."))
	if status != http.StatusGatewayTimeout {
		t.Errorf("status = %d", status)
	}
	if body.Error == "" {
		t.Error("timeout message missing")
	}
}

func TestHandleNetworkErrorIsGeneric(t *testing.T) {
	status, body := handleErr(t, errs.NewNetworkError("dial tcp: connection refused"))
	if status != http.StatusBadGateway {
		t.Errorf("status = %d", status)
	}
	if body.Error != genericNetworkMessage {
		t.Errorf("internal details must not leak: %+v", body)
	}
}

func TestHandleUnknownError(t *testing.T) {
	status, _ := handleErr(t, errors.New("boom"))
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d", status)
	}
}
