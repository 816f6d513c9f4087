package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lendbridge/intake-backend/internal/dto"
	"github.com/lendbridge/intake-backend/internal/errs"
	"github.com/lendbridge/intake-backend/internal/models"
	"github.com/lendbridge/intake-backend/internal/response"
	"github.com/lendbridge/intake-backend/pkg/helpers"
	"github.com/lendbridge/intake-backend/pkg/logger"
)

// --- stubs ---

type stubValidationService struct {
	called bool
	req    dto.ValidateRequest
	result *models.BankVerificationResult
	err    error
}

func (s *stubValidationService) Validate(ctx context.Context, req dto.ValidateRequest) (*models.BankVerificationResult, error) {
	s.called = true
	s.req = req
	return s.result, s.err
}

type stubRPDService struct {
	initiation *dto.RPDInitiation
	status     *dto.RPDStatus
	statusID   string
	err        error
}

func (s *stubRPDService) Initiate(ctx context.Context) (*dto.RPDInitiation, error) {
	return s.initiation, s.err
}

func (s *stubRPDService) Status(ctx context.Context, favID string) (*dto.RPDStatus, error) {
	s.statusID = favID
	return s.status, s.err
}

func newTestHandlers(vs ValidationService, rs RPDService, demo bool) *verificationHandlers {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	return NewVerificationHandlers(&Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		ValidationSvc:   vs,
		RPDSvc:          rs,
		Demo:            demo,
	})
}

// --- tests ---

func TestConfigReportsDemoMode(t *testing.T) {
	h := newTestHandlers(&stubValidationService{}, &stubRPDService{}, true)

	rr := httptest.NewRecorder()
	h.VerificationRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/config", nil))

	var body dto.ConfigResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Demo {
		t.Error("expected demo: true")
	}
}

func TestValidateSuccessEnvelope(t *testing.T) {
	vs := &stubValidationService{result: &models.BankVerificationResult{
		VPA:             helpers.Ptr("asha@oksbi"),
		BankName:        "State Bank of India",
		AccountVerified: true,
		ValidationID:    "fav_demo_1",
	}}
	h := newTestHandlers(vs, &stubRPDService{}, true)

	body := `{"type":"upi","value":"asha@oksbi","name":"Asha Rao"}`
	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.VerificationRoutes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if !vs.called || vs.req.Type != "upi" || vs.req.Value != "asha@oksbi" {
		t.Fatalf("service request: %+v", vs.req)
	}

	var out dto.ValidateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !out.Success || !out.Demo || out.Data == nil {
		t.Fatalf("envelope: %+v", out)
	}
	if out.Data.BankName != "State Bank of India" {
		t.Errorf("data: %+v", out.Data)
	}
}

func TestValidateMissingTypeIs400(t *testing.T) {
	// The service performs the shape validation; the stub returns its error.
	h := newTestHandlers(&stubValidationService{err: errs.NewValidationError("type and value are required")}, &stubRPDService{}, true)

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(`{"value":"x@oksbi"}`))
	rr := httptest.NewRecorder()
	h.VerificationRoutes().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	var out response.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Error == "" {
		t.Error("expected error message")
	}
}

func TestValidateMalformedBodyIs400(t *testing.T) {
	h := newTestHandlers(&stubValidationService{}, &stubRPDService{}, true)

	req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(`{nope`))
	rr := httptest.NewRecorder()
	h.VerificationRoutes().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestInitiateRPD(t *testing.T) {
	rs := &stubRPDService{initiation: &dto.RPDInitiation{
		Success: true,
		Demo:    true,
		FavID:   "fav_demo_9",
	}}
	h := newTestHandlers(&stubValidationService{}, rs, true)

	req := httptest.NewRequest(http.MethodPost, "/validate-rpd", nil)
	rr := httptest.NewRecorder()
	h.VerificationRoutes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var out dto.RPDInitiation
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.FavID != "fav_demo_9" || out.IntentURL != nil {
		t.Fatalf("envelope: %+v", out)
	}
}

func TestRPDStatusPassesPathParam(t *testing.T) {
	rs := &stubRPDService{status: &dto.RPDStatus{Success: true, Status: "pending"}}
	h := newTestHandlers(&stubValidationService{}, rs, false)

	req := httptest.NewRequest(http.MethodGet, "/validate-rpd/fav_test_77", nil)
	rr := httptest.NewRecorder()
	h.VerificationRoutes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rs.statusID != "fav_test_77" {
		t.Errorf("favId = %q", rs.statusID)
	}
}
