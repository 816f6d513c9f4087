package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lendbridge/intake-backend/internal/dto"
	"github.com/lendbridge/intake-backend/internal/errs"
	"github.com/lendbridge/intake-backend/internal/models"
	"github.com/lendbridge/intake-backend/internal/response"
)

type ValidationService interface {
	Validate(ctx context.Context, req dto.ValidateRequest) (*models.BankVerificationResult, error)
}

type RPDService interface {
	Initiate(ctx context.Context) (*dto.RPDInitiation, error)
	Status(ctx context.Context, favID string) (*dto.RPDStatus, error)
}

type verificationHandlers struct {
	ResponseHandler response.ResponseHandler
	ValidationSvc   ValidationService
	RPDSvc          RPDService
	Demo            bool
}

func NewVerificationHandlers(deps *Deps) *verificationHandlers {
	return &verificationHandlers{
		ResponseHandler: deps.ResponseHandler,
		ValidationSvc:   deps.ValidationSvc,
		RPDSvc:          deps.RPDSvc,
		Demo:            deps.Demo,
	}
}

func (h *verificationHandlers) VerificationRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/config", h.Config)
	r.Post("/validate", h.Validate)
	r.Post("/validate-rpd", h.InitiateRPD)
	r.Get("/validate-rpd/{favId}", h.RPDStatus)
	return r
}

// Config lets clients know which mode is active.
func (h *verificationHandlers) Config(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.ConfigResponse{Demo: h.Demo})
}

func (h *verificationHandlers) Validate(w http.ResponseWriter, r *http.Request) {
	var body dto.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	result, err := h.ValidationSvc.Validate(r.Context(), body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.ValidateResponse{
		Success: true,
		Demo:    h.Demo,
		Data:    result,
	})
}

func (h *verificationHandlers) InitiateRPD(w http.ResponseWriter, r *http.Request) {
	out, err := h.RPDSvc.Initiate(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}

func (h *verificationHandlers) RPDStatus(w http.ResponseWriter, r *http.Request) {
	favID := chi.URLParam(r, "favId")

	out, err := h.RPDSvc.Status(r.Context(), favID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, out)
}
