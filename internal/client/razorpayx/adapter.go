// Package razorpayx wraps the upstream fund-account validation REST API.
package razorpayx

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lendbridge/intake-backend/internal/config"
	"github.com/lendbridge/intake-backend/internal/dto"
	"github.com/lendbridge/intake-backend/internal/errs"
)

const validationsPath = "/fund_accounts/validations"

type Adapter struct {
	client *resty.Client
}

func NewAdapter(cfg config.RazorpayConfig) *Adapter {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &Adapter{client: c}
}

// CreateValidation submits a composite FAV request (penny-drop or UPI-intent,
// depending on req.ValidationType).
func (a *Adapter) CreateValidation(ctx context.Context, req dto.CreateValidationRequest) (dto.Validation, error) {
	var out dto.Validation
	var apiErr dto.UpstreamErrorEnvelope

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post(validationsPath)
	if err != nil {
		return out, errs.NewNetworkError("validation API unreachable: " + err.Error())
	}
	if resp.IsError() {
		return out, upstreamError(resp.StatusCode(), apiErr)
	}
	return out, nil
}

// FetchValidation retrieves the current state of a validation resource by id.
func (a *Adapter) FetchValidation(ctx context.Context, id string) (dto.Validation, error) {
	var out dto.Validation
	var apiErr dto.UpstreamErrorEnvelope

	resp, err := a.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Get(validationsPath + "/" + id)
	if err != nil {
		return out, errs.NewNetworkError("validation API unreachable: " + err.Error())
	}
	if resp.IsError() {
		return out, upstreamError(resp.StatusCode(), apiErr)
	}
	return out, nil
}

func upstreamError(status int, env dto.UpstreamErrorEnvelope) error {
	return errs.NewUpstreamError(status, env.Error.Code, env.Error.Description)
}
