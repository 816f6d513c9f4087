package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lendbridge/intake-backend/internal/dto"
)

// APIClient is the slice of the intake API the wizard consumes.
type APIClient interface {
	Config(ctx context.Context) (*dto.ConfigResponse, error)
	Validate(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error)
	InitiateRPD(ctx context.Context) (*dto.RPDInitiation, error)
	RPDStatus(ctx context.Context, favID string) (*dto.RPDStatus, error)
}

const clientTimeout = 15 * time.Second

// Client talks to the intake backend over HTTP.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(clientTimeout)

	return &Client{http: c}
}

// apiError mirrors the backend's error envelope.
type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (c *Client) Config(ctx context.Context) (*dto.ConfigResponse, error) {
	var out dto.ConfigResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/config")
	if err != nil {
		return nil, fmt.Errorf("fetching config: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetching config: status %d", resp.StatusCode())
	}

	return &out, nil
}

func (c *Client) Validate(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error) {
	var (
		out    dto.ValidateResponse
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/validate")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, envelopeError(apiErr, "Validation failed — please try again.")
	}

	return &out, nil
}

func (c *Client) InitiateRPD(ctx context.Context) (*dto.RPDInitiation, error) {
	var (
		out    dto.RPDInitiation
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Post("/api/validate-rpd")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, envelopeError(apiErr, "Failed to start verification.")
	}

	return &out, nil
}

func (c *Client) RPDStatus(ctx context.Context, favID string) (*dto.RPDStatus, error) {
	var (
		out    dto.RPDStatus
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		SetPathParam("favId", favID).
		Get("/api/validate-rpd/{favId}")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, envelopeError(apiErr, "Poll failed")
	}

	return &out, nil
}

func envelopeError(apiErr apiError, fallback string) error {
	if apiErr.Error != "" {
		return fmt.Errorf("%s", apiErr.Error)
	}
	return fmt.Errorf("%s", fallback)
}
