package dto

import (
	"github.com/lendbridge/intake-backend/internal/models"
)

// ConfigResponse tells clients which mode the server runs in.
type ConfigResponse struct {
	Demo bool `json:"demo"`
}

// ValidateRequest is the body of POST /api/validate.
type ValidateRequest struct {
	Type  string `json:"type"` // "upi" | "phone"
	Value string `json:"value"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ValidateResponse is the success envelope of POST /api/validate.
type ValidateResponse struct {
	Success bool                           `json:"success"`
	Demo    bool                           `json:"demo"`
	Data    *models.BankVerificationResult `json:"data"`
}

// RPDInitiation is the success envelope of POST /api/validate-rpd. Link and
// QR fields are null when the upstream omits them (always in demo mode).
type RPDInitiation struct {
	Success    bool    `json:"success"`
	Demo       bool    `json:"demo"`
	FavID      string  `json:"favId"`
	IntentURL  *string `json:"intentUrl"`
	PhonepeURL *string `json:"phonepeUrl"`
	GpayURL    *string `json:"gpayUrl"`
	PaytmURL   *string `json:"paytmUrl"`
	BhimURL    *string `json:"bhimUrl"`
	QRCode     *string `json:"qrCode"` // base64-encoded PNG
}

// RPDStatus is the envelope of GET /api/validate-rpd/{id}. Data is only set
// once Status is terminal and the validation completed.
type RPDStatus struct {
	Success bool                           `json:"success"`
	Status  string                         `json:"status"`
	Demo    bool                           `json:"demo,omitempty"`
	Data    *models.BankVerificationResult `json:"data,omitempty"`
}
