package dto

// Upstream fund-account validation (FAV) payloads. Only the fields this
// service consumes are modeled; everything else the upstream returns is
// ignored.

// Validation types accepted by the upstream.
const (
	ValidationTypePennyDrop = "pennydrop"
	ValidationTypeUPIIntent = "upi_intent"
)

// Terminal statuses of a validation resource. Any other status keeps polling.
const (
	FAVStatusCreated   = "created"
	FAVStatusPending   = "pending"
	FAVStatusCompleted = "completed"
	FAVStatusFailed    = "failed"
)

// CreateValidationRequest creates a composite FAV resource. FundAccount is
// set for penny-drop validations and omitted for UPI-intent ones.
type CreateValidationRequest struct {
	SourceAccountNumber string            `json:"source_account_number"`
	ReferenceID         string            `json:"reference_id"`
	ValidationType      string            `json:"validation_type"`
	Notes               map[string]string `json:"notes,omitempty"`
	FundAccount         *FundAccountSpec  `json:"fund_account,omitempty"`
}

type FundAccountSpec struct {
	AccountType string      `json:"account_type"`
	VPA         VPASpec     `json:"vpa"`
	Contact     ContactSpec `json:"contact"`
}

type VPASpec struct {
	Address string `json:"address"`
}

type ContactSpec struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Contact     string            `json:"contact"`
	Type        string            `json:"type"`
	ReferenceID string            `json:"reference_id"`
	Notes       map[string]string `json:"notes,omitempty"`
}

// Validation is the FAV resource as returned on create and fetch.
type Validation struct {
	ID          string             `json:"id"`
	Status      string             `json:"status"`
	UTR         string             `json:"utr,omitempty"`
	FundAccount *FundAccountRef    `json:"fund_account,omitempty"`
	Results     *ValidationResults `json:"validation_results,omitempty"`
	UPIIntent   *UPIIntent         `json:"upi_intent,omitempty"`
}

func (v Validation) Terminal() bool {
	return v.Status == FAVStatusCompleted || v.Status == FAVStatusFailed
}

type FundAccountRef struct {
	ID string `json:"id"`
}

type ValidationResults struct {
	AccountStatus  string           `json:"account_status,omitempty"`
	RegisteredName string           `json:"registered_name,omitempty"`
	BankAccount    *BankAccount     `json:"bank_account,omitempty"`
	UPIIntent      *UPIIntentResult `json:"upi_intent,omitempty"`
}

type BankAccount struct {
	BankName        string `json:"bank_name,omitempty"`
	AccountNumber   string `json:"account_number,omitempty"`
	AccountType     string `json:"account_type,omitempty"`
	BankRoutingCode string `json:"bank_routing_code,omitempty"`
}

// UPIIntent carries the deep-link URLs and QR payload of an intent
// validation. Absent fields stay absent; nothing is defaulted.
type UPIIntent struct {
	IntentURL     string `json:"intent_url,omitempty"`
	PhonepeURL    string `json:"phonepe_url,omitempty"`
	GpayURL       string `json:"gpay_url,omitempty"`
	PaytmURL      string `json:"paytm_url,omitempty"`
	BhimURL       string `json:"bhim_url,omitempty"`
	EncodedQRCode string `json:"encoded_qr_code,omitempty"`
}

type UPIIntentResult struct {
	VPA string `json:"vpa,omitempty"`
}

// UpstreamErrorEnvelope is the upstream's error body shape.
type UpstreamErrorEnvelope struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}
