package wizard

import "github.com/lendbridge/intake-backend/internal/models"

// Screen identifies one step of the wizard flow.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenDetails
	ScreenVerify
	ScreenConfirm
	ScreenSuccess
)

// VerifyMode selects how the applicant's bank account is verified.
type VerifyMode string

const (
	ModeUPI VerifyMode = "upi"
	ModeRPD VerifyMode = "rpd"
)

// AppLinks carries the UPI deep links shown on mobile during a reverse penny
// drop. Empty fields mean the upstream did not provide that link.
type AppLinks struct {
	Intent  string
	PhonePe string
	GPay    string
	Paytm   string
	BHIM    string
}

// SuccessSummary is what the final screen shows.
type SuccessSummary struct {
	ApplicationID string
	Name          string
	BankName      string
	LoanAmount    int64
}

// Presenter is the presentation port of the wizard. The session and the RPD
// controller drive it; implementations render to a terminal, a test recorder,
// or whatever else hosts the flow.
type Presenter interface {
	ShowScreen(s Screen)
	ShowDemoBadge()
	SetVerifyMode(mode VerifyMode)

	FieldError(field, msg string)
	ClearFieldErrors()
	VerifyError(msg string)
	ClearVerifyError()
	SetLoading(loading bool)

	RPDError(msg string)
	ClearRPDError()
	SetRPDStartEnabled(enabled bool)
	ShowQR(pngBase64 string)
	ShowAppLinks(links AppLinks)
	ResetRPDPanel()

	ShowBankDetails(res *models.BankVerificationResult, demo bool)
	ShowSuccess(s SuccessSummary)
}
