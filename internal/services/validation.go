package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/lendbridge/intake-backend/internal/bank"
	"github.com/lendbridge/intake-backend/internal/config"
	"github.com/lendbridge/intake-backend/internal/dto"
	"github.com/lendbridge/intake-backend/internal/errs"
	"github.com/lendbridge/intake-backend/internal/models"
	"github.com/lendbridge/intake-backend/pkg/helpers"
	"github.com/lendbridge/intake-backend/pkg/logger"
)

// --- Dependencies (minimal interfaces scoped to this service) ---

// favClient is the upstream validation API surface used by the gateway.
type favClient interface {
	CreateValidation(ctx context.Context, req dto.CreateValidationRequest) (dto.Validation, error)
	FetchValidation(ctx context.Context, id string) (dto.Validation, error)
}

// demoGen produces mock payloads when live credentials are absent.
type demoGen interface {
	Generate(ctx context.Context, vpa, name string) (*models.BankVerificationResult, error)
}

const (
	// Server-side poll budget: attempt-count bounded, not wall-clock.
	defaultPollAttempts = 12
	defaultPollDelay    = 2500 * time.Millisecond

	pollTimeoutMessage = "Validation polling timed out — please try again."

	// Pseudo-VPA domain appended to phone numbers.
	phoneVPADomain = "@upi"
)

type validationService struct {
	fav  favClient
	demo demoGen
	rz   config.RazorpayConfig

	maxAttempts int
	delay       time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	now         func() time.Time
}

func NewValidationService(fav favClient, demo demoGen, rz config.RazorpayConfig) *validationService {
	return &validationService{
		fav:         fav,
		demo:        demo,
		rz:          rz,
		maxAttempts: defaultPollAttempts,
		delay:       defaultPollDelay,
		sleep:       sleepCtx,
		now:         time.Now,
	}
}

// Validate performs a direct account verification by UPI handle or phone
// number. In live mode it submits a composite penny-drop validation and polls
// until terminal; in demo mode it serves a generated payload.
func (s *validationService) Validate(ctx context.Context, req dto.ValidateRequest) (*models.BankVerificationResult, error) {
	if req.Type == "" || req.Value == "" {
		return nil, errs.NewValidationError("type and value are required")
	}
	if req.Type != "upi" && req.Type != "phone" {
		return nil, errs.NewValidationError("type must be 'upi' or 'phone'")
	}

	vpa := strings.TrimSpace(req.Value)
	if req.Type == "upi" {
		vpa = strings.ToLower(vpa)
	} else {
		vpa += phoneVPADomain
	}

	if !s.rz.Live() {
		return s.demo.Generate(ctx, vpa, req.Name)
	}

	log := logger.FromContext(ctx)

	v, err := s.fav.CreateValidation(ctx, s.pennyDropRequest(vpa, req))
	if err != nil {
		return nil, err
	}
	log.Info("validation created", "validation_id", v.ID, "status", v.Status)

	if !v.Terminal() {
		v, err = s.pollValidation(ctx, v.ID)
		if err != nil {
			return nil, err
		}
	}

	return mapPennyDropResult(v, vpa, req.Name), nil
}

func (s *validationService) pennyDropRequest(vpa string, req dto.ValidateRequest) dto.CreateValidationRequest {
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)

	name := req.Name
	if name == "" {
		name = "Loan Applicant"
	}
	email := req.Email
	if email == "" {
		email = "applicant@lendbridge.in"
	}
	phone := req.Phone
	if phone == "" {
		phone = req.Value
	}

	return dto.CreateValidationRequest{
		SourceAccountNumber: s.rz.AccountNumber,
		ReferenceID:         "loan_" + ts,
		ValidationType:      dto.ValidationTypePennyDrop,
		Notes:               map[string]string{"purpose": "Bank Account Verification"},
		FundAccount: &dto.FundAccountSpec{
			AccountType: "vpa",
			VPA:         dto.VPASpec{Address: vpa},
			Contact: dto.ContactSpec{
				Name:        name,
				Email:       email,
				Contact:     phone,
				Type:        "employee",
				ReferenceID: "ref_" + ts,
				Notes:       map[string]string{"purpose": "Loan Application — Bank Verification"},
			},
		},
	}
}

// pollValidation queries the validation resource at a fixed interval until it
// reaches a terminal state or the attempt budget runs out.
func (s *validationService) pollValidation(ctx context.Context, id string) (dto.Validation, error) {
	log := logger.FromContext(ctx)

	for i := 0; i < s.maxAttempts; i++ {
		v, err := s.fav.FetchValidation(ctx, id)
		if err != nil {
			return dto.Validation{}, err
		}
		if v.Terminal() {
			return v, nil
		}
		log.Debug("validation still pending", "validation_id", id, "attempt", i+1)
		if err := s.sleep(ctx, s.delay); err != nil {
			return dto.Validation{}, err
		}
	}

	log.Warn("validation polling exhausted", "validation_id", id, "attempts", s.maxAttempts)
	return dto.Validation{}, errs.NewTimeoutError(pollTimeoutMessage)
}

// mapPennyDropResult converts a terminal upstream validation into the UI
// result, falling back to the bank table only where the upstream omits
// fields.
func mapPennyDropResult(v dto.Validation, vpa, applicantName string) *models.BankVerificationResult {
	var results dto.ValidationResults
	if v.Results != nil {
		results = *v.Results
	}
	var acct dto.BankAccount
	if results.BankAccount != nil {
		acct = *results.BankAccount
	}

	info := bank.Resolve(vpa)

	status := results.AccountStatus
	if status == "" {
		status = "unknown"
	}
	bankName := acct.BankName
	if bankName == "" {
		bankName = info.Name
	}
	registered := results.RegisteredName
	if registered == "" {
		registered = applicantName
	}
	if registered == "" {
		registered = "Account Holder"
	}

	var fundAccountID *string
	if v.FundAccount != nil {
		fundAccountID = helpers.PtrNonEmpty(v.FundAccount.ID)
	}

	return &models.BankVerificationResult{
		VPA:             helpers.Ptr(vpa),
		BankName:        bankName,
		BankColor:       info.Color,
		RegisteredName:  registered,
		AccountNumber:   helpers.PtrNonEmpty(acct.AccountNumber),
		AccountType:     helpers.PtrNonEmpty(acct.AccountType),
		IFSCCode:        helpers.PtrNonEmpty(acct.BankRoutingCode),
		AccountStatus:   status,
		AccountVerified: status == "active",
		FundAccountID:   fundAccountID,
		ValidationID:    v.ID,
		UTR:             helpers.PtrNonEmpty(v.UTR),
	}
}
