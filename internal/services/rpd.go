package services

import (
	"context"
	"strconv"
	"time"

	"github.com/lendbridge/intake-backend/internal/bank"
	"github.com/lendbridge/intake-backend/internal/config"
	"github.com/lendbridge/intake-backend/internal/dto"
	"github.com/lendbridge/intake-backend/internal/models"
	"github.com/lendbridge/intake-backend/pkg/helpers"
	"github.com/lendbridge/intake-backend/pkg/logger"
)

// rpdService handles the server side of reverse penny-drop verification:
// creating the UPI-intent validation and reporting its status.
type rpdService struct {
	fav   favClient
	rz    config.RazorpayConfig
	now   func() time.Time
	newID func(prefix string) string
}

func NewRPDService(fav favClient, rz config.RazorpayConfig) *rpdService {
	return &rpdService{
		fav:   fav,
		rz:    rz,
		now:   time.Now,
		newID: demoID,
	}
}

// Initiate starts a reverse penny-drop. In demo mode it fabricates an
// identifier and returns no link or QR data, which signals demo mode to the
// caller.
func (s *rpdService) Initiate(ctx context.Context) (*dto.RPDInitiation, error) {
	if !s.rz.Live() {
		return &dto.RPDInitiation{
			Success: true,
			Demo:    true,
			FavID:   s.newID("fav_demo_"),
		}, nil
	}

	v, err := s.fav.CreateValidation(ctx, dto.CreateValidationRequest{
		SourceAccountNumber: s.rz.AccountNumber,
		ValidationType:      dto.ValidationTypeUPIIntent,
		ReferenceID:         "rpd_" + strconv.FormatInt(s.now().UnixMilli(), 10),
		Notes:               map[string]string{"purpose": "Reverse Penny Drop — Bank Verification"},
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("rpd validation created", "validation_id", v.ID)

	var intent dto.UPIIntent
	if v.UPIIntent != nil {
		intent = *v.UPIIntent
	}
	return &dto.RPDInitiation{
		Success:    true,
		Demo:       false,
		FavID:      v.ID,
		IntentURL:  helpers.PtrNonEmpty(intent.IntentURL),
		PhonepeURL: helpers.PtrNonEmpty(intent.PhonepeURL),
		GpayURL:    helpers.PtrNonEmpty(intent.GpayURL),
		PaytmURL:   helpers.PtrNonEmpty(intent.PaytmURL),
		BhimURL:    helpers.PtrNonEmpty(intent.BhimURL),
		QRCode:     helpers.PtrNonEmpty(intent.EncodedQRCode),
	}, nil
}

// Status fetches the current state of an RPD validation. Non-terminal
// statuses return bare; terminal ones carry the mapped result.
func (s *rpdService) Status(ctx context.Context, favID string) (*dto.RPDStatus, error) {
	if !s.rz.Live() {
		// Demo sessions auto-complete on the client; the server never
		// reports progress.
		return &dto.RPDStatus{Success: true, Demo: true, Status: dto.FAVStatusCreated}, nil
	}

	v, err := s.fav.FetchValidation(ctx, favID)
	if err != nil {
		return nil, err
	}

	if !v.Terminal() {
		return &dto.RPDStatus{Success: true, Status: v.Status}, nil
	}

	return &dto.RPDStatus{
		Success: true,
		Status:  v.Status,
		Data:    mapIntentResult(v),
	}, nil
}

// mapIntentResult converts a terminal intent validation. The payer's VPA is
// only known from the validation results, so bank identity resolves from
// there when present.
func mapIntentResult(v dto.Validation) *models.BankVerificationResult {
	var results dto.ValidationResults
	if v.Results != nil {
		results = *v.Results
	}
	var acct dto.BankAccount
	if results.BankAccount != nil {
		acct = *results.BankAccount
	}

	upiVPA := ""
	if results.UPIIntent != nil {
		upiVPA = results.UPIIntent.VPA
	}

	bankName := "Unknown Bank"
	bankColor := bank.FallbackColor
	if upiVPA != "" {
		info := bank.Resolve(upiVPA)
		bankName = info.Name
		bankColor = info.Color
	}
	if acct.BankName != "" {
		bankName = acct.BankName
	}

	status := results.AccountStatus
	if status == "" {
		status = "unknown"
	}
	registered := results.RegisteredName
	if registered == "" {
		registered = "Account Holder"
	}

	return &models.BankVerificationResult{
		VPA:             helpers.PtrNonEmpty(upiVPA),
		BankName:        bankName,
		BankColor:       bankColor,
		RegisteredName:  registered,
		AccountNumber:   helpers.PtrNonEmpty(acct.AccountNumber),
		AccountType:     helpers.PtrNonEmpty(acct.AccountType),
		IFSCCode:        helpers.PtrNonEmpty(acct.BankRoutingCode),
		AccountStatus:   status,
		AccountVerified: status == "active",
		ValidationID:    v.ID,
		UTR:             helpers.PtrNonEmpty(v.UTR),
	}
}
