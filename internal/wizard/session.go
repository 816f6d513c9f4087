package wizard

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lendbridge/intake-backend/internal/dto"
	"github.com/lendbridge/intake-backend/internal/models"
)

const (
	minLoanAmount = 50_000
	maxLoanAmount = 5_000_000

	msgNameRequired  = "Please enter your full name"
	msgEmailInvalid  = "Enter a valid email address"
	msgPhoneInvalid  = "Enter a valid 10-digit mobile number"
	msgLoanOutOfBand = "Enter an amount between ₹50,000 and ₹50,00,000"
	msgUPIInvalid    = "Enter a valid UPI ID (e.g. name@okhdfcbank)"

	msgVerifyFallback = "Something went wrong. Please try again."
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
	upiRe   = regexp.MustCompile(`^[a-zA-Z0-9._\-+]+@[a-zA-Z0-9]+$`)
)

// Session holds the state of one applicant walking the wizard: collected
// details, the chosen verification mode, and the verified bank data. The
// penny drop controller delivers results from timer goroutines, so all state
// access goes through mu.
type Session struct {
	api  APIClient
	pres Presenter
	rpd  *RPDController

	mu        sync.Mutex
	demo      bool
	step      Screen
	mode      VerifyMode
	applicant models.Applicant
	bank      *models.BankVerificationResult

	newAppID func() string
}

// SessionOption tweaks session construction.
type SessionOption func(*Session)

// WithAppIDGenerator overrides how application ids are minted.
func WithAppIDGenerator(gen func() string) SessionOption {
	return func(s *Session) { s.newAppID = gen }
}

func NewSession(api APIClient, pres Presenter, sched Scheduler, mobile bool, opts ...SessionOption) *Session {
	s := &Session{
		api:      api,
		pres:     pres,
		mode:     ModeUPI,
		newAppID: newApplicationID,
	}
	s.rpd = NewRPDController(api, sched, pres, mobile, s.onBankVerified)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init fetches server config to learn the verification mode. An unreachable
// server is treated as demo mode so the flow stays usable.
func (s *Session) Init(ctx context.Context) {
	cfg, err := s.api.Config(ctx)

	demo := true
	if err == nil {
		demo = cfg.Demo
	}

	s.mu.Lock()
	s.demo = demo
	s.mu.Unlock()

	if demo {
		s.pres.ShowDemoBadge()
	}

	s.goTo(ScreenWelcome)
}

// Begin moves from the welcome screen to details.
func (s *Session) Begin() {
	s.goTo(ScreenDetails)
}

// SubmitDetails validates the details form. All fields are checked so every
// invalid field gets its error at once; on success the applicant is stored
// and the flow advances to the verify screen.
func (s *Session) SubmitDetails(name, email, phone, loan string) bool {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	loan = strings.TrimSpace(loan)

	s.pres.ClearFieldErrors()

	valid := true
	if len(name) < 2 {
		s.pres.FieldError("name", msgNameRequired)
		valid = false
	}
	if !emailRe.MatchString(email) {
		s.pres.FieldError("email", msgEmailInvalid)
		valid = false
	}
	if !phoneRe.MatchString(phone) {
		s.pres.FieldError("phone", msgPhoneInvalid)
		valid = false
	}
	amount, err := strconv.ParseInt(loan, 10, 64)
	if err != nil || amount < minLoanAmount || amount > maxLoanAmount {
		s.pres.FieldError("loan", msgLoanOutOfBand)
		valid = false
	}

	if !valid {
		return false
	}

	s.mu.Lock()
	s.applicant = models.Applicant{
		Name:       name,
		Email:      email,
		Phone:      phone,
		LoanAmount: amount,
	}
	s.mu.Unlock()

	s.goTo(ScreenVerify)
	return true
}

// SwitchMode toggles between UPI-handle and reverse-penny-drop verification.
func (s *Session) SwitchMode(mode VerifyMode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	s.pres.SetVerifyMode(mode)
	s.pres.ClearFieldErrors()
	s.pres.ClearVerifyError()
	s.pres.ClearRPDError()
}

// SubmitUPI verifies the applicant's bank account by UPI handle.
func (s *Session) SubmitUPI(ctx context.Context, value string) {
	value = strings.TrimSpace(value)

	s.pres.ClearFieldErrors()
	if !upiRe.MatchString(value) {
		s.pres.FieldError("upi", msgUPIInvalid)
		return
	}

	s.pres.ClearVerifyError()
	s.pres.SetLoading(true)
	defer s.pres.SetLoading(false)

	s.mu.Lock()
	applicant := s.applicant
	s.mu.Unlock()

	resp, err := s.api.Validate(ctx, &dto.ValidateRequest{
		Type:  "upi",
		Value: value,
		Name:  applicant.Name,
		Email: applicant.Email,
		Phone: applicant.Phone,
	})
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = msgVerifyFallback
		}
		s.pres.VerifyError(msg)
		return
	}

	s.onBankVerified(resp.Data, resp.Demo)
}

// StartRPD kicks off a reverse penny drop session.
func (s *Session) StartRPD(ctx context.Context) {
	s.mu.Lock()
	name := s.applicant.Name
	s.mu.Unlock()

	s.rpd.Start(ctx, name)
}

// CancelRPD abandons the in-flight reverse penny drop, if any.
func (s *Session) CancelRPD() {
	s.rpd.Cancel()
}

// Confirm accepts the verified bank details and finishes the application.
func (s *Session) Confirm() {
	s.goTo(ScreenSuccess)
}

// Reset wipes the session back to a fresh welcome screen.
func (s *Session) Reset() {
	s.mu.Lock()
	s.applicant = models.Applicant{}
	s.bank = nil
	s.mu.Unlock()

	s.rpd.Cancel()
	s.pres.ClearVerifyError()
	s.pres.ClearFieldErrors()
	s.SwitchMode(ModeUPI)
	s.goTo(ScreenWelcome)
}

// Step reports the current screen.
func (s *Session) Step() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Mode reports the active verification mode.
func (s *Session) Mode() VerifyMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// DemoMode reports whether the server runs without upstream credentials.
func (s *Session) DemoMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.demo
}

// Applicant returns the collected applicant details.
func (s *Session) Applicant() models.Applicant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applicant
}

// Bank returns the verified bank details, nil before verification.
func (s *Session) Bank() *models.BankVerificationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank
}

// RPD exposes the penny drop controller, mainly for its state.
func (s *Session) RPD() *RPDController { return s.rpd }

// onBankVerified runs on whichever goroutine produced the result: the caller
// for UPI verification, a timer goroutine for a completed penny drop.
func (s *Session) onBankVerified(res *models.BankVerificationResult, demo bool) {
	s.mu.Lock()
	s.bank = res
	s.mu.Unlock()

	s.pres.ShowBankDetails(res, demo)
	s.goTo(ScreenConfirm)
}

func (s *Session) goTo(step Screen) {
	s.mu.Lock()
	s.step = step

	var summary SuccessSummary
	if step == ScreenSuccess {
		summary = SuccessSummary{
			ApplicationID: s.newAppID(),
			Name:          s.applicant.Name,
			LoanAmount:    s.applicant.LoanAmount,
		}
		if s.bank != nil {
			summary.BankName = s.bank.BankName
		}
	}
	s.mu.Unlock()

	if step == ScreenSuccess {
		s.pres.ShowSuccess(summary)
	}
	s.pres.ShowScreen(step)
}

// newApplicationID mints ids like LB-2025-4F9C2A.
func newApplicationID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("LB-%d-%s", time.Now().Year(), raw[:6])
}
