package wizard

import (
	"context"
	"time"

	"github.com/lendbridge/intake-backend/internal/dto"
	"github.com/lendbridge/intake-backend/internal/models"
)

// fakeScheduler records every scheduled callback and lets tests fire them by
// hand.
type fakeScheduler struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() { t.stopped = true }

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) fire(i int) { s.timers[i].fn() }

func (s *fakeScheduler) last() *fakeTimer { return s.timers[len(s.timers)-1] }

// recordingPresenter captures every presentation call for assertions.
type recordingPresenter struct {
	screens      []Screen
	demoBadge    bool
	mode         VerifyMode
	fieldErrors  map[string]string
	verifyErrors []string
	loading      []bool
	rpdErrors    []string
	startEnabled []bool
	qr           string
	links        *AppLinks
	panelResets  int
	bank         *models.BankVerificationResult
	bankDemo     bool
	bankShown    int
	success      *SuccessSummary
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{fieldErrors: map[string]string{}}
}

func (p *recordingPresenter) ShowScreen(s Screen)            { p.screens = append(p.screens, s) }
func (p *recordingPresenter) ShowDemoBadge()                 { p.demoBadge = true }
func (p *recordingPresenter) SetVerifyMode(mode VerifyMode)  { p.mode = mode }
func (p *recordingPresenter) FieldError(field, msg string)   { p.fieldErrors[field] = msg }
func (p *recordingPresenter) ClearFieldErrors()              { p.fieldErrors = map[string]string{} }
func (p *recordingPresenter) VerifyError(msg string)         { p.verifyErrors = append(p.verifyErrors, msg) }
func (p *recordingPresenter) ClearVerifyError()              {}
func (p *recordingPresenter) SetLoading(loading bool)        { p.loading = append(p.loading, loading) }
func (p *recordingPresenter) RPDError(msg string)            { p.rpdErrors = append(p.rpdErrors, msg) }
func (p *recordingPresenter) ClearRPDError()                 {}
func (p *recordingPresenter) SetRPDStartEnabled(on bool)     { p.startEnabled = append(p.startEnabled, on) }
func (p *recordingPresenter) ShowQR(pngBase64 string)        { p.qr = pngBase64 }
func (p *recordingPresenter) ShowAppLinks(links AppLinks)    { p.links = &links }
func (p *recordingPresenter) ResetRPDPanel()                 { p.panelResets++ }
func (p *recordingPresenter) ShowSuccess(s SuccessSummary)   { p.success = &s }
func (p *recordingPresenter) currentScreen() Screen          { return p.screens[len(p.screens)-1] }

func (p *recordingPresenter) ShowBankDetails(res *models.BankVerificationResult, demo bool) {
	p.bank = res
	p.bankDemo = demo
	p.bankShown++
}

// fakeAPI implements APIClient with pluggable behavior.
type fakeAPI struct {
	configFn   func(ctx context.Context) (*dto.ConfigResponse, error)
	validateFn func(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error)
	initiateFn func(ctx context.Context) (*dto.RPDInitiation, error)
	statusFn   func(ctx context.Context, favID string) (*dto.RPDStatus, error)

	validateCalls int
	statusCalls   int
}

func (f *fakeAPI) Config(ctx context.Context) (*dto.ConfigResponse, error) {
	if f.configFn == nil {
		return &dto.ConfigResponse{Demo: true}, nil
	}
	return f.configFn(ctx)
}

func (f *fakeAPI) Validate(ctx context.Context, req *dto.ValidateRequest) (*dto.ValidateResponse, error) {
	f.validateCalls++
	return f.validateFn(ctx, req)
}

func (f *fakeAPI) InitiateRPD(ctx context.Context) (*dto.RPDInitiation, error) {
	return f.initiateFn(ctx)
}

func (f *fakeAPI) RPDStatus(ctx context.Context, favID string) (*dto.RPDStatus, error) {
	f.statusCalls++
	return f.statusFn(ctx, favID)
}
