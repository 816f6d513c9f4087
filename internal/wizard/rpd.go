package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/lendbridge/intake-backend/internal/models"
	"github.com/lendbridge/intake-backend/pkg/helpers"
)

// RPDState is the lifecycle state of a reverse penny drop session.
type RPDState int

const (
	StateIdle RPDState = iota
	StateStarting
	StateQRShown
	StateAppLinksShown
	StatePolling
	StateCompleted
	StateFailed
)

const (
	defaultClientPollInterval = 3 * time.Second
	defaultDemoCompleteDelay  = 3 * time.Second

	demoRPDVPA           = "demo@okhdfcbank"
	demoRPDAccountNumber = "50XXXXXX6789"
	demoRPDIFSC          = "HDFC0001234"
	demoRPDFallbackName  = "Rahul Kumar"
)

// RPDController drives one reverse penny drop session at a time. Timer
// callbacks re-enter through the controller and carry the generation they
// were scheduled under; Cancel bumps the generation, so a callback from a
// cancelled session is dropped even if its timer already fired.
type RPDController struct {
	api    APIClient
	sched  Scheduler
	pres   Presenter
	mobile bool

	pollInterval time.Duration
	demoDelay    time.Duration

	// onResult receives the verified bank details exactly once per
	// successful session.
	onResult func(res *models.BankVerificationResult, demo bool)

	mu    sync.Mutex
	gen   int
	state RPDState
	favID string
	timer Timer
}

func NewRPDController(api APIClient, sched Scheduler, pres Presenter, mobile bool,
	onResult func(res *models.BankVerificationResult, demo bool)) *RPDController {
	return &RPDController{
		api:          api,
		sched:        sched,
		pres:         pres,
		mobile:       mobile,
		pollInterval: defaultClientPollInterval,
		demoDelay:    defaultDemoCompleteDelay,
		onResult:     onResult,
		state:        StateIdle,
	}
}

// State reports the current lifecycle state.
func (c *RPDController) State() RPDState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// FavID reports the validation id of the current session, if any.
func (c *RPDController) FavID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.favID
}

// Start initiates a reverse penny drop. applicantName is only used to label
// the fabricated demo result. Calling Start while a session is already live
// is a caller error; Cancel first.
func (c *RPDController) Start(ctx context.Context, applicantName string) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.state = StateStarting
	c.favID = ""
	c.mu.Unlock()

	c.pres.ClearRPDError()
	c.pres.SetRPDStartEnabled(false)

	start, err := c.api.InitiateRPD(ctx)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.state = StateIdle
		c.mu.Unlock()
		c.pres.SetRPDStartEnabled(true)
		c.pres.RPDError(err.Error())
		return
	}

	c.favID = start.FavID

	if start.Demo {
		// Demo mode auto-completes after a short delay; no links, no QR.
		c.timer = c.sched.AfterFunc(c.demoDelay, func() {
			c.demoComplete(gen, applicantName)
		})
		c.mu.Unlock()
		return
	}

	switch {
	case c.mobile && start.IntentURL != nil:
		c.state = StateAppLinksShown
		c.mu.Unlock()
		c.pres.ShowAppLinks(AppLinks{
			Intent:  helpers.Value(start.IntentURL),
			PhonePe: helpers.Value(start.PhonepeURL),
			GPay:    helpers.Value(start.GpayURL),
			Paytm:   helpers.Value(start.PaytmURL),
			BHIM:    helpers.Value(start.BhimURL),
		})
	case start.QRCode != nil:
		c.state = StateQRShown
		c.mu.Unlock()
		c.pres.ShowQR(helpers.Value(start.QRCode))
	default:
		c.mu.Unlock()
	}

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.state = StatePolling
	c.schedulePollLocked(ctx, gen)
	c.mu.Unlock()
}

// Cancel tears the current session down and returns the controller to Idle.
// Safe to call at any time, including twice in a row.
func (c *RPDController) Cancel() {
	c.mu.Lock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.state = StateIdle
	c.favID = ""
	c.mu.Unlock()

	c.pres.ResetRPDPanel()
	c.pres.ClearRPDError()
	c.pres.SetRPDStartEnabled(true)
}

// schedulePollLocked arms the next poll. Caller holds c.mu.
func (c *RPDController) schedulePollLocked(ctx context.Context, gen int) {
	c.timer = c.sched.AfterFunc(c.pollInterval, func() {
		c.poll(ctx, gen)
	})
}

func (c *RPDController) poll(ctx context.Context, gen int) {
	c.mu.Lock()
	if gen != c.gen || c.state != StatePolling {
		c.mu.Unlock()
		return
	}
	favID := c.favID
	c.mu.Unlock()

	st, err := c.api.RPDStatus(ctx, favID)

	c.mu.Lock()
	if gen != c.gen || c.state != StatePolling {
		c.mu.Unlock()
		return
	}

	if err != nil {
		c.state = StateFailed
		c.timer = nil
		c.mu.Unlock()
		c.pres.RPDError(err.Error())
		return
	}

	switch {
	case st.Status == "completed" && st.Data != nil:
		c.state = StateCompleted
		c.timer = nil
		c.mu.Unlock()
		c.onResult(st.Data, st.Demo)
	case st.Status == "failed":
		c.state = StateFailed
		c.timer = nil
		c.mu.Unlock()
		c.pres.RPDError("Verification failed. Please try again.")
	default:
		// Still pending, ask again later.
		c.schedulePollLocked(ctx, gen)
		c.mu.Unlock()
	}
}

func (c *RPDController) demoComplete(gen int, applicantName string) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	name := applicantName
	if name == "" {
		name = demoRPDFallbackName
	}
	res := &models.BankVerificationResult{
		VPA:             helpers.Ptr(demoRPDVPA),
		BankName:        "HDFC Bank",
		BankColor:       "#004C8F",
		RegisteredName:  name,
		AccountNumber:   helpers.Ptr(demoRPDAccountNumber),
		AccountType:     helpers.Ptr("SAVINGS"),
		IFSCCode:        helpers.Ptr(demoRPDIFSC),
		AccountStatus:   "active",
		AccountVerified: true,
		ValidationID:    c.favID,
	}
	c.state = StateCompleted
	c.timer = nil
	c.mu.Unlock()

	c.onResult(res, true)
}
