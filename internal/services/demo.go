package services

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lendbridge/intake-backend/internal/bank"
	"github.com/lendbridge/intake-backend/internal/models"
	"github.com/lendbridge/intake-backend/pkg/helpers"
)

// DemoLatency approximates the live path's network delay so the demo UX
// matches production pacing.
const DemoLatency = 2200 * time.Millisecond

const maskChar = "X"

type mockAccount struct {
	accountNo string
	ifsc      string
	branch    string
}

// Fixed demo accounts keyed by handle substring; checked in order,
// first match wins.
var mockAccounts = []struct {
	key  string
	acct mockAccount
}{
	{"okhdfcbank", mockAccount{"50100123456789", "HDFC0001234", "Connaught Place, Delhi"}},
	{"okicici", mockAccount{"123456789012", "ICIC0002345", "MG Road, Bangalore"}},
	{"oksbi", mockAccount{"30987654321", "SBIN0003456", "Bandra, Mumbai"}},
	{"okaxis", mockAccount{"917010234567", "UTIB0004567", "Anna Nagar, Chennai"}},
	{"ybl", mockAccount{"100012345678", "YESB0000001", "Koregaon Park, Pune"}},
	{"ibl", mockAccount{"456789012345", "ICIC0005678", "Baner, Pune"}},
	{"paytm", mockAccount{"9123456789", "PYTM0123456", "Sector 62, Noida"}},
	{"kotak", mockAccount{"7312345678", "KKBK0006789", "Jubilee Hills, Hyderabad"}},
	{"upi", mockAccount{"9876543210", "SBIN0007890", "Sector 17, Chandigarh"}},
}

// demoGenerator produces deterministic mock verification payloads. It never
// fails; the only error it can return is context cancellation during the
// simulated latency.
type demoGenerator struct {
	latency time.Duration
	sleep   func(ctx context.Context, d time.Duration) error
	rand4   func() int
	newID   func(prefix string) string
}

func NewDemoGenerator(latency time.Duration) *demoGenerator {
	return &demoGenerator{
		latency: latency,
		sleep:   sleepCtx,
		rand4:   func() int { return rand.Intn(9000) + 1000 },
		newID:   demoID,
	}
}

func (g *demoGenerator) Generate(ctx context.Context, vpa, name string) (*models.BankVerificationResult, error) {
	info := bank.Resolve(vpa)
	handle := info.Handle
	if handle == "" {
		handle = "upi"
	}

	var acct mockAccount
	found := false
	for _, m := range mockAccounts {
		if strings.Contains(handle, m.key) {
			acct = m.acct
			found = true
			break
		}
	}
	if !found {
		r := strconv.Itoa(g.rand4())
		acct = mockAccount{
			accountNo: "7800" + r + r,
			ifsc:      info.IFSCPrefix + "0001234",
			branch:    "Main Branch",
		}
	}

	masked := MaskAccountNumber(acct.accountNo)

	if err := g.sleep(ctx, g.latency); err != nil {
		return nil, err
	}

	registered := name
	if registered == "" {
		registered = "Rahul Kumar"
	}

	return &models.BankVerificationResult{
		VPA:             helpers.Ptr(vpa),
		BankName:        info.Name,
		BankColor:       info.Color,
		RegisteredName:  registered,
		AccountNumber:   helpers.Ptr(masked),
		IFSCCode:        helpers.Ptr(acct.ifsc),
		BranchName:      helpers.Ptr(acct.branch),
		AccountStatus:   "active",
		AccountVerified: true,
		FundAccountID:   helpers.Ptr(g.newID("fa_demo_")),
		ValidationID:    g.newID("fav_demo_"),
	}, nil
}

// MaskAccountNumber keeps the first 2 and last 4 characters and replaces the
// middle with the mask character. Short inputs degrade gracefully (the repeat
// count never goes negative).
func MaskAccountNumber(raw string) string {
	first := raw
	if len(raw) > 2 {
		first = raw[:2]
	}
	last := raw
	if len(raw) > 4 {
		last = raw[len(raw)-4:]
	}
	middle := len(raw) - 6
	if middle < 0 {
		middle = 0
	}
	return first + strings.Repeat(maskChar, middle) + last
}

// demoID fabricates an identifier in the upstream's style.
func demoID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
