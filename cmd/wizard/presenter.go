package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lendbridge/intake-backend/internal/models"
	"github.com/lendbridge/intake-backend/internal/wizard"
	"github.com/lendbridge/intake-backend/pkg/helpers"
)

// terminalPresenter renders the wizard to stdout.
type terminalPresenter struct {
	demo bool
}

func (p *terminalPresenter) ShowScreen(s wizard.Screen) {
	switch s {
	case wizard.ScreenWelcome:
		fmt.Println()
		fmt.Println("LendBridge — personal loan application")
		if p.demo {
			fmt.Println("[demo mode: no real bank calls will be made]")
		}
	case wizard.ScreenDetails:
		fmt.Println()
		fmt.Println("Step 1 of 3 — your details")
	case wizard.ScreenVerify:
		fmt.Println()
		fmt.Println("Step 2 of 3 — verify your bank account")
	case wizard.ScreenConfirm:
		fmt.Println()
		fmt.Println("Step 3 of 3 — confirm your details")
	case wizard.ScreenSuccess:
		fmt.Println()
		fmt.Println("Application submitted!")
	}
}

func (p *terminalPresenter) ShowDemoBadge() {
	p.demo = true
}

func (p *terminalPresenter) SetVerifyMode(mode wizard.VerifyMode) {
	if mode == wizard.ModeRPD {
		fmt.Println("Verification via a ₹1 reverse penny drop. The rupee is refunded automatically.")
	}
}

func (p *terminalPresenter) FieldError(field, msg string) {
	fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
}

func (p *terminalPresenter) ClearFieldErrors() {}

func (p *terminalPresenter) VerifyError(msg string) {
	fmt.Fprintf(os.Stderr, "  verification failed: %s\n", msg)
}

func (p *terminalPresenter) ClearVerifyError() {}

func (p *terminalPresenter) SetLoading(loading bool) {
	if loading {
		fmt.Println("  verifying...")
	}
}

func (p *terminalPresenter) RPDError(msg string) {
	fmt.Fprintf(os.Stderr, "  %s\n", msg)
}

func (p *terminalPresenter) ClearRPDError() {}

func (p *terminalPresenter) SetRPDStartEnabled(enabled bool) {}

func (p *terminalPresenter) ShowQR(pngBase64 string) {
	fmt.Printf("  Scan the QR with any UPI app to pay ₹1 (QR PNG, %d bytes base64).\n", len(pngBase64))
	fmt.Println("  Waiting for the payment...")
}

func (p *terminalPresenter) ShowAppLinks(links wizard.AppLinks) {
	fmt.Println("  Open one of these links on your phone to pay ₹1:")
	for _, l := range []struct{ name, url string }{
		{"PhonePe", links.PhonePe},
		{"Google Pay", links.GPay},
		{"Paytm", links.Paytm},
		{"BHIM", links.BHIM},
		{"Any UPI app", links.Intent},
	} {
		if l.url != "" {
			fmt.Printf("    %-12s %s\n", l.name, l.url)
		}
	}
	fmt.Println("  Waiting for the payment...")
}

func (p *terminalPresenter) ResetRPDPanel() {}

func (p *terminalPresenter) ShowBankDetails(res *models.BankVerificationResult, demo bool) {
	fmt.Println()
	fmt.Printf("  Bank:            %s\n", res.BankName)
	fmt.Printf("  Account holder:  %s\n", res.RegisteredName)
	fmt.Printf("  UPI ID:          %s\n", helpers.ValueOr(res.VPA, "—"))
	if res.AccountNumber != nil {
		fmt.Printf("  Account:         %s\n", helpers.Value(res.AccountNumber))
	}
	if res.IFSCCode != nil {
		fmt.Printf("  IFSC:            %s\n", helpers.Value(res.IFSCCode))
	}
	fmt.Printf("  Status:          %s\n", res.AccountStatus)
	fmt.Printf("  Fund account:    %s\n", helpers.ValueOr(res.FundAccountID, "—"))
	fmt.Printf("  Validation id:   %s\n", res.ValidationID)
	if demo {
		fmt.Println("  (demo data, not a real bank lookup)")
	}
}

func (p *terminalPresenter) ShowSuccess(s wizard.SuccessSummary) {
	fmt.Printf("  Application id:  %s\n", s.ApplicationID)
	fmt.Printf("  Applicant:       %s\n", s.Name)
	if s.BankName != "" {
		fmt.Printf("  Bank:            %s (Verified)\n", s.BankName)
	}
	fmt.Printf("  Loan amount:     ₹%s\n", formatINR(s.LoanAmount))
	fmt.Println()
	fmt.Println("Our team will contact you within 24 hours.")
}

// formatINR groups digits the Indian way: last three, then pairs.
func formatINR(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
