package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lendbridge/intake-backend/internal/wizard"
)

func main() {
	server := flag.String("server", "http://localhost:3000", "intake backend base URL")
	mobile := flag.Bool("mobile", false, "prefer UPI app deep links over a QR code")
	flag.Parse()

	pres := &terminalPresenter{}
	api := wizard.NewClient(*server)
	session := wizard.NewSession(api, pres, wizard.TimerScheduler{}, *mobile)

	ctx := context.Background()
	session.Init(ctx)

	in := bufio.NewScanner(os.Stdin)
	for {
		switch session.Step() {
		case wizard.ScreenWelcome:
			prompt(in, "Press Enter to start your application")
			session.Begin()

		case wizard.ScreenDetails:
			name := prompt(in, "Full name: ")
			email := prompt(in, "Email: ")
			phone := prompt(in, "Mobile number (10 digits): ")
			loan := prompt(in, "Loan amount (₹50,000 – ₹50,00,000): ")
			session.SubmitDetails(name, email, phone, loan)

		case wizard.ScreenVerify:
			runVerify(ctx, session, in)

		case wizard.ScreenConfirm:
			if yes(prompt(in, "Submit this application? (y/n): ")) {
				session.Confirm()
			} else {
				session.Reset()
			}

		case wizard.ScreenSuccess:
			if yes(prompt(in, "Start another application? (y/n): ")) {
				session.Reset()
				continue
			}
			return
		}
	}
}

func runVerify(ctx context.Context, session *wizard.Session, in *bufio.Scanner) {
	choice := prompt(in, "Verify via (1) UPI ID or (2) ₹1 penny drop? [1/2]: ")

	if choice != "2" {
		session.SwitchMode(wizard.ModeUPI)
		upi := prompt(in, "Your UPI ID (e.g. name@okhdfcbank): ")
		session.SubmitUPI(ctx, upi)
		return
	}

	session.SwitchMode(wizard.ModeRPD)
	session.StartRPD(ctx)

	// The penny drop completes on a timer; wait for the controller to land
	// in a terminal state.
	for {
		if session.Step() == wizard.ScreenConfirm {
			return
		}
		switch session.RPD().State() {
		case wizard.StateFailed, wizard.StateIdle:
			session.CancelRPD()
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !in.Scan() {
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimSpace(in.Text())
}

func yes(s string) bool {
	return strings.EqualFold(s, "y") || strings.EqualFold(s, "yes")
}
