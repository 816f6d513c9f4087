package bank

import "testing"

func TestResolveKnownHandles(t *testing.T) {
	tests := []struct {
		vpa        string
		wantName   string
		wantPrefix string
	}{
		{"asha@oksbi", "State Bank of India", "SBIN"},
		{"rahul@okhdfcbank", "HDFC Bank", "HDFC"},
		{"x@ybl", "PhonePe (Yes Bank)", "YESB"},
		{"x@ibl", "PhonePe (Yes Bank)", "YESB"},
		{"someone@paytm", "Paytm Payments Bank", "PYTM"},
		{"9876543210@upi", "BHIM UPI (SBI)", "SBIN"},
	}
	for _, tc := range tests {
		got := Resolve(tc.vpa)
		if got.Name != tc.wantName || got.IFSCPrefix != tc.wantPrefix {
			t.Errorf("Resolve(%q) = %q/%q, want %q/%q", tc.vpa, got.Name, got.IFSCPrefix, tc.wantName, tc.wantPrefix)
		}
	}
}

// The table is ordered and matching is substring based, so "okicici" must
// resolve via the okicici row even though "icici" also appears later.
func TestResolveFirstMatchWins(t *testing.T) {
	got := Resolve("user@okicici")
	if got.Name != "ICICI Bank" {
		t.Fatalf("expected ICICI Bank, got %q", got.Name)
	}
	// "oksbi" contains "sbi"; the oksbi row is earlier and must win.
	got = Resolve("user@oksbi")
	if got.IFSCPrefix != "SBIN" || got.Name != "State Bank of India" {
		t.Fatalf("oksbi resolved to %+v", got)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	first := Resolve("a@okaxis")
	for i := 0; i < 50; i++ {
		if got := Resolve("a@okaxis"); got != first {
			t.Fatalf("resolution changed between calls: %+v vs %+v", got, first)
		}
	}
}

func TestResolveFallback(t *testing.T) {
	got := Resolve("user@mysterybank")
	if got.Name != "MYSTERYBANK Bank" {
		t.Errorf("fallback name = %q, want MYSTERYBANK Bank", got.Name)
	}
	if got.IFSCPrefix != FallbackIFSCPrefix || got.Color != FallbackColor {
		t.Errorf("fallback metadata = %+v", got)
	}
}

func TestResolveEmptyHandle(t *testing.T) {
	for _, vpa := range []string{"nobody", "nobody@", ""} {
		got := Resolve(vpa)
		if got.Name != "Unknown Bank" {
			t.Errorf("Resolve(%q).Name = %q, want Unknown Bank", vpa, got.Name)
		}
	}
}

func TestResolveLowercasesHandle(t *testing.T) {
	got := Resolve("User@OkSBI")
	if got.Handle != "oksbi" {
		t.Errorf("handle = %q, want oksbi", got.Handle)
	}
	if got.Name != "State Bank of India" {
		t.Errorf("name = %q", got.Name)
	}
}
