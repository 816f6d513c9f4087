package helpers

import "testing"

func TestPtrNonEmpty(t *testing.T) {
	if PtrNonEmpty("") != nil {
		t.Error("empty string should map to nil")
	}
	if got := PtrNonEmpty("x"); got == nil || *got != "x" {
		t.Errorf("PtrNonEmpty(\"x\") = %v", got)
	}
}

func TestValue(t *testing.T) {
	if got := Value[string](nil); got != "" {
		t.Errorf("Value(nil) = %q, want zero value", got)
	}
	if got := Value(Ptr(42)); got != 42 {
		t.Errorf("Value(Ptr(42)) = %d", got)
	}
}

func TestValueOr(t *testing.T) {
	if got := ValueOr[string](nil, "—"); got != "—" {
		t.Errorf("ValueOr(nil) = %q, want fallback", got)
	}
	if got := ValueOr(Ptr("vpa@oksbi"), "—"); got != "vpa@oksbi" {
		t.Errorf("ValueOr(non-nil) = %q", got)
	}
}
