package svd

import "testing"

func TestNormalizedVersionCanonicalizesSemver(t *testing.T) {
	d := NewDevice()
	d.Version = "1.0"
	if got, want := d.NormalizedVersion(), "v1.0.0"; got != want {
		t.Fatalf("NormalizedVersion() = %q, want %q", got, want)
	}
}

func TestNormalizedVersionPassesThroughNonSemver(t *testing.T) {
	d := NewDevice()
	d.Version = "Rev A"
	if got := d.NormalizedVersion(); got != "Rev A" {
		t.Fatalf("NormalizedVersion() = %q, want unchanged input", got)
	}
}

func TestNormalizedVersionEmpty(t *testing.T) {
	d := NewDevice()
	if got := d.NormalizedVersion(); got != "" {
		t.Fatalf("NormalizedVersion() = %q, want empty", got)
	}
}
