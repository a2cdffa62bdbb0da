package didjws

import (
	"errors"
	"testing"

	"github.com/quotedex/didjws/jwk"
)

func TestBuilderSingleUse(t *testing.T) {
	b := New()
	if _, err := b.Build(); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected reused builder to fail")
	}
}

func TestBuilderRejectsDuplicateAlgorithm(t *testing.T) {
	dup := Descriptor{
		ID:     jwk.AlgorithmID(jwk.AlgorithmES256K, jwk.CurveSecp256k1),
		Label:  "ES256K",
		Sign:   jwk.SignES256K,
		Verify: jwk.VerifyES256K,
	}
	if _, err := New().WithAlgorithm(dup).Build(); !errors.Is(err, ErrDuplicateAlgorithm) {
		t.Fatalf("expected ErrDuplicateAlgorithm, got %v", err)
	}
}

func TestBuilderRejectsIncompleteDescriptor(t *testing.T) {
	if _, err := New().WithAlgorithm(Descriptor{ID: "X:y"}).Build(); err == nil {
		t.Fatal("expected incomplete descriptor to fail the build")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	cfg := Config{Audit: AuditConfig{Enabled: true, BufferSize: -1}}
	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Fatal("expected invalid audit buffer size to fail the build")
	}
}
