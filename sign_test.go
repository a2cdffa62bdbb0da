package didjws

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/quotedex/didjws/did"
	"github.com/quotedex/didjws/jwk"
)

func newIdentity(t *testing.T, alg did.Algorithm) did.Identity {
	t.Helper()
	id, err := did.NewJWK(alg)
	if err != nil {
		t.Fatalf("new identity: %v", err)
	}
	return id
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New().Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	return engine
}

func TestSignDecodeRoundTrip(t *testing.T) {
	engine := newEngine(t)
	issuer := newIdentity(t, did.AlgorithmES256K)

	payload := map[string]any{
		"amount": "100.00",
		"count":  float64(3),
		"nested": map[string]any{"kind": "WIRE"},
	}

	token, err := engine.Sign(issuer, "did:example:bob", payload)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	decoded, err := engine.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := map[string]any{
		"amount": "100.00",
		"count":  float64(3),
		"nested": map[string]any{"kind": "WIRE"},
		"iss":    issuer.URI,
		"sub":    "did:example:bob",
	}
	if !reflect.DeepEqual(decoded.Payload, want) {
		t.Fatalf("payload mismatch:\ngot  %#v\nwant %#v", decoded.Payload, want)
	}
}

func TestPayloadPrecedenceCanonicalClaimsWin(t *testing.T) {
	engine := newEngine(t)
	issuer := newIdentity(t, did.AlgorithmES256K)

	token, err := engine.Sign(issuer, "did:example:subject", map[string]any{
		"iss": "attacker",
		"sub": "attacker",
		"x":   float64(1),
	})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	decoded, err := engine.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Payload["iss"] != issuer.URI {
		t.Fatalf("caller overrode iss: %v", decoded.Payload["iss"])
	}
	if decoded.Payload["sub"] != "did:example:subject" {
		t.Fatalf("caller overrode sub: %v", decoded.Payload["sub"])
	}
	if decoded.Payload["x"] != float64(1) {
		t.Fatalf("caller field lost: %v", decoded.Payload["x"])
	}
}

func TestAlgorithmBinding(t *testing.T) {
	engine := newEngine(t)

	cases := []struct {
		alg   did.Algorithm
		label string
	}{
		{did.AlgorithmES256K, "ES256K"},
		{did.AlgorithmEdDSA, "EdDSA"},
	}
	for _, tc := range cases {
		issuer := newIdentity(t, tc.alg)

		token, err := engine.Sign(issuer, "did:example:bob", nil)
		if err != nil {
			t.Fatalf("sign with %s: %v", tc.alg, err)
		}
		decoded, err := engine.Decode(token)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if decoded.Header.Alg != tc.label {
			t.Fatalf("header alg %q, want %q", decoded.Header.Alg, tc.label)
		}
		if decoded.Header.Kid != issuer.PrimaryKeyID() {
			t.Fatalf("header kid %q, want %q", decoded.Header.Kid, issuer.PrimaryKeyID())
		}
	}
}

func TestSignUnsupportedAlgorithm(t *testing.T) {
	engine := newEngine(t)
	issuer := did.Identity{
		URI: "did:example:alice",
		Keys: []jwk.Key{{
			Kty: "EC",
			Alg: "ES384",
			Crv: "P-384",
			D:   "ZmFrZQ",
		}},
	}

	token, err := engine.Sign(issuer, "did:example:bob", nil)
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Fatalf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
	if !strings.Contains(err.Error(), "ES384:P-384") {
		t.Fatalf("error must carry the unresolved id, got %q", err)
	}
	if token != "" {
		t.Fatal("no partial token may be produced on failure")
	}
}

func TestSignNoSigningKey(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.Sign(did.Identity{URI: "did:example:empty"}, "s", nil); !errors.Is(err, ErrNoSigningKey) {
		t.Fatalf("expected ErrNoSigningKey, got %v", err)
	}
}

func TestSignMalformedKey(t *testing.T) {
	engine := newEngine(t)

	noCurve := did.Identity{
		URI:  "did:example:alice",
		Keys: []jwk.Key{{Kty: "EC", Alg: "ES256K", D: "ZmFrZQ"}},
	}
	if _, err := engine.Sign(noCurve, "s", nil); !errors.Is(err, ErrMalformedKey) {
		t.Fatalf("expected ErrMalformedKey for missing curve, got %v", err)
	}

	noAlg := did.Identity{
		URI:  "did:example:alice",
		Keys: []jwk.Key{{Kty: "EC", Crv: "secp256k1", D: "ZmFrZQ"}},
	}
	if _, err := engine.Sign(noAlg, "s", nil); !errors.Is(err, ErrMalformedKey) {
		t.Fatalf("expected ErrMalformedKey for missing algorithm, got %v", err)
	}
}

func TestEndToEndExample(t *testing.T) {
	issuer := newIdentity(t, did.AlgorithmES256K)

	token, err := Sign(issuer, "did:example:bob", map[string]any{"beep": "boop"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected three-segment token, got %q", token)
	}

	decoded, err := Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Header.Alg != "ES256K" {
		t.Fatalf("header alg %q", decoded.Header.Alg)
	}
	if decoded.Header.Kid != issuer.Document.VerificationMethod[0].ID {
		t.Fatalf("header kid %q", decoded.Header.Kid)
	}
	if decoded.Payload["iss"] != issuer.URI ||
		decoded.Payload["sub"] != "did:example:bob" ||
		decoded.Payload["beep"] != "boop" {
		t.Fatalf("unexpected payload %#v", decoded.Payload)
	}
	if decoded.Signature == "" {
		t.Fatal("signature segment missing")
	}
}

func TestSignCustomAlgorithm(t *testing.T) {
	engine, err := New().WithAlgorithm(Descriptor{
		ID:    "TEST:flat",
		Label: "TEST",
		Sign: func(_ jwk.Key, data []byte) ([]byte, error) {
			return []byte("static-signature"), nil
		},
		Verify: func(_ jwk.Key, _, _ []byte) error {
			return nil
		},
	}).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	issuer := did.Identity{
		URI:  "did:example:custom",
		Keys: []jwk.Key{{Kty: "EC", Alg: "TEST", Crv: "flat", D: "ZmFrZQ"}},
	}
	token, err := engine.Sign(issuer, "s", nil)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	decoded, err := engine.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Header.Alg != "TEST" {
		t.Fatalf("header alg %q", decoded.Header.Alg)
	}
	if decoded.Signature != EncodeBytes([]byte("static-signature")) {
		t.Fatalf("unexpected signature segment %q", decoded.Signature)
	}
}
