package didjws

import (
	"fmt"
	"time"

	"github.com/quotedex/didjws/did"
	"github.com/quotedex/didjws/jwk"
)

// Claims the builder owns. They are merged over the caller payload, so a
// caller-supplied iss or sub is silently overwritten.
const (
	claimIssuer  = "iss"
	claimSubject = "sub"
)

// Sign builds a compact token on the default engine; see [Engine.Sign].
func Sign(issuer did.Identity, subject string, payload map[string]any) (string, error) {
	return defaultEngine().Sign(issuer, subject, payload)
}

// Sign builds and signs a compact token issued by the identity's primary key.
//
// The signing algorithm is resolved from the key's algorithm and curve tags;
// the header carries the resolved algorithm label and the identity's first
// verification method id. Any failure is fatal to the call: a token is either
// fully produced or not produced at all.
func (e *Engine) Sign(issuer did.Identity, subject string, payload map[string]any) (string, error) {
	start := time.Now()

	token, err := e.sign(issuer, subject, payload)
	if err != nil {
		e.metrics.Inc(MetricSignFailure)
		e.auditSignFailed(issuer.URI, subject, err)
		return "", err
	}

	e.metrics.Inc(MetricSignSuccess)
	e.metrics.Observe(MetricSignLatency, time.Since(start))
	e.auditTokenSigned(issuer.URI, subject)
	return token, nil
}

func (e *Engine) sign(issuer did.Identity, subject string, payload map[string]any) (string, error) {
	key, algorithmID, keyID, err := primarySigningKey(issuer)
	if err != nil {
		return "", err
	}

	descriptor, err := e.registry.Resolve(algorithmID)
	if err != nil {
		return "", err
	}

	encodedHeader, err := EncodeObject(Header{Alg: descriptor.Label, Kid: keyID})
	if err != nil {
		return "", err
	}

	claims := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		claims[k] = v
	}
	// Canonical claims are written after the caller payload on purpose:
	// callers cannot override the issuer or subject of their own token.
	claims[claimIssuer] = issuer.URI
	claims[claimSubject] = subject

	encodedPayload, err := EncodeObject(claims)
	if err != nil {
		return "", err
	}

	signingInput := encodedHeader + "." + encodedPayload
	signature, err := descriptor.Sign(key, []byte(signingInput))
	if err != nil {
		return "", fmt.Errorf("sign %s: %w", descriptor.Label, err)
	}

	return signingInput + "." + EncodeBytes(signature), nil
}

// primarySigningKey extracts the identity's first key entry, its composite
// algorithm id, and the public key identifier for the token header.
func primarySigningKey(identity did.Identity) (jwk.Key, string, string, error) {
	if len(identity.Keys) == 0 {
		return jwk.Key{}, "", "", ErrNoSigningKey
	}

	key := identity.Keys[0]
	algorithmID, err := key.AlgorithmID()
	if err != nil {
		return jwk.Key{}, "", "", fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	return key, algorithmID, identity.PrimaryKeyID(), nil
}
