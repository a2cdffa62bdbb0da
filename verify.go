package didjws

import (
	"context"
	"fmt"
	"strings"
)

// Verify checks a token on the default engine; see [Engine.Verify].
func Verify(ctx context.Context, token string) (DecodedToken, error) {
	return defaultEngine().Verify(ctx, token)
}

// Verify decodes a token, resolves the signer's DID document from the header
// kid, and checks the signature against the published verification method.
// The algorithm is re-derived from the resolved public key's tags, never
// trusted from the header alone.
func (e *Engine) Verify(ctx context.Context, token string) (DecodedToken, error) {
	decoded, err := e.verify(ctx, token)
	if err != nil {
		e.metrics.Inc(MetricVerifyFailure)
		e.auditVerifyFailed(decoded.Header.Kid, err)
		return DecodedToken{}, err
	}

	e.metrics.Inc(MetricVerifySuccess)
	return decoded, nil
}

func (e *Engine) verify(ctx context.Context, token string) (DecodedToken, error) {
	segments := strings.Split(token, ".")
	decoded, err := decodeToken(token)
	if err != nil {
		return DecodedToken{}, err
	}

	kid := decoded.Header.Kid
	if kid == "" {
		return decoded, fmt.Errorf("%w: header missing kid", ErrUnknownKeyID)
	}

	uri := kid
	if i := strings.IndexByte(kid, '#'); i >= 0 {
		uri = kid[:i]
	}

	document, err := e.resolver.Resolve(ctx, uri)
	if err != nil {
		return decoded, err
	}

	method, ok := document.FindVerificationMethod(kid)
	if !ok {
		return decoded, fmt.Errorf("%w: %q not in resolved document", ErrUnknownKeyID, kid)
	}
	if method.PublicKeyJWK == nil {
		return decoded, fmt.Errorf("%w: %q exposes no public jwk", ErrUnknownKeyID, kid)
	}

	publicKey := *method.PublicKeyJWK
	algorithmID, err := publicKey.AlgorithmID()
	if err != nil {
		return decoded, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	descriptor, err := e.registry.Resolve(algorithmID)
	if err != nil {
		return decoded, err
	}
	if descriptor.Label != decoded.Header.Alg {
		return decoded, fmt.Errorf("%w: header alg %q does not match key algorithm %q",
			ErrVerificationFailed, decoded.Header.Alg, descriptor.Label)
	}

	signature, err := DecodeBytes(segments[2])
	if err != nil {
		return decoded, fmt.Errorf("%w: signature segment: %v", ErrMalformedToken, err)
	}

	signingInput := segments[0] + "." + segments[1]
	if err := descriptor.Verify(publicKey, []byte(signingInput), signature); err != nil {
		return decoded, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}

	return decoded, nil
}
