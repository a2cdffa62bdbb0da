package didjws

import (
	"fmt"
	"strings"
)

// Header is the protected header of a compact token.
type Header struct {
	Alg string `json:"alg"`
	Kid string `json:"kid"`
}

// DecodedToken is the structural decomposition of a compact token. The
// signature segment is returned still base64url-encoded: Decode never
// verifies it, and callers that need verification go through [Engine.Verify].
type DecodedToken struct {
	Header    Header
	Payload   map[string]any
	Signature string
}

// Decode splits a compact token into its three segments and decodes header
// and payload back into structured values, without verifying the signature.
func Decode(token string) (DecodedToken, error) {
	return defaultEngine().Decode(token)
}

// Decode is the structural decode operation; see the package-level [Decode].
func (e *Engine) Decode(token string) (DecodedToken, error) {
	decoded, err := decodeToken(token)
	if err != nil {
		e.metrics.Inc(MetricDecodeRejected)
		e.auditDecodeRejected(err)
		return DecodedToken{}, err
	}

	e.metrics.Inc(MetricDecodeSuccess)
	return decoded, nil
}

func decodeToken(token string) (DecodedToken, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return DecodedToken{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(segments))
	}

	var headerFields map[string]any
	if err := DecodeObject(segments[0], &headerFields); err != nil {
		return DecodedToken{}, fmt.Errorf("%w: header: %v", ErrMalformedToken, err)
	}
	if headerFields == nil {
		return DecodedToken{}, fmt.Errorf("%w: header is not a JSON object", ErrMalformedToken)
	}

	var payload map[string]any
	if err := DecodeObject(segments[1], &payload); err != nil {
		return DecodedToken{}, fmt.Errorf("%w: payload: %v", ErrMalformedToken, err)
	}
	if payload == nil {
		return DecodedToken{}, fmt.Errorf("%w: payload is not a JSON object", ErrMalformedToken)
	}

	var header Header
	if v, ok := headerFields["alg"].(string); ok {
		header.Alg = v
	}
	if v, ok := headerFields["kid"].(string); ok {
		header.Kid = v
	}

	return DecodedToken{
		Header:    header,
		Payload:   payload,
		Signature: segments[2],
	}, nil
}
