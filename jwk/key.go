package jwk

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// Key type and curve names used by the supported algorithms.
const (
	KeyTypeEC  = "EC"
	KeyTypeOKP = "OKP"

	AlgorithmES256K = "ES256K"
	AlgorithmEdDSA  = "EdDSA"

	CurveSecp256k1 = "secp256k1"
	CurveEd25519   = "Ed25519"
)

var (
	// ErrMissingAlgorithm is returned when a key carries no algorithm tag.
	ErrMissingAlgorithm = errors.New("jwk missing algorithm tag")
	// ErrMissingCurve is returned when a key carries no curve tag.
	ErrMissingCurve = errors.New("jwk missing curve tag")
	// ErrNotPrivate is returned when a signing operation receives a public-only key.
	ErrNotPrivate = errors.New("jwk has no private material")
	// ErrUnsupportedKeyType is returned for key types outside EC and OKP.
	ErrUnsupportedKeyType = errors.New("unsupported jwk key type")
	// ErrIncompleteKey is returned when required public members are absent.
	ErrIncompleteKey = errors.New("jwk missing required public members")
)

// Key is a JSON Web Key restricted to the shapes this module produces.
//
// Alg and Crv are required tags: the composite of the two selects the signing
// implementation, and a key missing either is rejected at the boundary rather
// than failing mid-sign. D holds the private material and is stripped by
// [Key.Public] before a key is embedded anywhere visible.
type Key struct {
	Kty string `json:"kty"`
	Alg string `json:"alg,omitempty"`
	Crv string `json:"crv,omitempty"`
	D   string `json:"d,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
}

// AlgorithmID builds the composite registry id for an algorithm/curve pair.
func AlgorithmID(alg, crv string) string {
	return alg + ":" + crv
}

// AlgorithmID returns the composite id derived from the key's required tags.
func (k Key) AlgorithmID() (string, error) {
	if k.Alg == "" {
		return "", ErrMissingAlgorithm
	}
	if k.Crv == "" {
		return "", ErrMissingCurve
	}
	return AlgorithmID(k.Alg, k.Crv), nil
}

// IsPrivate reports whether the key carries private material.
func (k Key) IsPrivate() bool {
	return k.D != ""
}

// Public returns a copy of the key with the private material removed.
func (k Key) Public() Key {
	k.D = ""
	return k
}

// Thumbprint computes the RFC 7638 thumbprint of the key's public part,
// base64url-encoded without padding.
func (k Key) Thumbprint() (string, error) {
	var canonical string
	switch k.Kty {
	case KeyTypeEC:
		if k.Crv == "" || k.X == "" || k.Y == "" {
			return "", ErrIncompleteKey
		}
		// Required members in lexicographic order, per RFC 7638 §3.2.
		canonical = fmt.Sprintf(`{"crv":%q,"kty":%q,"x":%q,"y":%q}`, k.Crv, k.Kty, k.X, k.Y)
	case KeyTypeOKP:
		if k.Crv == "" || k.X == "" {
			return "", ErrIncompleteKey
		}
		canonical = fmt.Sprintf(`{"crv":%q,"kty":%q,"x":%q}`, k.Crv, k.Kty, k.X)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKeyType, k.Kty)
	}

	sum := sha256.Sum256([]byte(canonical))
	return base64.RawURLEncoding.EncodeToString(sum[:]), nil
}
