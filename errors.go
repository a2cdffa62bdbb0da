package didjws

import "errors"

var (
	// ErrNoSigningKey is returned when an identity holds no key entries.
	ErrNoSigningKey = errors.New("identity has no signing key")
	// ErrMalformedKey is returned when a key entry lacks its required algorithm or curve tag.
	ErrMalformedKey = errors.New("malformed signing key")
	// ErrUnsupportedAlgorithm is returned when a composite algorithm id has no registered descriptor.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	// ErrMalformedToken is returned when a token does not decode into three valid segments.
	ErrMalformedToken = errors.New("malformed compact token")
	// ErrUnknownKeyID is returned when verification cannot locate the header kid in the resolved document.
	ErrUnknownKeyID = errors.New("unknown key id")
	// ErrVerificationFailed is returned when a signature does not verify against the resolved key.
	ErrVerificationFailed = errors.New("token verification failed")
	// ErrDuplicateAlgorithm is returned when registration reuses a composite id.
	ErrDuplicateAlgorithm = errors.New("algorithm id already registered")
)
