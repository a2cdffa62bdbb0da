package did

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quotedex/didjws/jwk"
)

var (
	// ErrInvalidURI is returned when a string is not a did:<method>:<id> URI.
	ErrInvalidURI = errors.New("invalid did uri")
	// ErrMethodNotSupported is returned when resolution hits an unknown method.
	ErrMethodNotSupported = errors.New("did method not supported")
	// ErrUnsupportedKeyAlgorithm is returned by NewJWK for unknown algorithms.
	ErrUnsupportedKeyAlgorithm = errors.New("unsupported key algorithm")
)

// URI is a parsed DID without fragment or query parts.
type URI struct {
	Method string
	ID     string
}

// ParseURI splits a bare DID into method and method-specific id.
func ParseURI(s string) (URI, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[0] != "did" || parts[1] == "" || parts[2] == "" {
		return URI{}, fmt.Errorf("%w: %q", ErrInvalidURI, s)
	}
	if strings.ContainsAny(parts[2], "#?/") {
		return URI{}, fmt.Errorf("%w: %q carries a fragment or path", ErrInvalidURI, s)
	}
	return URI{Method: parts[1], ID: parts[2]}, nil
}

// VerificationMethod is a single key entry of a DID document.
type VerificationMethod struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Controller   string   `json:"controller"`
	PublicKeyJWK *jwk.Key `json:"publicKeyJwk,omitempty"`
}

// Document is the subset of a W3C DID document this module produces and reads.
type Document struct {
	Context            []string             `json:"@context,omitempty"`
	ID                 string               `json:"id"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication     []string             `json:"authentication,omitempty"`
	AssertionMethod    []string             `json:"assertionMethod,omitempty"`
}

// FindVerificationMethod looks up a verification method by its full id.
func (d Document) FindVerificationMethod(id string) (VerificationMethod, bool) {
	for _, vm := range d.VerificationMethod {
		if vm.ID == id {
			return vm, true
		}
	}
	return VerificationMethod{}, false
}

// Identity is a signing identity: a DID, its document, and the private keys
// backing the document's verification methods. The first key entry is the
// primary signing key. Identities are constructed once and read-only after.
type Identity struct {
	URI      string
	Document Document
	Keys     []jwk.Key
}

// PrimaryKeyID returns the public identifier of the identity's first
// verification method, which callers place into token headers as the kid.
func (id Identity) PrimaryKeyID() string {
	if len(id.Document.VerificationMethod) > 0 {
		return id.Document.VerificationMethod[0].ID
	}
	return id.URI + "#0"
}
