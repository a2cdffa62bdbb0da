package did

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/quotedex/didjws/jwk"
)

// MethodJWK is the only DID method this module creates and resolves locally.
const MethodJWK = "jwk"

const didContext = "https://www.w3.org/ns/did/v1"

// Algorithm selects the key type minted by NewJWK.
type Algorithm string

const (
	// AlgorithmES256K mints a secp256k1 key signed with ES256K.
	AlgorithmES256K Algorithm = jwk.AlgorithmES256K
	// AlgorithmEdDSA mints an Ed25519 key signed with EdDSA.
	AlgorithmEdDSA Algorithm = jwk.AlgorithmEdDSA
)

// NewJWK mints a fresh did:jwk identity. The DID is the base64url encoding of
// the public JWK; the document exposes it as verification method "<did>#0".
func NewJWK(alg Algorithm) (Identity, error) {
	var (
		key jwk.Key
		err error
	)
	switch alg {
	case AlgorithmES256K:
		key, err = jwk.GenerateES256K()
	case AlgorithmEdDSA:
		key, err = jwk.GenerateEd25519()
	default:
		return Identity{}, fmt.Errorf("%w: %q", ErrUnsupportedKeyAlgorithm, alg)
	}
	if err != nil {
		return Identity{}, err
	}

	pub := key.Public()
	encoded, err := json.Marshal(pub)
	if err != nil {
		return Identity{}, fmt.Errorf("encode public jwk: %w", err)
	}

	uri := "did:" + MethodJWK + ":" + base64.RawURLEncoding.EncodeToString(encoded)
	return Identity{
		URI:      uri,
		Document: jwkDocument(uri, pub),
		Keys:     []jwk.Key{key},
	}, nil
}

// decodeJWKDocument reconstructs a did:jwk document from the method-specific
// id, which is itself the base64url-encoded public JWK.
func decodeJWKDocument(uri, methodSpecificID string) (Document, error) {
	raw, err := base64.RawURLEncoding.DecodeString(methodSpecificID)
	if err != nil {
		return Document{}, fmt.Errorf("%w: undecodable did:jwk id: %v", ErrInvalidURI, err)
	}

	var pub jwk.Key
	if err := json.Unmarshal(raw, &pub); err != nil {
		return Document{}, fmt.Errorf("%w: did:jwk id is not a jwk: %v", ErrInvalidURI, err)
	}

	return jwkDocument(uri, pub.Public()), nil
}

func jwkDocument(uri string, pub jwk.Key) Document {
	vmID := uri + "#0"
	return Document{
		Context: []string{didContext},
		ID:      uri,
		VerificationMethod: []VerificationMethod{{
			ID:           vmID,
			Type:         "JsonWebKey2020",
			Controller:   uri,
			PublicKeyJWK: &pub,
		}},
		Authentication:  []string{vmID},
		AssertionMethod: []string{vmID},
	}
}
