package jwk

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

const (
	secpScalarSize      = 32
	es256kSignatureSize = 64
)

// GenerateES256K creates a fresh secp256k1 private key tagged for ES256K.
func GenerateES256K() (Key, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return Key{}, fmt.Errorf("generate secp256k1 key: %w", err)
	}

	pub := priv.PubKey().SerializeUncompressed()
	return Key{
		Kty: KeyTypeEC,
		Alg: AlgorithmES256K,
		Crv: CurveSecp256k1,
		D:   base64.RawURLEncoding.EncodeToString(priv.Serialize()),
		X:   base64.RawURLEncoding.EncodeToString(pub[1 : 1+secpScalarSize]),
		Y:   base64.RawURLEncoding.EncodeToString(pub[1+secpScalarSize:]),
	}, nil
}

// SignES256K signs data with ECDSA over secp256k1 and a SHA-256 digest,
// returning the 64-byte R||S form JOSE verifiers expect.
func SignES256K(key Key, data []byte) ([]byte, error) {
	if !key.IsPrivate() {
		return nil, ErrNotPrivate
	}
	raw, err := base64.RawURLEncoding.DecodeString(key.D)
	if err != nil {
		return nil, fmt.Errorf("decode secp256k1 private scalar: %w", err)
	}
	if len(raw) != secpScalarSize {
		return nil, errors.New("secp256k1 private scalar must be 32 bytes")
	}

	priv := secp256k1.PrivKeyFromBytes(raw)
	digest := sha256.Sum256(data)
	sig := secpecdsa.Sign(priv, digest[:])

	r := sig.R()
	s := sig.S()
	rBytes := r.Bytes()
	sBytes := s.Bytes()

	out := make([]byte, es256kSignatureSize)
	copy(out[:secpScalarSize], rBytes[:])
	copy(out[secpScalarSize:], sBytes[:])
	return out, nil
}

// VerifyES256K checks a 64-byte R||S signature against the key's public part.
func VerifyES256K(key Key, data, sig []byte) error {
	if len(sig) != es256kSignatureSize {
		return errors.New("es256k signature must be 64 bytes")
	}

	pub, err := es256kPublicKey(key)
	if err != nil {
		return err
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:secpScalarSize]); overflow {
		return errors.New("es256k signature r overflows curve order")
	}
	if overflow := s.SetByteSlice(sig[secpScalarSize:]); overflow {
		return errors.New("es256k signature s overflows curve order")
	}

	digest := sha256.Sum256(data)
	if !secpecdsa.NewSignature(&r, &s).Verify(digest[:], pub) {
		return errors.New("es256k signature mismatch")
	}
	return nil
}

func es256kPublicKey(key Key) (*secp256k1.PublicKey, error) {
	if key.X == "" || key.Y == "" {
		return nil, ErrIncompleteKey
	}
	xb, err := base64.RawURLEncoding.DecodeString(key.X)
	if err != nil {
		return nil, fmt.Errorf("decode secp256k1 x coordinate: %w", err)
	}
	yb, err := base64.RawURLEncoding.DecodeString(key.Y)
	if err != nil {
		return nil, fmt.Errorf("decode secp256k1 y coordinate: %w", err)
	}
	if len(xb) > secpScalarSize || len(yb) > secpScalarSize {
		return nil, errors.New("secp256k1 coordinate too long")
	}

	// Uncompressed point encoding; coordinates left-padded to 32 bytes.
	raw := make([]byte, 1+2*secpScalarSize)
	raw[0] = 0x04
	copy(raw[1+secpScalarSize-len(xb):1+secpScalarSize], xb)
	copy(raw[len(raw)-len(yb):], yb)

	pub, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("parse secp256k1 public key: %w", err)
	}
	return pub, nil
}
