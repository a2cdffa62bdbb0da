package jwk

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// GenerateEd25519 creates a fresh Ed25519 private key tagged for EdDSA.
func GenerateEd25519() (Key, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Key{}, fmt.Errorf("generate ed25519 key: %w", err)
	}

	return Key{
		Kty: KeyTypeOKP,
		Alg: AlgorithmEdDSA,
		Crv: CurveEd25519,
		D:   base64.RawURLEncoding.EncodeToString(priv.Seed()),
		X:   base64.RawURLEncoding.EncodeToString(pub),
	}, nil
}

// SignEdDSA signs data with Ed25519. EdDSA signs the raw input; no digest.
func SignEdDSA(key Key, data []byte) ([]byte, error) {
	if !key.IsPrivate() {
		return nil, ErrNotPrivate
	}
	seed, err := base64.RawURLEncoding.DecodeString(key.D)
	if err != nil {
		return nil, fmt.Errorf("decode ed25519 seed: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, errors.New("ed25519 seed must be 32 bytes")
	}

	return ed25519.Sign(ed25519.NewKeyFromSeed(seed), data), nil
}

// VerifyEdDSA checks an Ed25519 signature against the key's public part.
func VerifyEdDSA(key Key, data, sig []byte) error {
	pub, err := Ed25519PublicKey(key)
	if err != nil {
		return err
	}
	if !ed25519.Verify(pub, data, sig) {
		return errors.New("eddsa signature mismatch")
	}
	return nil
}

// Ed25519PublicKey extracts the standard-library public key, usable with any
// external Ed25519 verifier.
func Ed25519PublicKey(key Key) (ed25519.PublicKey, error) {
	if key.X == "" {
		return nil, ErrIncompleteKey
	}
	pub, err := base64.RawURLEncoding.DecodeString(key.X)
	if err != nil {
		return nil, fmt.Errorf("decode ed25519 public key: %w", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		return nil, errors.New("ed25519 public key must be 32 bytes")
	}
	return ed25519.PublicKey(pub), nil
}
