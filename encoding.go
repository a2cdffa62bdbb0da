package didjws

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// EncodeObject serializes v to canonical JSON (map keys sorted, struct field
// order fixed) and base64url-encodes the UTF-8 bytes without padding. Equal
// inputs always yield equal strings.
func EncodeObject(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode segment: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// EncodeBytes base64url-encodes raw bytes without padding.
func EncodeBytes(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeBytes inverts EncodeBytes.
func DecodeBytes(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// DecodeObject inverts EncodeObject into the given destination. Field order
// may differ from the original; semantic equality is what round-trips.
func DecodeObject(s string, into any) error {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode segment: %w", err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("decode segment: %w", err)
	}
	return nil
}
