package didjws

import (
	"fmt"

	"github.com/quotedex/didjws/jwk"
)

// Descriptor binds a composite algorithm id to its signing implementation.
//
// ID is the composite "<alg>:<crv>" key the registry dispatches on; Label is
// the JOSE algorithm name written into token headers. Descriptors are
// registered once and treated as immutable afterward.
type Descriptor struct {
	ID    string
	Label string

	// Sign produces a raw signature over data using the key's private
	// material. The key is borrowed for the duration of the call only.
	Sign func(key jwk.Key, data []byte) ([]byte, error)

	// Verify checks a raw signature using the key's public material.
	Verify func(key jwk.Key, data, sig []byte) error
}

// Registry maps composite algorithm ids to descriptors. It is populated
// during construction and never mutated afterward, so concurrent reads need
// no locking.
type Registry struct {
	descriptors map[string]Descriptor
}

func newRegistry() *Registry {
	return &Registry{descriptors: make(map[string]Descriptor)}
}

// newDefaultRegistry registers the two algorithms this module mints keys for.
func newDefaultRegistry() *Registry {
	r := newRegistry()
	for _, d := range []Descriptor{
		{
			ID:     jwk.AlgorithmID(jwk.AlgorithmES256K, jwk.CurveSecp256k1),
			Label:  jwk.AlgorithmES256K,
			Sign:   jwk.SignES256K,
			Verify: jwk.VerifyES256K,
		},
		{
			ID:     jwk.AlgorithmID(jwk.AlgorithmEdDSA, jwk.CurveEd25519),
			Label:  jwk.AlgorithmEdDSA,
			Sign:   jwk.SignEdDSA,
			Verify: jwk.VerifyEdDSA,
		},
	} {
		// Built-in ids are distinct; register cannot fail here.
		_ = r.register(d)
	}
	return r
}

func (r *Registry) register(d Descriptor) error {
	if d.ID == "" || d.Label == "" || d.Sign == nil || d.Verify == nil {
		return fmt.Errorf("incomplete descriptor for %q", d.ID)
	}
	if _, exists := r.descriptors[d.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, d.ID)
	}
	r.descriptors[d.ID] = d
	return nil
}

// Resolve returns the descriptor for a composite id. A miss is a hard error
// carrying the unresolved id; there is no default algorithm.
func (r *Registry) Resolve(id string) (Descriptor, error) {
	d, ok := r.descriptors[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, id)
	}
	return d, nil
}
