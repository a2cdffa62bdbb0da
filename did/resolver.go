package did

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrCacheMiss is returned by a DocumentCache when a DID has no cached entry.
var ErrCacheMiss = errors.New("did document not cached")

// DocumentCache stores resolved documents keyed by DID URI. Implementations
// must return ErrCacheMiss (possibly wrapped) for absent entries.
type DocumentCache interface {
	Get(ctx context.Context, uri string) (Document, error)
	Put(ctx context.Context, uri string, doc Document) error
}

// Resolver turns DID URIs back into documents. Resolution of did:jwk is a
// pure local decode; the cache exists for callers that front slower methods
// or want to skip repeated decoding on hot verification paths.
type Resolver struct {
	cache DocumentCache

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewResolver builds a resolver; cache may be nil for cache-less resolution.
func NewResolver(cache DocumentCache) *Resolver {
	return &Resolver{cache: cache}
}

// Resolve returns the document for a bare DID URI (no fragment). Cache
// failures other than a miss degrade to a fresh resolution rather than
// failing the call; cache writes are best effort.
func (r *Resolver) Resolve(ctx context.Context, uri string) (Document, error) {
	parsed, err := ParseURI(uri)
	if err != nil {
		return Document{}, err
	}

	if r.cache != nil {
		doc, err := r.cache.Get(ctx, uri)
		if err == nil {
			r.hits.Add(1)
			return doc, nil
		}
		r.misses.Add(1)
	}

	var doc Document
	switch parsed.Method {
	case MethodJWK:
		doc, err = decodeJWKDocument(uri, parsed.ID)
		if err != nil {
			return Document{}, err
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrMethodNotSupported, parsed.Method)
	}

	if r.cache != nil {
		_ = r.cache.Put(ctx, uri, doc)
	}

	return doc, nil
}

// CacheStats reports cumulative cache hits and misses.
func (r *Resolver) CacheStats() (hits, misses uint64) {
	if r == nil {
		return 0, 0
	}
	return r.hits.Load(), r.misses.Load()
}
