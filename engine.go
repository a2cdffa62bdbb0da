package didjws

import (
	"context"
	"sync"
	"time"

	"github.com/quotedex/didjws/did"
)

// Engine is the configured token core: an immutable algorithm registry, a
// DID resolver for verification, and optional metrics and audit plumbing.
// All methods are safe for concurrent use after [Builder.Build].
type Engine struct {
	config   Config
	registry *Registry
	resolver *did.Resolver
	metrics  *Metrics
	audit    *auditDispatcher
}

// MetricsSnapshot returns a point-in-time copy of the engine's counters,
// folding in the resolver's document-cache statistics.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	snapshot := e.metrics.Snapshot()
	if e.metrics.Enabled() && e.resolver != nil {
		hits, misses := e.resolver.CacheStats()
		snapshot.Counters[MetricResolveCacheHit] = hits
		snapshot.Counters[MetricResolveCacheMiss] = misses
	}
	return snapshot
}

// AuditDropped reports audit events dropped due to dispatcher backpressure.
func (e *Engine) AuditDropped() uint64 {
	return e.audit.Dropped()
}

// Close drains and stops the audit dispatcher. The engine remains usable for
// signing and decoding; further audit events are discarded.
func (e *Engine) Close() {
	e.audit.Close()
}

func (e *Engine) auditTokenSigned(issuer, subject string) {
	e.audit.Emit(context.Background(), AuditEvent{
		Timestamp: time.Now(),
		EventType: auditEventTokenSigned,
		Issuer:    issuer,
		Subject:   subject,
		Success:   true,
	})
}

func (e *Engine) auditSignFailed(issuer, subject string, err error) {
	e.audit.Emit(context.Background(), AuditEvent{
		Timestamp: time.Now(),
		EventType: auditEventSignFailed,
		Issuer:    issuer,
		Subject:   subject,
		Error:     err.Error(),
	})
}

func (e *Engine) auditDecodeRejected(err error) {
	e.audit.Emit(context.Background(), AuditEvent{
		Timestamp: time.Now(),
		EventType: auditEventDecodeRejected,
		Error:     err.Error(),
	})
}

func (e *Engine) auditVerifyFailed(kid string, err error) {
	e.audit.Emit(context.Background(), AuditEvent{
		Timestamp: time.Now(),
		EventType: auditEventVerifyFailed,
		KeyID:     kid,
		Error:     err.Error(),
	})
}

// defaultEngine backs the package-level convenience functions. Built with the
// default configuration: default registry, cache-less resolver, no metrics.
var defaultEngine = sync.OnceValue(func() *Engine {
	engine, err := New().Build()
	if err != nil {
		// Defaults are always valid; reaching this is a programming error.
		panic("didjws: default engine: " + err.Error())
	}
	return engine
})
