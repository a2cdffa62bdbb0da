package didjws

import (
	"errors"

	"github.com/quotedex/didjws/did"
)

// Builder assembles an [Engine]. A builder is single-use: Build succeeds at
// most once. Construction is allocation-only; no I/O happens before Build.
type Builder struct {
	config     Config
	resolver   *did.Resolver
	auditSink  AuditSink
	algorithms []Descriptor

	built bool
}

// New returns a builder primed with the default configuration.
func New() *Builder {
	return &Builder{config: defaultConfig()}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithResolver sets the DID resolver used by Verify. Without one, the engine
// falls back to a cache-less resolver.
func (b *Builder) WithResolver(r *did.Resolver) *Builder {
	b.resolver = r
	return b
}

// WithAuditSink sets the sink receiving audit events when auditing is enabled.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithAlgorithm registers an additional signing algorithm on top of the
// built-in set. Registration happens inside Build; a duplicate composite id
// fails the build.
func (b *Builder) WithAlgorithm(d Descriptor) *Builder {
	b.algorithms = append(b.algorithms, d)
	return b
}

// WithMetricsEnabled toggles counter collection.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the sign-latency histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration, freezes the algorithm registry, and
// returns the engine.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := newDefaultRegistry()
	for _, d := range b.algorithms {
		if err := registry.register(d); err != nil {
			return nil, err
		}
	}

	resolver := b.resolver
	if resolver == nil {
		resolver = did.NewResolver(nil)
	}

	engine := &Engine{
		config:   cfg,
		registry: registry,
		resolver: resolver,
		metrics:  NewMetrics(cfg.Metrics),
		audit:    newAuditDispatcher(cfg.Audit, b.auditSink),
	}

	b.built = true
	return engine, nil
}
