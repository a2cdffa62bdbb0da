package didjws

import "errors"

// MetricsConfig controls the engine's counter and histogram collection.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events (and counts them) instead of blocking the
	// signing path when the buffer is full.
	DropIfFull bool
}

// Config is the engine configuration. Treated as immutable after Build.
type Config struct {
	Metrics MetricsConfig
	Audit   AuditConfig
}

func defaultConfig() Config {
	return Config{
		Audit: AuditConfig{
			BufferSize: 256,
			DropIfFull: true,
		},
	}
}

// Validate checks the configuration for values Build must reject.
func (c Config) Validate() error {
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("invalid audit buffer size")
	}
	return nil
}
