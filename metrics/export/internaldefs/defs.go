package internaldefs

import (
	"github.com/quotedex/didjws"
)

// CounterDef names one exported counter and ties it to a core metric id.
type CounterDef struct {
	ID   didjws.MetricID
	Name string
	Help string
}

// HistogramDef names one exported histogram and ties it to a core metric id.
type HistogramDef struct {
	ID   didjws.MetricID
	Name string
	Help string
}

// CounterDefs lists every counter both exporters publish, in render order.
var CounterDefs = []CounterDef{
	{ID: didjws.MetricSignSuccess, Name: "didjws_sign_success_total", Help: "Successfully built tokens."},
	{ID: didjws.MetricSignFailure, Name: "didjws_sign_failure_total", Help: "Failed token build attempts."},
	{ID: didjws.MetricDecodeSuccess, Name: "didjws_decode_success_total", Help: "Successfully decoded tokens."},
	{ID: didjws.MetricDecodeRejected, Name: "didjws_decode_rejected_total", Help: "Tokens rejected as malformed during decode."},
	{ID: didjws.MetricVerifySuccess, Name: "didjws_verify_success_total", Help: "Successfully verified tokens."},
	{ID: didjws.MetricVerifyFailure, Name: "didjws_verify_failure_total", Help: "Failed token verifications."},
	{ID: didjws.MetricResolveCacheHit, Name: "didjws_resolve_cache_hit_total", Help: "Document resolutions served from cache."},
	{ID: didjws.MetricResolveCacheMiss, Name: "didjws_resolve_cache_miss_total", Help: "Document resolutions that missed the cache."},
}

// HistogramDefs lists every histogram both exporters publish.
var HistogramDefs = []HistogramDef{
	{ID: didjws.MetricSignLatency, Name: "didjws_sign_latency_seconds", Help: "Token build latency histogram."},
}

// HistogramBounds are the upper bucket bounds as Prometheus le label values.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix are the same bounds as instrument-name-safe suffixes.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
