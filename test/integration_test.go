package test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/quotedex/didjws"
	"github.com/quotedex/didjws/did"
	"github.com/quotedex/didjws/metrics/export/prometheus"
	"github.com/quotedex/didjws/protocol"
)

// Full-stack pass: redis-cached resolver, metrics, audit, fixtures, exporter.
func TestEngineEndToEnd(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	resolver := did.NewResolver(did.NewRedisCache(client, time.Minute))
	sink := didjws.NewChannelSink(32)
	engine, err := didjws.New().
		WithResolver(resolver).
		WithConfig(didjws.Config{
			Metrics: didjws.MetricsConfig{Enabled: true, EnableLatencyHistograms: true},
			Audit:   didjws.AuditConfig{Enabled: true, BufferSize: 32, DropIfFull: true},
		}).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	defer engine.Close()

	pfi, err := did.NewJWK(did.AlgorithmES256K)
	if err != nil {
		t.Fatalf("pfi identity: %v", err)
	}
	wallet, err := did.NewJWK(did.AlgorithmEdDSA)
	if err != nil {
		t.Fatalf("wallet identity: %v", err)
	}

	ctx := context.Background()

	token, err := engine.Sign(pfi, wallet.URI, map[string]any{"beep": "boop"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	decoded, err := engine.Verify(ctx, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if decoded.Payload["iss"] != pfi.URI || decoded.Payload["sub"] != wallet.URI {
		t.Fatalf("unexpected payload %#v", decoded.Payload)
	}

	offering := protocol.DevOffering(pfi)
	rfq, err := protocol.DevRFQ(wallet, offering)
	if err != nil {
		t.Fatalf("dev rfq: %v", err)
	}
	for _, claim := range rfq.Data.Claims {
		if _, err := engine.Verify(ctx, claim); err != nil {
			t.Fatalf("claim verify: %v", err)
		}
	}

	select {
	case event := <-sink.Events():
		if !event.Success {
			t.Fatalf("first audit event should be a success, got %+v", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no audit event delivered")
	}

	out := prometheus.NewPrometheusExporter(engine).Render()
	if !strings.Contains(out, "didjws_sign_success_total 1") {
		t.Fatalf("missing sign counter in render:\n%s", out)
	}
	if !strings.Contains(out, "didjws_verify_success_total") {
		t.Fatalf("missing verify counter in render:\n%s", out)
	}
}
