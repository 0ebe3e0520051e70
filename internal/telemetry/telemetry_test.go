package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	if Enabled() {
		t.Fatal("telemetry should be disabled without an endpoint")
	}
	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("no-op shutdown failed: %v", err)
	}

	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()
	if span.IsRecording() {
		t.Error("default provider should not record spans")
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "x")
	if span.SpanContext().IsValid() {
		t.Error("noop span should have an invalid span context")
	}
	span.End()
}

func TestIntentAttrs(t *testing.T) {
	attrs := IntentAttrs("tetris", "step", true, false, 300)
	got := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, kv := range attrs {
		got[kv.Key] = kv.Value
	}

	if got["game.id"].AsString() != "tetris" || got["game.intent"].AsString() != "step" {
		t.Errorf("string attrs = %v", got)
	}
	if !got["game.changed"].AsBool() || got["game.over"].AsBool() {
		t.Errorf("bool attrs = %v", got)
	}
	if got["game.score"].AsInt64() != 300 {
		t.Errorf("score attr = %v", got["game.score"])
	}
}
