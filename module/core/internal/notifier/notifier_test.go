package notifier

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier_RecordsWithoutDelivering(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	err := n.Send(context.Background(), "user@x.com", "Air Quality Alert", "<h1>test</h1>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.FilterMessage("alert composed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["recipient"] != "user@x.com" {
		t.Errorf("unexpected recipient %v", fields["recipient"])
	}
}
