package progrock_test

import (
	"context"
	"io"
	"testing"

	"go.rpmci.dev/rpmci/internal/adapters/telemetry/progrock"
	"go.rpmci.dev/rpmci/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	feed := progrock.NewFeed()
	recorder := progrock.NewRecorder(feed)

	ctx := context.Background()
	_, vertex := recorder.Record(ctx, "Provision build root")

	if _, err := vertex.Stdout().Write([]byte("Standard Output\n")); err != nil {
		t.Errorf("failed to write to stdout: %v", err)
	}

	vertex.Log(domain.LogLevelDebug, "debug msg")

	vertex.Complete(nil)

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}

	// The feed delivers everything recorded before Close, then reports EOF.
	seen := 0
	for {
		update, err := feed.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read update: %v", err)
		}
		if update == nil {
			t.Fatal("read returned nil update without error")
		}
		seen++
	}
	if seen == 0 {
		t.Error("expected at least one status update")
	}
}
