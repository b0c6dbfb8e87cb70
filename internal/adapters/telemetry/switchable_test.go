package telemetry_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rpmci.dev/rpmci/internal/adapters/telemetry"
	progrockadapter "go.rpmci.dev/rpmci/internal/adapters/telemetry/progrock"
)

func TestSwitchable_DefaultsToNoOp(t *testing.T) {
	s := telemetry.NewSwitchable()

	_, vertex := s.Record(context.Background(), "stamp spec file")
	require.NotNil(t, vertex)
	vertex.Complete(nil)
	require.NoError(t, s.Close())
}

func TestSwitchable_SetRetargetsRecording(t *testing.T) {
	s := telemetry.NewSwitchable()

	feed := progrockadapter.NewFeed()
	s.Set(progrockadapter.NewRecorder(feed))

	_, vertex := s.Record(context.Background(), "Run build command")
	vertex.Complete(nil)
	require.NoError(t, s.Close())

	seen := 0
	for {
		update, err := feed.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.NotNil(t, update)
		seen++
	}
	assert.NotZero(t, seen, "expected updates to reach the new backend")
}
