package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rpmci.dev/rpmci/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
// The wired instance is a Switchable whose default backend is the no-op
// adapter; the run command swaps in the progrock recorder when a progress
// view is requested.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewSwitchable(), nil
		},
	})
}
