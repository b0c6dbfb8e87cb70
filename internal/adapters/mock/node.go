package mock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rpmci.dev/rpmci/internal/adapters/logger"
	"go.rpmci.dev/rpmci/internal/core/ports"
)

// NodeID is the unique identifier for the sandbox adapter Graft node.
const NodeID graft.ID = "adapter.sandbox"

func init() {
	graft.Register(graft.Node[ports.Sandbox]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Sandbox, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSandbox(log), nil
		},
	})
}
