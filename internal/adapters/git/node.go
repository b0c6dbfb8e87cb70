package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rpmci.dev/rpmci/internal/core/ports"
)

// NodeID is the unique identifier for the revision source Graft node.
const NodeID graft.ID = "adapter.revision_source"

func init() {
	graft.Register(graft.Node[ports.RevisionSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RevisionSource, error) {
			return NewSource(), nil
		},
	})
}
