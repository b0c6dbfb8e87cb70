package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rpmci.dev/rpmci/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the Walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs_walker"
	// StagerNodeID is the unique identifier for the Stager Graft node.
	StagerNodeID graft.ID = "adapter.fs_stager"
	// DigesterNodeID is the unique identifier for the Digester Graft node.
	DigesterNodeID graft.ID = "adapter.fs_digester"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Stager]{
		ID:        StagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Stager, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewStager(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Digester]{
		ID:        DigesterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Digester, error) {
			return NewDigester(), nil
		},
	})
}
