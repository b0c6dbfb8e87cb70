package workflow

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rpmci.dev/rpmci/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.rpmci.dev/rpmci/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.rpmci.dev/rpmci/internal/adapters/mock"      //nolint:depguard // Wired in engine wiring
	"go.rpmci.dev/rpmci/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.rpmci.dev/rpmci/internal/core/ports"
)

const (
	// OrchestratorNodeID is the unique identifier for the orchestrator Graft node.
	OrchestratorNodeID graft.ID = "engine.orchestrator"
	// HarvesterNodeID is the unique identifier for the harvester Graft node.
	HarvesterNodeID graft.ID = "engine.harvester"
)

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        OrchestratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			mock.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			sandbox, err := graft.Dep[ports.Sandbox](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(sandbox, tel, log), nil
		},
	})

	graft.Register(graft.Node[*Harvester]{
		ID:        HarvesterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			mock.NodeID,
			fs.StagerNodeID,
			fs.DigesterNodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Harvester, error) {
			sandbox, err := graft.Dep[ports.Sandbox](ctx)
			if err != nil {
				return nil, err
			}

			stager, err := graft.Dep[ports.Stager](ctx)
			if err != nil {
				return nil, err
			}

			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewHarvester(sandbox, stager, digester, tel, log), nil
		},
	})
}
