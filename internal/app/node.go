package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rpmci.dev/rpmci/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.rpmci.dev/rpmci/internal/adapters/git"     //nolint:depguard // Wired in app layer
	"go.rpmci.dev/rpmci/internal/adapters/history" //nolint:depguard // Wired in app layer
	"go.rpmci.dev/rpmci/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	mockadapter "go.rpmci.dev/rpmci/internal/adapters/mock" //nolint:depguard // Wired in app layer
	"go.rpmci.dev/rpmci/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.rpmci.dev/rpmci/internal/core/ports"
	"go.rpmci.dev/rpmci/internal/engine/workflow"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			workflow.OrchestratorNodeID,
			workflow.HarvesterNodeID,
			git.NodeID,
			history.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	orch, err := graft.Dep[*workflow.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	harvester, err := graft.Dep[*workflow.Harvester](ctx)
	if err != nil {
		return nil, err
	}

	revisions, err := graft.Dep[ports.RevisionSource](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	// The fallback gets a sandbox of its own: it runs before the
	// orchestrator provisions anything, so sharing is pointless.
	fallback := func(root domain.BuildRootHandle) ports.RevisionSource {
		return mockadapter.NewRevisionSource(mockadapter.NewSandbox(log), root)
	}

	return New(loader, orch, harvester, revisions, fallback, store, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	switchable, ok := tel.(*telemetry.Switchable)
	if !ok {
		switchable = telemetry.NewSwitchable()
	}

	concreteLoader, _ := loader.(*config.Loader)

	return &Components{
		App:       application,
		Logger:    log,
		Config:    concreteLoader,
		Telemetry: switchable,
	}, nil
}
