// Package workflow implements the isolated build workflow engine.
package workflow

import (
	"context"
	"strings"

	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.rpmci.dev/rpmci/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator drives the build stages against an isolated build root. The
// stages are strictly sequential: each one mutates root state the next one
// relies on, and the first failure aborts the run.
type Orchestrator struct {
	sandbox   ports.Sandbox
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(sandbox ports.Sandbox, telemetry ports.Telemetry, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		sandbox:   sandbox,
		telemetry: telemetry,
		logger:    logger,
	}
}

type stage struct {
	name string
	// kind classifies failures of this stage for callers that dispatch on
	// errors.Is.
	kind error
	run  func(ctx context.Context) error
}

// Run executes the build stages in order: reset the exchange path, copy the
// sources in, hand them to the build user, install dependencies, then run
// the build command. It returns the first stage failure, classified by
// stage kind, with any inner exit code preserved in the chain.
func (o *Orchestrator) Run(ctx context.Context, wf *domain.Workflow) error {
	if err := wf.Validate(); err != nil {
		return err
	}

	stages := []stage{
		{
			name: "Reset build root",
			kind: domain.ErrProvision,
			run: func(ctx context.Context) error {
				return o.sandbox.Reset(ctx, wf.Root)
			},
		},
		{
			name: "Copy sources into build root",
			kind: domain.ErrProvision,
			run: func(ctx context.Context) error {
				return o.sandbox.CopyIn(ctx, wf.Root, wf.SourceDir)
			},
		},
		{
			name: "Hand sources to build user",
			kind: domain.ErrProvision,
			run: func(ctx context.Context) error {
				return o.sandbox.Chown(ctx, wf.Root)
			},
		},
		{
			name: "Install dependencies",
			kind: domain.ErrDependencyInstall,
			run: func(ctx context.Context) error {
				return o.sandbox.Install(ctx, wf.Root, wf.Dependencies)
			},
		},
		{
			name: "Run build command: " + strings.Join(wf.Command, " "),
			kind: domain.ErrCommand,
			run: func(ctx context.Context) error {
				return o.sandbox.Exec(ctx, wf.Root, wf.Command)
			},
		},
	}

	for _, st := range stages {
		if err := o.runStage(ctx, wf, st); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) runStage(ctx context.Context, wf *domain.Workflow, st stage) error {
	o.logger.Info(st.name)
	vctx, vertex := o.telemetry.Record(ctx, st.name)

	err := st.run(vctx)
	vertex.Complete(err)

	if err != nil {
		failErr := zerr.Wrap(domain.Fail(st.kind, err), "workflow stage failed")
		failErr = zerr.With(failErr, "stage", st.name)
		return zerr.With(failErr, "root", wf.Root.String())
	}
	return nil
}
