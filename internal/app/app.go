// Package app implements the application layer for rpmci.
package app

import (
	"context"
	"errors"
	"time"

	"go.rpmci.dev/rpmci/internal/adapters/git"
	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.rpmci.dev/rpmci/internal/core/ports"
	"go.rpmci.dev/rpmci/internal/engine/workflow"
	"go.rpmci.dev/rpmci/internal/specfile"
	"go.trai.ch/zerr"
)

// RevisionFallback builds a sandbox-backed revision source for a root, used
// when the host has no version-control client.
type RevisionFallback func(root domain.BuildRootHandle) ports.RevisionSource

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	orchestrator *workflow.Orchestrator
	harvester    *workflow.Harvester
	revisions    ports.RevisionSource
	fallback     RevisionFallback
	store        ports.RecordStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	orch *workflow.Orchestrator,
	harvester *workflow.Harvester,
	revisions ports.RevisionSource,
	fallback RevisionFallback,
	store ports.RecordStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		orchestrator: orch,
		harvester:    harvester,
		revisions:    revisions,
		fallback:     fallback,
		store:        store,
		logger:       logger,
	}
}

// Workflow loads the workflow defaults from the configuration in cwd.
// CLI arguments override the loaded values afterwards.
func (a *App) Workflow(cwd string) (*domain.Workflow, error) {
	wf, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return wf, nil
}

// Stamp rewrites the revision placeholder and release field of the spec
// document at specPath.
func (a *App) Stamp(specPath, revision string, buildNumber int) error {
	stamp, err := domain.NewRevisionStamp(revision, buildNumber)
	if err != nil {
		return err
	}
	if err := specfile.Stamp(specPath, stamp); err != nil {
		return err
	}
	a.logger.Info("Stamped " + specPath + " with revision " + revision)
	return nil
}

// ResolveRevision returns the workflow's revision identifier, querying the
// host version-control client first and falling back to a query through the
// build root when no client is installed.
func (a *App) ResolveRevision(ctx context.Context, wf *domain.Workflow) (string, error) {
	rev, err := a.revisions.Head(ctx, wf.SourceDir)
	if err == nil {
		return rev, nil
	}
	if !git.IsNotInstalled(err) {
		return "", err
	}

	a.logger.Warn("No version-control client on host, querying revision through build root")
	return a.fallback(wf.Root).Head(ctx, wf.SourceDir)
}

// Build stamps the spec document (when one is configured) and runs the
// build stages inside the root.
func (a *App) Build(ctx context.Context, wf *domain.Workflow) error {
	if wf.SpecPath != "" {
		if err := a.Stamp(wf.SpecPath, wf.Stamp.RevisionID, wf.Stamp.BuildNumber); err != nil {
			return err
		}
	}
	return a.orchestrator.Run(ctx, wf)
}

// Harvest copies the build outputs out of the root and returns the
// selected artifacts.
func (a *App) Harvest(ctx context.Context, wf *domain.Workflow) ([]domain.Artifact, error) {
	return a.harvester.Harvest(ctx, wf)
}

// Run executes the full workflow: resolve the revision if none was given,
// stamp, build, harvest, and append the outcome to the build ledger. A
// build that succeeds but yields no matching artifacts logs a warning and
// still counts as a success.
func (a *App) Run(ctx context.Context, wf *domain.Workflow) error {
	startedAt := time.Now().UTC()

	if wf.Stamp.RevisionID == "" {
		rev, err := a.ResolveRevision(ctx, wf)
		if err != nil {
			return zerr.Wrap(err, "failed to resolve revision")
		}
		stamp, err := domain.NewRevisionStamp(rev, wf.Stamp.BuildNumber)
		if err != nil {
			return err
		}
		wf.Stamp = stamp
	}

	runErr := a.Build(ctx, wf)

	var artifacts []domain.Artifact
	if runErr == nil {
		artifacts, runErr = a.Harvest(ctx, wf)
		if errors.Is(runErr, domain.ErrNoArtifact) {
			a.logger.Warn("Build succeeded but no artifacts matched the expected patterns")
			runErr = nil
		}
	}

	a.record(wf, artifacts, runErr, startedAt)
	return runErr
}

// record appends the run outcome to the ledger. Ledger failures are logged,
// never fatal: the build result matters more than its bookkeeping.
func (a *App) record(wf *domain.Workflow, artifacts []domain.Artifact, runErr error, startedAt time.Time) {
	rec := domain.BuildRecord{
		Root:        wf.Root.String(),
		Revision:    wf.Stamp.RevisionID,
		BuildNumber: wf.Stamp.BuildNumber,
		ExitCode:    domain.ExitCode(runErr),
		Artifacts:   artifacts,
		StartedAt:   startedAt,
		FinishedAt:  time.Now().UTC(),
	}
	if err := a.store.Put(rec); err != nil {
		a.logger.Warn("Failed to record build outcome: " + err.Error())
	}
}
