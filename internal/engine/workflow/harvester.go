package workflow

import (
	"context"
	"fmt"

	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.rpmci.dev/rpmci/internal/core/ports"
	"go.trai.ch/zerr"
)

// Harvester copies build outputs out of the root into a staging directory,
// selects the files matching the artifact patterns, and moves them into the
// destination directory with a content digest each.
type Harvester struct {
	sandbox   ports.Sandbox
	stager    ports.Stager
	digester  ports.Digester
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewHarvester creates a new Harvester.
func NewHarvester(
	sandbox ports.Sandbox,
	stager ports.Stager,
	digester ports.Digester,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Harvester {
	return &Harvester{
		sandbox:   sandbox,
		stager:    stager,
		digester:  digester,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Harvest copies the exchange path out of the root and returns the selected
// artifacts. It returns domain.ErrNoArtifact when the copy-out succeeded but
// nothing matched the patterns; callers decide how fatal that is.
func (h *Harvester) Harvest(ctx context.Context, wf *domain.Workflow) ([]domain.Artifact, error) {
	if err := h.copyOut(ctx, wf); err != nil {
		return nil, err
	}
	return h.selectArtifacts(ctx, wf)
}

func (h *Harvester) copyOut(ctx context.Context, wf *domain.Workflow) error {
	h.logger.Info("Harvest artifacts from build root")
	vctx, vertex := h.telemetry.Record(ctx, "Harvest artifacts from build root")

	err := h.doCopyOut(vctx, wf)
	vertex.Complete(err)
	return err
}

func (h *Harvester) doCopyOut(ctx context.Context, wf *domain.Workflow) error {
	if err := h.stager.Prepare(wf.StagingDir); err != nil {
		return domain.Fail(domain.ErrCopyOut, err)
	}
	if err := h.sandbox.CopyOut(ctx, wf.Root, wf.StagingDir); err != nil {
		copyErr := zerr.Wrap(domain.Fail(domain.ErrCopyOut, err), "failed to copy artifacts out")
		return zerr.With(copyErr, "root", wf.Root.String())
	}
	return nil
}

func (h *Harvester) selectArtifacts(ctx context.Context, wf *domain.Workflow) ([]domain.Artifact, error) {
	_, vertex := h.telemetry.Record(ctx, "Select artifacts", ports.WithInternal())

	artifacts, err := h.doSelect(ctx, wf)
	vertex.Complete(err)
	return artifacts, err
}

func (h *Harvester) doSelect(ctx context.Context, wf *domain.Workflow) ([]domain.Artifact, error) {
	staged, err := h.stager.Collect(wf.StagingDir, wf.ArtifactPatterns)
	if err != nil {
		return nil, err
	}
	if len(staged) == 0 {
		noneErr := zerr.With(zerr.Wrap(domain.ErrNoArtifact, "selection found nothing to harvest"), "staging", wf.StagingDir)
		return nil, zerr.With(noneErr, "patterns", fmt.Sprintf("%v", wf.ArtifactPatterns))
	}

	moved := make([]string, 0, len(staged))
	for _, path := range staged {
		dest, err := h.stager.Move(path, wf.DestDir)
		if err != nil {
			return nil, err
		}
		h.logger.Info("Harvested artifact: " + dest)
		moved = append(moved, dest)
	}

	return h.digester.DigestAll(ctx, moved)
}
