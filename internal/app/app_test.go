package app_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rpmci.dev/rpmci/internal/adapters/telemetry"
	"go.rpmci.dev/rpmci/internal/app"
	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.rpmci.dev/rpmci/internal/core/ports"
	"go.rpmci.dev/rpmci/internal/core/ports/mocks"
	"go.rpmci.dev/rpmci/internal/engine/workflow"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader    *mocks.MockConfigLoader
	sandbox   *mocks.MockSandbox
	stager    *mocks.MockStager
	digester  *mocks.MockDigester
	revisions *mocks.MockRevisionSource
	fallback  *mocks.MockRevisionSource
	store     *mocks.MockRecordStore
	logger    *mocks.MockLogger
}

func newTestApp(ctrl *gomock.Controller) (*app.App, *appMocks) {
	m := &appMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		sandbox:   mocks.NewMockSandbox(ctrl),
		stager:    mocks.NewMockStager(ctrl),
		digester:  mocks.NewMockDigester(ctrl),
		revisions: mocks.NewMockRevisionSource(ctrl),
		fallback:  mocks.NewMockRevisionSource(ctrl),
		store:     mocks.NewMockRecordStore(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	tel := telemetry.NewNoOp()
	orch := workflow.NewOrchestrator(m.sandbox, tel, m.logger)
	harvester := workflow.NewHarvester(m.sandbox, m.stager, m.digester, tel, m.logger)
	fallback := func(_ domain.BuildRootHandle) ports.RevisionSource { return m.fallback }

	return app.New(m.loader, orch, harvester, m.revisions, fallback, m.store, m.logger), m
}

func runWorkflow(t *testing.T) *domain.Workflow {
	t.Helper()
	root, err := domain.NewBuildRootHandle("/etc/rpmci/mock", "fedora-42-x86_64")
	require.NoError(t, err)
	stamp, err := domain.NewRevisionStamp("abc1234", 7)
	require.NoError(t, err)
	return &domain.Workflow{
		Root:             root,
		Stamp:            stamp,
		SourceDir:        "/src/pkg",
		Command:          []string{"make", "srpm"},
		ArtifactPatterns: []string{"*.rpm"},
		StagingDir:       "/tmp/rpmci-staging",
		DestDir:          "/work",
	}
}

func writeSpecDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pkg.spec")
	doc := "%global gitrev deadbee\n\nName: pkg\nVersion: 1.0\nRelease: 1%{?dist}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func expectBuildStages(m *appMocks, wf *domain.Workflow) {
	m.sandbox.EXPECT().Reset(gomock.Any(), wf.Root).Return(nil)
	m.sandbox.EXPECT().CopyIn(gomock.Any(), wf.Root, wf.SourceDir).Return(nil)
	m.sandbox.EXPECT().Chown(gomock.Any(), wf.Root).Return(nil)
	m.sandbox.EXPECT().Install(gomock.Any(), wf.Root, gomock.Any()).Return(nil)
	m.sandbox.EXPECT().Exec(gomock.Any(), wf.Root, wf.Command).Return(nil)
}

func TestApp_Run_FullWorkflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)
	wf := runWorkflow(t)
	wf.SpecPath = writeSpecDoc(t)

	expectBuildStages(m, wf)
	m.stager.EXPECT().Prepare(wf.StagingDir).Return(nil)
	m.sandbox.EXPECT().CopyOut(gomock.Any(), wf.Root, wf.StagingDir).Return(nil)
	m.stager.EXPECT().Collect(wf.StagingDir, wf.ArtifactPatterns).
		Return([]string{"/tmp/rpmci-staging/pkg-1.0.x86_64.rpm"}, nil)
	m.stager.EXPECT().Move("/tmp/rpmci-staging/pkg-1.0.x86_64.rpm", "/work").
		Return("/work/pkg-1.0.x86_64.rpm", nil)
	m.digester.EXPECT().DigestAll(gomock.Any(), []string{"/work/pkg-1.0.x86_64.rpm"}).
		Return([]domain.Artifact{{Path: "/work/pkg-1.0.x86_64.rpm", Digest: "00000000000000aa"}}, nil)

	var recorded domain.BuildRecord
	m.store.EXPECT().Put(gomock.Any()).
		Do(func(rec domain.BuildRecord) { recorded = rec }).
		Return(nil)

	require.NoError(t, a.Run(context.Background(), wf))

	// The spec document was stamped before the build.
	stamped, err := os.ReadFile(wf.SpecPath)
	require.NoError(t, err)
	assert.Contains(t, string(stamped), "%global gitrev abc1234")
	assert.Contains(t, string(stamped), "Release: "+wf.Stamp.SnapshotRelease()+"%{?dist}")

	// The ledger entry reflects the successful run.
	assert.Equal(t, wf.Root.String(), recorded.Root)
	assert.Equal(t, "abc1234", recorded.Revision)
	assert.Equal(t, 0, recorded.ExitCode)
	require.Len(t, recorded.Artifacts, 1)
	assert.False(t, recorded.FinishedAt.Before(recorded.StartedAt))
}

func TestApp_Run_CommandFailureRecordsExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)
	wf := runWorkflow(t)

	m.sandbox.EXPECT().Reset(gomock.Any(), wf.Root).Return(nil)
	m.sandbox.EXPECT().CopyIn(gomock.Any(), wf.Root, wf.SourceDir).Return(nil)
	m.sandbox.EXPECT().Chown(gomock.Any(), wf.Root).Return(nil)
	m.sandbox.EXPECT().Install(gomock.Any(), wf.Root, gomock.Any()).Return(nil)
	m.sandbox.EXPECT().Exec(gomock.Any(), wf.Root, wf.Command).
		Return(&domain.ExitError{Code: 2, Err: assert.AnError})
	// No harvest after a failed build.

	var recorded domain.BuildRecord
	m.store.EXPECT().Put(gomock.Any()).
		Do(func(rec domain.BuildRecord) { recorded = rec }).
		Return(nil)

	err := a.Run(context.Background(), wf)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommand)
	assert.Equal(t, 2, domain.ExitCode(err))
	assert.Equal(t, 2, recorded.ExitCode)
}

func TestApp_Run_NoArtifactsIsWarningNotFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)
	wf := runWorkflow(t)

	expectBuildStages(m, wf)
	m.stager.EXPECT().Prepare(wf.StagingDir).Return(nil)
	m.sandbox.EXPECT().CopyOut(gomock.Any(), wf.Root, wf.StagingDir).Return(nil)
	m.stager.EXPECT().Collect(wf.StagingDir, wf.ArtifactPatterns).Return(nil, nil)
	m.logger.EXPECT().Warn(gomock.Any())

	var recorded domain.BuildRecord
	m.store.EXPECT().Put(gomock.Any()).
		Do(func(rec domain.BuildRecord) { recorded = rec }).
		Return(nil)

	require.NoError(t, a.Run(context.Background(), wf))
	assert.Equal(t, 0, recorded.ExitCode)
	assert.Empty(t, recorded.Artifacts)
}

func TestApp_ResolveRevision_HostClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)
	wf := runWorkflow(t)

	m.revisions.EXPECT().Head(gomock.Any(), wf.SourceDir).Return("fee1bad", nil)

	rev, err := a.ResolveRevision(context.Background(), wf)
	require.NoError(t, err)
	assert.Equal(t, "fee1bad", rev)
}

func TestApp_ResolveRevision_FallsBackWithoutClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)
	wf := runWorkflow(t)

	m.revisions.EXPECT().Head(gomock.Any(), wf.SourceDir).
		Return("", zerr.Wrap(exec.ErrNotFound, "client not installed"))
	m.logger.EXPECT().Warn(gomock.Any())
	m.fallback.EXPECT().Head(gomock.Any(), wf.SourceDir).Return("abc1234", nil)

	rev, err := a.ResolveRevision(context.Background(), wf)
	require.NoError(t, err)
	assert.Equal(t, "abc1234", rev)
}

func TestApp_ResolveRevision_OtherErrorsAreFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)
	wf := runWorkflow(t)

	m.revisions.EXPECT().Head(gomock.Any(), wf.SourceDir).
		Return("", zerr.New("not a repository"))

	_, err := a.ResolveRevision(context.Background(), wf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a repository")
}

func TestApp_Workflow_ConfigLoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)
	m.loader.EXPECT().Load(".").Return(nil, zerr.New("config load error"))

	_, err := a.Workflow(".")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to load configuration"))
}
