package domain_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestNewRevisionStamp(t *testing.T) {
	tests := []struct {
		name        string
		revision    string
		buildNumber int
		wantErr     bool
	}{
		{name: "valid short hash", revision: "abc1234", buildNumber: 42},
		{name: "zero build number", revision: "abc1234", buildNumber: 0},
		{name: "empty revision", revision: "", buildNumber: 1, wantErr: true},
		{name: "non-alphanumeric revision", revision: "abc-1234", buildNumber: 1, wantErr: true},
		{name: "negative build number", revision: "abc1234", buildNumber: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamp, err := domain.NewRevisionStamp(tt.revision, tt.buildNumber)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidStamp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.revision, stamp.RevisionID)
			assert.Equal(t, tt.buildNumber, stamp.BuildNumber)
			assert.Regexp(t, regexp.MustCompile(`^\d{8}$`), stamp.DateStamp)
		})
	}
}

func TestRevisionStamp_SnapshotRelease(t *testing.T) {
	stamp := domain.RevisionStamp{
		RevisionID:  "abc1234",
		BuildNumber: 42,
		DateStamp:   "20260831",
	}
	assert.Equal(t, "99.42.20260831gitabc1234", stamp.SnapshotRelease())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, domain.ExitCode(nil))
	assert.Equal(t, 1, domain.ExitCode(errors.New("plain failure")))

	inner := &domain.ExitError{Code: 7, Err: errors.New("tests failed")}
	assert.Equal(t, 7, domain.ExitCode(inner))

	// The code must survive zerr wrapping, since adapters wrap before returning.
	wrapped := zerr.Wrap(inner, "build command failed")
	assert.Equal(t, 7, domain.ExitCode(wrapped))
}

func TestNewBuildRootHandle(t *testing.T) {
	h, err := domain.NewBuildRootHandle("/etc/mock", "fedora-rawhide-x86_64")
	require.NoError(t, err)
	assert.Equal(t, "/etc/mock:fedora-rawhide-x86_64", h.String())

	_, err = domain.NewBuildRootHandle("", "fedora-rawhide-x86_64")
	assert.ErrorIs(t, err, domain.ErrInvalidRoot)

	_, err = domain.NewBuildRootHandle("/etc/mock", "")
	assert.ErrorIs(t, err, domain.ErrInvalidRoot)
}

func TestWorkflow_Validate(t *testing.T) {
	valid := domain.Workflow{
		Root:      domain.BuildRootHandle{ConfigDir: "/etc/mock", Root: "fedora-rawhide-x86_64"},
		SourceDir: ".",
		Command:   []string{"./run-tests.sh"},
	}
	require.NoError(t, valid.Validate())

	missingRoot := valid
	missingRoot.Root = domain.BuildRootHandle{}
	assert.Error(t, missingRoot.Validate())

	missingCommand := valid
	missingCommand.Command = nil
	assert.Error(t, missingCommand.Validate())

	missingSource := valid
	missingSource.SourceDir = ""
	assert.Error(t, missingSource.Validate())
}

func TestBuildRecord_Key(t *testing.T) {
	rec := domain.BuildRecord{Root: "/etc/mock:fedora-rawhide-x86_64", Revision: "abc1234"}
	assert.Equal(t, "/etc/mock:fedora-rawhide-x86_64@abc1234", rec.Key())
}
