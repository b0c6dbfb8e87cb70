package history_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rpmci.dev/rpmci/internal/adapters/history"
	"go.rpmci.dev/rpmci/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store, err := history.NewStore(path)
	require.NoError(t, err)

	record := domain.BuildRecord{
		Root:        "/etc/mock:fedora-rawhide-x86_64",
		Revision:    "abc1234",
		BuildNumber: 42,
		ExitCode:    0,
		Artifacts:   []domain.Artifact{{Path: "dnf.tar.gz", Digest: "00ff00ff00ff00ff"}},
		StartedAt:   time.Now().UTC().Truncate(time.Second),
		FinishedAt:  time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Put(record))

	got, err := store.Get(record.Key())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestStore_GetMissing(t *testing.T) {
	store, err := history.NewStore(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	got, err := store.Get("unknown@0000000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	store, err := history.NewStore(path)
	require.NoError(t, err)
	record := domain.BuildRecord{Root: "cfg:root", Revision: "abc1234", ExitCode: 1}
	require.NoError(t, store.Put(record))

	reopened, err := history.NewStore(path)
	require.NoError(t, err)
	got, err := reopened.Get(record.Key())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ExitCode)
}

func TestStore_OverwritesSameKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	store, err := history.NewStore(path)
	require.NoError(t, err)

	first := domain.BuildRecord{Root: "cfg:root", Revision: "abc1234", ExitCode: 1}
	require.NoError(t, store.Put(first))
	second := first
	second.ExitCode = 0
	require.NoError(t, store.Put(second))

	got, err := store.Get(first.Key())
	require.NoError(t, err)
	assert.Equal(t, 0, got.ExitCode)
}

func TestStore_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := history.NewStore(path)
	require.Error(t, err)
}
