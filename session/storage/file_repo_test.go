package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/workzen/hrms-client/session"
	"github.com/workzen/hrms-client/session/storage"
)

func TestFileRepoRoundTrip(t *testing.T) {
	repo := storage.NewFileRepo(t.TempDir())

	_, ok, err := repo.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Set(session.KeyAccessToken, "access-1"))
	require.NoError(t, repo.Set(session.KeyRefreshToken, "refresh-1"))

	value, ok, err := repo.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "access-1", value)

	require.NoError(t, repo.Delete(session.KeyAccessToken))
	_, ok, err = repo.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, repo.Delete(session.KeyAccessToken))
}

func TestFileRepoSurvivesReopen(t *testing.T) {
	folder := t.TempDir()
	first := storage.NewFileRepo(folder)
	require.NoError(t, first.Set(session.KeyUser, `{"id":1}`))

	second := storage.NewFileRepo(folder)
	value, ok, err := second.Get(session.KeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"id":1}`, value)
}

func TestFileRepoCorruptFileDegradesToEmpty(t *testing.T) {
	folder := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(folder, "credentials.json"), []byte("not json"), 0o600))

	repo := storage.NewFileRepo(folder)
	_, ok, err := repo.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Set(session.KeyAccessToken, "access-1"))
	value, ok, err := repo.Get(session.KeyAccessToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "access-1", value)
}
