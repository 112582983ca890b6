package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/medstock/internal/domain/entity"
)

func TestFileSessionStore_Ciclo(t *testing.T) {
	s := FileSessionStore{Path: filepath.Join(t.TempDir(), "nested", sessionFileName)}

	got, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "sin archivo no hay sesión")

	require.NoError(t, s.Save(&entity.Session{Username: "root", Role: "admin", Token: "jwt"}))
	got, err = s.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.AccessAdmin, entity.AccessFor(got))

	info, err := os.Stat(s.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
	got, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFileSessionStore_Corrupta(t *testing.T) {
	path := filepath.Join(t.TempDir(), sessionFileName)
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o600))
	_, err := FileSessionStore{Path: path}.Load()
	assert.Error(t, err)
}

func TestFileSessionStore_SinToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), sessionFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"username":"root","role":"admin"}`), 0o600))
	got, err := FileSessionStore{Path: path}.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}
