package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Firstyear/checklists/internal/checklist"
)

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoot.list.json")
	want := checklist.Example()
	want.Items[0].SetStatus(checklist.Checked)
	want.Items[1].SetStatus(checklist.Skipped)
	want.Items[1].SetComment("bad lighting")

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("reload mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	var fae *FileAccessError
	require.True(t, errors.As(err, &fae))
	assert.Equal(t, "read", fae.Op)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadParseErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "x"}`), 0o644))

	_, err := Load(path)
	var pe *checklist.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Path)
	assert.Contains(t, err.Error(), path)
}

func TestSaveOverwritesAndKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are longer than needed"), 0o600))

	require.NoError(t, Save(path, checklist.Example()))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), fi.Mode().Perm())
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "list 1", got.Name)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestSaveFailureLeavesChecklistIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "c.json")
	c := checklist.Example()
	c.Items[0].SetStatus(checklist.Checked)

	err := Save(path, c)
	var fae *FileAccessError
	require.True(t, errors.As(err, &fae))
	assert.Equal(t, "write", fae.Op)
	assert.Equal(t, path, fae.Path)
	assert.Equal(t, checklist.Checked, c.Items[0].Status)
}

func TestWriteExample(t *testing.T) {
	dir := t.TempDir()
	path, data, err := WriteExample(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ExampleFileName), path)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(onDisk))

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(checklist.Example(), got); diff != "" {
		t.Fatalf("example mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreMethodsDelegate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	var s Store
	require.NoError(t, s.Save(path, checklist.Example()))
	got, err := s.Load(path)
	require.NoError(t, err)
	assert.Len(t, got.Items, 2)
}
