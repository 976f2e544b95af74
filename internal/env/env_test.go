package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_LaterSetsWin(t *testing.T) {
	merged := Merge(
		Vars{"A": "1", "B": "1"},
		Vars{"B": "2", "C": "2"},
	)
	assert.Equal(t, Vars{"A": "1", "B": "2", "C": "2"}, merged)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GH_TOKEN=ghp_fromfile\nOTHER=x\n"), 0o600))

	vars, err := LoadEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ghp_fromfile", vars["GH_TOKEN"])
	assert.Equal(t, "x", vars["OTHER"])
}

func TestLoadEnvFiles_RelativePathsAndOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.env"), []byte("K=a\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.env"), []byte("K=b\n"), 0o600))

	vars, err := LoadEnvFiles(dir, []string{"a.env", "b.env"})
	require.NoError(t, err)
	assert.Equal(t, "b", vars["K"])
}

func TestLoadEnvFiles_MissingFileFails(t *testing.T) {
	_, err := LoadEnvFiles(t.TempDir(), []string{"missing.env"})
	assert.ErrorContains(t, err, "load env file")
}

func TestLookupToken_Precedence(t *testing.T) {
	vars := Vars{
		"GITHUB_TOKEN":     "c",
		"GH_TOKEN":         "b",
		"PRCOMMENT_GH_PAT": "a",
	}
	assert.Equal(t, "a", LookupToken(vars))

	delete(vars, "PRCOMMENT_GH_PAT")
	assert.Equal(t, "b", LookupToken(vars))

	delete(vars, "GH_TOKEN")
	assert.Equal(t, "c", LookupToken(vars))
}

func TestLookupToken_EmptyWhenUnset(t *testing.T) {
	assert.Empty(t, LookupToken(Vars{"GH_TOKEN": "   "}))
	assert.Empty(t, LookupToken(Vars{}))
}
