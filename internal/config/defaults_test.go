package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandDefaultsFileMissingFileIsNotAnError(t *testing.T) {
	args, err := ExpandDefaultsFile(filepath.Join(t.TempDir(), "missing.txt"), []string{"-demon", "Balrog"})
	require.NoError(t, err)
	require.Equal(t, []string{"-demon", "Balrog"}, args)
}

func TestExpandDefaultsFilePrependsTokens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.txt")
	require.NoError(t, os.WriteFile(path, []byte("-level 40 -deck mydeck.txt\n"), 0o644))

	args, err := ExpandDefaultsFile(path, []string{"-demon", "Balrog"})
	require.NoError(t, err)
	require.Equal(t, []string{"-level", "40", "-deck", "mydeck.txt", "-demon", "Balrog"}, args)
}

func TestExpandDefaultsFileCapsTokenCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.txt")
	tokens := make([]string, MaxDefaultArgs+10)
	for i := range tokens {
		tokens[i] = "-x"
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(tokens, " ")+"\n"), 0o644))

	args, err := ExpandDefaultsFile(path, nil)
	require.NoError(t, err)
	require.Len(t, args, MaxDefaultArgs-1)
}

func TestExpandDefaultsFileBlankFileYieldsNoTokens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	args, err := ExpandDefaultsFile(path, []string{"-demon", "Balrog"})
	require.NoError(t, err)
	require.Equal(t, []string{"-demon", "Balrog"}, args)
}
