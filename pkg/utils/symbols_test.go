package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSymbols(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.sym")
	require.NoError(t, os.WriteFile(path, []byte(
		"; program symbols\n"+
			"start 0x0200\n"+
			"loop 0x020A   # hot loop\n"+
			"\n"+
			"isr 0300\n"), 0o644))

	symbols, err := LoadSymbols(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]uint16{
		"start": 0x0200,
		"loop":  0x020A,
		"isr":   0x0300,
	}, symbols)
}

func TestLoadSymbols_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.sym")
	require.NoError(t, os.WriteFile(path, []byte("start\n"), 0o644))

	_, err := LoadSymbols(path)
	assert.Error(t, err)
}
