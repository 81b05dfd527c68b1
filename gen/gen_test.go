package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDirective(t *testing.T) {
	src, err := os.ReadFile("../catalog.go")
	require.NoError(t, err)

	const prefix = "//go:generate go run ./gen "
	var args []string
	for _, line := range strings.Split(string(src), "\n") {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			args = strings.Fields(rest)
		}
	}
	require.NotEmpty(t, args, "no go:generate directive for ./gen")

	opts, err := parseFlags(args)
	require.NoError(t, err)
	assert.Equal(t, options{catalog: "catalog", out: "opcodes.generated.go"}, opts)
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, options{catalog: "catalog"}, opts)

	// single-dash long flags are read as shorthand
	_, err = parseFlags([]string{"-catalog", "catalog"})
	assert.Error(t, err)
}

func TestRenderCommitted(t *testing.T) {
	ms, err := readCatalog("../catalog")
	require.NoError(t, err)
	src, err := render(ms)
	require.NoError(t, err)
	want, err := os.ReadFile("../opcodes.generated.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(src), "opcodes.generated.go is stale; run go generate")
}

func TestReadCatalogDuplicate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("nop:\n  - {op: [0x90]}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("NOP:\n  - {op: [0x90]}\n"), 0o644))
	_, err := readCatalog(dir)
	assert.ErrorContains(t, err, "already defined")
}
