package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/x86"
	"github.com/wdamron/x86/feats"
)

func TestDefaults(t *testing.T) {
	arch, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, x86.Long64, arch)
}

func TestRead(t *testing.T) {
	arch, err := Read(strings.NewReader("mode: 32\nfeatures: [sse]\n"))
	require.NoError(t, err)
	want := x86.Protected32
	want.Features = feats.SSE
	assert.Equal(t, want, arch)

	arch, err = Read(strings.NewReader("mode: 64\nrip_relative: false\noperand_size: 64\n"))
	require.NoError(t, err)
	assert.False(t, arch.RIPRelative)
	assert.Equal(t, x86.Bit64, arch.OperandSize)
	assert.Equal(t, feats.AllFeatures, arch.Features)

	// RIP-relative addressing only exists in 64-bit mode
	arch, err = Read(strings.NewReader("mode: 32\nrip_relative: true\n"))
	require.NoError(t, err)
	assert.False(t, arch.RIPRelative)
}

func TestReadErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"mode":         "mode: 8\n",
		"operand size": "operand_size: 8\n",
		"address size": "address_size: 128\n",
		"feature":      "features: [sse9]\n",
		"yaml":         "mode: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "real.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: 16\nfeatures: [fpu, sse]\n"), 0o644))
	arch, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, feats.Mode16, arch.Mode)
	assert.Equal(t, x86.Bit16, arch.AddressSize)
	assert.Equal(t, feats.FPU|feats.SSE, arch.Features)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("X86_MODE", "32")
	t.Setenv("X86_FEATURES", "sse,sse2")
	arch, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, feats.Mode32, arch.Mode)
	assert.Equal(t, feats.SSE|feats.SSE2, arch.Features)
}

func TestBindFlags(t *testing.T) {
	v := New()
	fs := pflag.NewFlagSet("x86", pflag.ContinueOnError)
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--mode=16", "--features=sse2"}))

	arch, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, feats.Mode16, arch.Mode)
	assert.Equal(t, feats.SSE2, arch.Features)
	assert.False(t, arch.RIPRelative)
}
