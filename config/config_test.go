package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0dminnimda/OpenSYCL/backend"
	"github.com/0dminnimda/OpenSYCL/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[target]
name = "spirv"
translator = "/opt/llvm/bin/llvm-spirv"
temp-dir = "/var/tmp/sscp"

[kernels]
names = ["kern_a", "kern_b"]

[[specialization]]
global = "width"
value = 64

[[specialization]]
global = "height"
value = 32
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "spirv", cfg.TargetName)
	assert.Equal(t, "/opt/llvm/bin/llvm-spirv", cfg.TranslatorPath)
	assert.Equal(t, "/var/tmp/sscp", cfg.TempDir)
	assert.Equal(t, []string{"kern_a", "kern_b"}, cfg.KernelNames)
	assert.Equal(t, []Specialization{{"width", 64}, {"height", 32}}, cfg.Specializations)

	target := cfg.Target()
	assert.Equal(t, "/opt/llvm/bin/llvm-spirv", target.TranslatorPath)
	assert.Equal(t, backend.SPIRV.Triple, target.Triple)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, backend.SPIRV, cfg.Target())
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"malformed":      "[target\nname = ",
		"unknown target": "[target]\nname = \"ptx\"\n",
		"relative path":  "[target]\ntranslator = \"bin/llvm-spirv\"\n",
		"empty kernel":   "[kernels]\nnames = [\"a\", \"\"]\n",
		"empty global":   "[[specialization]]\nvalue = 1\n",
	}

	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestUnknownTargetListsKnownTargets(t *testing.T) {
	cfg := Default()
	cfg.TargetName = "ptx"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "known targets: spirv")
}

func TestFindAndLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := FindAndLoad(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, common.ConfigFileName), []byte(sampleConfig), 0644))

	cfg, err = FindAndLoad(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"kern_a", "kern_b"}, cfg.KernelNames)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[target]\nname = \"ptx\"\n"), 0644))

	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.toml")
}
