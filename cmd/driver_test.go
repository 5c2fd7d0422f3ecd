package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/0dminnimda/OpenSYCL/config"
	"github.com/0dminnimda/OpenSYCL/lltext"
	"github.com/0dminnimda/OpenSYCL/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitKernelNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitKernelNames("a, b,,c ,"))
	assert.Nil(t, splitKernelNames(" , "))
}

func TestOutputPathOr(t *testing.T) {
	d := &driver{inputPath: "/work/kernels.bc"}
	assert.Equal(t, "/work/kernels.spv", d.outputPathOr(".spv"))

	d.outputPath = "/out/k.spv"
	assert.Equal(t, "/out/k.spv", d.outputPathOr(".spv"))
}

func TestFlavor(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "kernels.ll")
	require.NoError(t, os.WriteFile(inputPath, []byte(`
@width = global i32 0

define void @kern() {
entry:
  ret void
}
`), 0644))

	cfg := config.Default()
	cfg.KernelNames = []string{"kern"}
	cfg.Specializations = []config.Specialization{{Global: "width", Value: 128}}

	d := &driver{inputPath: inputPath, cfg: cfg}
	require.True(t, d.flavor())

	out, err := os.ReadFile(filepath.Join(dir, "kernels.flavored.ll"))
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, `target triple = "spir64-unknown-unknown"`)
	assert.Contains(t, text, "define spir_kernel void @kern()")
	assert.Contains(t, text, "@width = internal constant i32 128")
}

func TestFlavorMissingInput(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)

	d := &driver{inputPath: filepath.Join(t.TempDir(), "missing.ll"), cfg: config.Default()}
	assert.False(t, d.flavor())
}

// closeFailer is an output whose contents never reach their destination.
type closeFailer struct {
	bytes.Buffer
	closed bool
}

func (cf *closeFailer) Close() error {
	cf.closed = true
	return errors.New("input/output error")
}

func TestWriteAndCloseReportsCloseError(t *testing.T) {
	mod, err := lltext.Parse("k.ll", []byte("define void @kern() {\nentry:\n  ret void\n}\n"))
	require.NoError(t, err)

	out := &closeFailer{}
	err = writeAndClose(out, mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input/output error")
	assert.True(t, out.closed)
	assert.Contains(t, out.String(), "@kern")
}
