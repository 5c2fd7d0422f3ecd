package backend_test

import (
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/0dminnimda/OpenSYCL/backend"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const testTempDir = "/tmp/sscp"

// newMemFs creates an in-memory filesystem with the test temp directory.
func newMemFs(t require.TestingT) afero.Fs {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testTempDir, 0755))
	return fs
}

// echoRunner returns a runner which copies the translator input to the
// translator output on fs.
func echoRunner(fs afero.Fs) backend.Runner {
	return backend.RunnerFunc(func(path string, args []string) (int, error) {
		data, err := afero.ReadFile(fs, args[1])
		if err != nil {
			return -1, err
		}

		return 0, afero.WriteFile(fs, strings.TrimPrefix(args[0], "-o="), data, 0644)
	})
}

// exitRunner returns a runner which exits with code without producing output.
func exitRunner(code int) backend.Runner {
	return backend.RunnerFunc(func(string, []string) (int, error) {
		return code, nil
	})
}

func newInvokeTranslator(fs afero.Fs, runner backend.Runner) *backend.Translator {
	return backend.NewTranslator(backend.SPIRV, []string{"kern"}, backend.Toolchain{
		Optimizer: &recordingOptimizer{},
		Runner:    runner,
		FS:        fs,
		TempDir:   testTempDir,
	})
}

// assertNoTempFiles checks that the temp directory is empty.
func assertNoTempFiles(t *testing.T, fs afero.Fs) {
	entries, err := afero.ReadDir(fs, testTempDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Empty(t, names, "temporary files left behind")
}

func TestTranslateToBackendFormatRoundTrip(t *testing.T) {
	fs := newMemFs(t)
	m := newTestModule("kern")

	tr := newInvokeTranslator(fs, echoRunner(fs))

	out, ok := tr.TranslateToBackendFormat(m)
	require.True(t, ok, tr.ErrorLogString())
	assert.Equal(t, serialized(m), string(out))
	assert.Empty(t, tr.Errors())

	assertNoTempFiles(t, fs)
}

func TestTranslateToBackendFormatArguments(t *testing.T) {
	fs := newMemFs(t)

	var gotPath string
	var gotArgs []string
	runner := backend.RunnerFunc(func(path string, args []string) (int, error) {
		gotPath, gotArgs = path, args
		return echoRunner(fs).Run(path, args)
	})

	tr := newInvokeTranslator(fs, runner)
	_, ok := tr.TranslateToBackendFormat(newTestModule("kern"))
	require.True(t, ok, tr.ErrorLogString())

	assert.Equal(t, "/usr/bin/llvm-spirv", gotPath)
	require.Len(t, gotArgs, 2)

	outputPath := strings.TrimPrefix(gotArgs[0], "-o=")
	inputPath := gotArgs[1]
	assert.True(t, strings.HasPrefix(gotArgs[0], "-o="))

	for _, p := range []string{inputPath, outputPath} {
		assert.Equal(t, testTempDir, filepath.Dir(p))
		assert.True(t, strings.HasPrefix(filepath.Base(p), "sscp-spirv-"), p)
	}

	assert.Equal(t, ".bc", filepath.Ext(inputPath))
	assert.Equal(t, ".spv", filepath.Ext(outputPath))
	assert.NotEqual(t, inputPath, outputPath)
}

func TestTranslateToBackendFormatNonZeroExit(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		code := rapid.IntRange(1, 255).Draw(rt, "code")

		fs := newMemFs(rt)
		tr := newInvokeTranslator(fs, exitRunner(code))

		out, ok := tr.TranslateToBackendFormat(newTestModule("kern"))
		if ok || out != nil {
			rt.Fatalf("translation with exit code %d succeeded", code)
		}

		errs := tr.Errors()
		if len(errs) != 1 {
			rt.Fatalf("expected exactly one error, got %q", errs)
		}

		want := "llvm-spirv invocation failed with exit code " + strconv.Itoa(code)
		if errs[0] != want {
			rt.Fatalf("got error %q, want %q", errs[0], want)
		}

		if entries, _ := afero.ReadDir(fs, testTempDir); len(entries) != 0 {
			rt.Fatalf("temporary files left behind: %d", len(entries))
		}
	})
}

func TestTranslateToBackendFormatMissingOutput(t *testing.T) {
	fs := newMemFs(t)
	tr := newInvokeTranslator(fs, exitRunner(0))

	out, ok := tr.TranslateToBackendFormat(newTestModule("kern"))
	assert.False(t, ok)
	assert.Nil(t, out)

	errs := tr.Errors()
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0], "could not read result file: "), errs[0])

	assertNoTempFiles(t, fs)
}

func TestTranslateToBackendFormatSpawnFailure(t *testing.T) {
	fs := newMemFs(t)
	tr := newInvokeTranslator(fs, backend.RunnerFunc(func(string, []string) (int, error) {
		return -1, errors.New("no such file or directory")
	}))

	_, ok := tr.TranslateToBackendFormat(newTestModule("kern"))
	assert.False(t, ok)
	assert.Equal(t, []string{"could not execute translator /usr/bin/llvm-spirv: no such file or directory"}, tr.Errors())

	assertNoTempFiles(t, fs)
}

func TestTranslateToBackendFormatTempFileFailure(t *testing.T) {
	called := false
	runner := backend.RunnerFunc(func(string, []string) (int, error) {
		called = true
		return 0, nil
	})

	tr := newInvokeTranslator(afero.NewReadOnlyFs(newMemFs(t)), runner)

	out, ok := tr.TranslateToBackendFormat(newTestModule("kern"))
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.False(t, called, "translator must not run without an input file")

	errs := tr.Errors()
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0], "could not create temp file: "+testTempDir), errs[0])
}

func TestTranslateToBackendFormatSequential(t *testing.T) {
	fs := newMemFs(t)
	tr := newInvokeTranslator(fs, echoRunner(fs))

	m := newTestModule("foo")
	require.True(t, tr.ToBackendFlavor(m))

	var results [][]byte
	for i := 0; i < 2; i++ {
		out, ok := tr.TranslateToBackendFormat(m)
		require.True(t, ok, tr.ErrorLogString())
		assert.NotEmpty(t, out)
		assertNoTempFiles(t, fs)

		results = append(results, out)
	}

	assert.Equal(t, results[0], results[1])
	results[0][0] ^= 0xff
	assert.NotEqual(t, results[0], results[1], "results must not share storage")

	assert.Empty(t, tr.Errors())
}

func TestTranslateToBackendFormatPartialOutputRemoved(t *testing.T) {
	fs := newMemFs(t)
	runner := backend.RunnerFunc(func(path string, args []string) (int, error) {
		outputPath := strings.TrimPrefix(args[0], "-o=")
		if err := afero.WriteFile(fs, outputPath, []byte("partial"), 0644); err != nil {
			return -1, err
		}

		return 1, nil
	})

	tr := newInvokeTranslator(fs, runner)

	out, ok := tr.TranslateToBackendFormat(newTestModule("kern"))
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.Equal(t, []string{"llvm-spirv invocation failed with exit code 1"}, tr.Errors())

	assertNoTempFiles(t, fs)
}

// unserializableModule is a module whose serialization always fails.
type unserializableModule struct {
	backend.Module
}

func (unserializableModule) Serialize(io.Writer) error {
	return errors.New("disk quota exceeded")
}

func TestTranslateToBackendFormatSerializeFailure(t *testing.T) {
	fs := newMemFs(t)

	called := false
	runner := backend.RunnerFunc(func(string, []string) (int, error) {
		called = true
		return 0, nil
	})

	tr := newInvokeTranslator(fs, runner)

	out, ok := tr.TranslateToBackendFormat(unserializableModule{newTestModule("kern")})
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.False(t, called, "translator must not run on a partially written input")
	assert.Equal(t, []string{"could not write module to temp file: disk quota exceeded"}, tr.Errors())

	assertNoTempFiles(t, fs)
}

// stickyFs is a filesystem on which removal always fails.
type stickyFs struct {
	afero.Fs
	removed []string
}

func (fs *stickyFs) Remove(name string) error {
	fs.removed = append(fs.removed, name)
	return errors.New("device busy")
}

func TestTranslateToBackendFormatRemoveFailure(t *testing.T) {
	fs := &stickyFs{Fs: newMemFs(t)}

	var args []string
	runner := backend.RunnerFunc(func(path string, a []string) (int, error) {
		args = a
		return echoRunner(fs).Run(path, a)
	})
	tr := newInvokeTranslator(fs, runner)

	out, ok := tr.TranslateToBackendFormat(newTestModule("kern"))
	require.True(t, ok, tr.ErrorLogString())
	assert.NotEmpty(t, out)
	assert.Empty(t, tr.Errors())

	require.Len(t, args, 2)
	assert.ElementsMatch(t, []string{args[1], strings.TrimPrefix(args[0], "-o=")}, fs.removed)
}
