package backend

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0dminnimda/OpenSYCL/report"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// TranslateToBackendFormat serializes a flavored module, runs the target's
// external translator over it, and returns the backend binary it produced.
// Both temporary files used to communicate with the translator are removed
// before this function returns, whether or not translation succeeded.
func (t *Translator) TranslateToBackendFormat(m Module) ([]byte, bool) {
	inputPattern := t.target.TempPrefix + "-*" + t.target.InputExt

	inputFile, err := afero.TempFile(t.fs, t.tempDir, inputPattern)
	if err != nil {
		t.registerError("could not create temp file: %s", filepath.Join(t.tempDir, inputPattern))
		return nil, false
	}
	inputPath := inputFile.Name()
	defer t.removeTempFile(inputPath)

	// The output file is created by the translator: we only reserve a name.
	outputPath := filepath.Join(
		t.tempDir,
		fmt.Sprintf("%s-%s%s", t.target.TempPrefix, uuid.NewString(), t.target.OutputExt),
	)
	defer t.removeTempFile(outputPath)

	if err := writeModule(inputFile, m); err != nil {
		t.registerError("could not write module to temp file: %s", err)
		return nil, false
	}

	translatorName := filepath.Base(t.target.TranslatorPath)
	report.ReportVerbose("running %s on %s", translatorName, filepath.Base(inputPath))

	exitCode, err := t.runner.Run(t.target.TranslatorPath, []string{"-o=" + outputPath, inputPath})
	if err != nil {
		t.registerError("could not execute translator %s: %s", t.target.TranslatorPath, err)
		return nil, false
	}

	if exitCode != 0 {
		t.registerError("%s invocation failed with exit code %d", translatorName, exitCode)
		return nil, false
	}

	result, err := afero.ReadFile(t.fs, outputPath)
	if err != nil {
		t.registerError("could not read result file: %s", err)
		return nil, false
	}

	return result, true
}

// removeTempFile removes a temporary file.  The output file is absent whenever
// the translator did not run to completion, so a missing file is not reported.
func (t *Translator) removeTempFile(path string) {
	if err := t.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		report.ReportVerbose("failed to delete temporary file %s: %s", path, err)
	}
}

// writeModule serializes m into f.  The file is flushed, synced and closed
// before this function returns so that another process can read it.
func writeModule(f afero.File, m Module) error {
	bw := bufio.NewWriter(f)

	if err := m.Serialize(bw); err != nil {
		f.Close()
		return err
	}

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
