// Package backend translates target-agnostic IR modules into backend binaries.
// A Translator flavors a module for its target, optimizes it, serializes it to
// bitcode, and hands the bitcode to an external translator executable.
//
// Failures never cross the package boundary as errors: every entry point
// returns a boolean and records the cause in the translator's error log.
package backend

import (
	"os"

	"github.com/0dminnimda/OpenSYCL/report"
	"github.com/spf13/afero"
)

// Toolchain bundles the collaborators a Translator depends on.  Zero fields
// are replaced with defaults by NewTranslator.
type Toolchain struct {
	// The optimizer used to run the backend pass sequence.  This must be set.
	Optimizer Optimizer

	// The runner used to invoke the external translator.  Defaults to
	// ExecRunner.
	Runner Runner

	// The filesystem on which temporary files are created.  Defaults to the
	// operating system's filesystem.
	FS afero.Fs

	// The directory in which temporary files are created.  Defaults to the
	// system temporary directory.
	TempDir string
}

// specialization is a constant value substituted for a named global.
type specialization struct {
	global string
	value  uint64
}

// Translator translates IR modules for a single target.  A Translator is not
// safe for concurrent use: translating several modules in parallel requires
// one Translator per goroutine.
type Translator struct {
	target      Target
	kernelNames []string

	optimizer Optimizer
	runner    Runner
	fs        afero.Fs
	tempDir   string

	specializations []specialization

	errorLog ErrorLog
}

// NewTranslator creates a new translator for target.  The kernel names are the
// names of the functions that must be treated as kernel entry points.
func NewTranslator(target Target, kernelNames []string, tc Toolchain) *Translator {
	if tc.Optimizer == nil {
		panic("backend: translator requires an optimizer")
	}

	if tc.Runner == nil {
		tc.Runner = ExecRunner{}
	}

	if tc.FS == nil {
		tc.FS = afero.NewOsFs()
	}

	if tc.TempDir == "" {
		tc.TempDir = os.TempDir()
	}

	names := make([]string, len(kernelNames))
	copy(names, kernelNames)

	return &Translator{
		target:      target,
		kernelNames: names,
		optimizer:   tc.Optimizer,
		runner:      tc.Runner,
		fs:          tc.FS,
		tempDir:     tc.TempDir,
	}
}

// Target returns the target of the translator.
func (t *Translator) Target() Target {
	return t.target
}

// KernelNames returns the kernel entry point names of the translator.
func (t *Translator) KernelNames() []string {
	names := make([]string, len(t.kernelNames))
	copy(names, t.kernelNames)
	return names
}

// Errors returns every error registered over the lifetime of the translator.
func (t *Translator) Errors() []string {
	return t.errorLog.Entries()
}

// ErrorLogString returns the error log as a single newline-separated string.
func (t *Translator) ErrorLogString() string {
	return t.errorLog.String()
}

// registerError appends an entry to the error log.
func (t *Translator) registerError(format string, args ...interface{}) {
	t.errorLog.Register(format, args...)
}

// -----------------------------------------------------------------------------

// SpecializeConstant registers a value to substitute for the named global
// before a module is flavored by FullTransformation.  Registering the same
// global twice replaces the earlier value.
func (t *Translator) SpecializeConstant(global string, value uint64) {
	for i, spec := range t.specializations {
		if spec.global == global {
			t.specializations[i].value = value
			return
		}
	}

	t.specializations = append(t.specializations, specialization{global: global, value: value})
}

// applySpecializations substitutes all registered constants into m.
func (t *Translator) applySpecializations(m Module) {
	for _, spec := range t.specializations {
		if !m.SpecializeGlobal(spec.global, spec.value) {
			report.ReportVerbose("specialization constant `%s` not present in module; skipped", spec.global)
		}
	}
}

// FullTransformation loads a module from src and runs it through the entire
// translation: specialization, flavoring, optimization, and translation to the
// backend format.  It returns the backend binary and whether translation
// succeeded.
func (t *Translator) FullTransformation(src []byte, load Loader) ([]byte, bool) {
	m, err := load(src)
	if err != nil {
		t.registerError("could not load LLVM module: %s", err)
		return nil, false
	}

	t.applySpecializations(m)

	if !t.ToBackendFlavor(m) {
		return nil, false
	}

	return t.TranslateToBackendFormat(m)
}
