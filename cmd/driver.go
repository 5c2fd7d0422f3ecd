package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/0dminnimda/OpenSYCL/backend"
	"github.com/0dminnimda/OpenSYCL/config"
	"github.com/0dminnimda/OpenSYCL/lltext"
	"github.com/0dminnimda/OpenSYCL/llvm"
	"github.com/0dminnimda/OpenSYCL/report"
	"github.com/ComedicChimera/olive"
	"github.com/cockroachdb/errors"
)

// driver holds the state of a single translator invocation.
type driver struct {
	// The absolute path to the input module.
	inputPath string

	// The path to write output to.  Empty means a path derived from the input.
	outputPath string

	// The configuration of the translation.
	cfg *config.Config
}

// newDriver creates a driver from the arguments of a subcommand: the config is
// loaded and command-line overrides are applied on top of it.
func newDriver(result *olive.ArgParseResult) (*driver, error) {
	inputRelPath, _ := result.PrimaryArg()
	inputPath, err := filepath.Abs(inputRelPath)
	if err != nil {
		return nil, errors.Wrap(err, "invalid module path")
	}

	var cfg *config.Config
	if cfgPath, ok := stringArg(result, "config"); ok {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.FindAndLoad(filepath.Dir(inputPath))
	}

	if err != nil {
		return nil, err
	}

	if kernels, ok := stringArg(result, "kernels"); ok {
		cfg.KernelNames = splitKernelNames(kernels)
	}

	if targetName, ok := stringArg(result, "target"); ok {
		cfg.TargetName = targetName
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &driver{inputPath: inputPath, cfg: cfg}
	d.outputPath, _ = stringArg(result, "output")
	return d, nil
}

// stringArg returns the value of a string argument if it was supplied.
func stringArg(result *olive.ArgParseResult, name string) (string, bool) {
	if v, ok := result.Arguments[name]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	return "", false
}

// splitKernelNames splits a comma-separated list of kernel names.
func splitKernelNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}

// outputPathOr returns the output path of the driver or, if none was given,
// the input path with its extension replaced by ext.
func (d *driver) outputPathOr(ext string) string {
	if d.outputPath != "" {
		return d.outputPath
	}

	return strings.TrimSuffix(d.inputPath, filepath.Ext(d.inputPath)) + ext
}

// newTranslator creates the translator for the configured target.
func (d *driver) newTranslator(opt backend.Optimizer) *backend.Translator {
	tr := backend.NewTranslator(d.cfg.Target(), d.cfg.KernelNames, backend.Toolchain{
		Optimizer: opt,
		TempDir:   d.cfg.TempDir,
	})

	for _, spec := range d.cfg.Specializations {
		tr.SpecializeConstant(spec.Global, spec.Value)
	}

	return tr
}

// reportTranslatorErrors reports every entry of the translator's error log.
func reportTranslatorErrors(tr *backend.Translator) {
	for _, msg := range tr.Errors() {
		report.ReportError("Translation Error", "%s", msg)
	}
}

// -----------------------------------------------------------------------------

// translate runs the full native translation of the input module.
func (d *driver) translate(opt llvm.Optimizer) bool {
	report.ReportPhase("Loading")

	src, err := os.ReadFile(d.inputPath)
	if err != nil {
		report.ReportError("Input Error", "failed to read module: %s", err)
		report.ReportTranslationFinished("")
		return false
	}

	ctx := llvm.NewContext()
	defer ctx.Dispose()

	tr := d.newTranslator(opt)

	report.ReportPhase("Translation")

	out, ok := tr.FullTransformation(src, ctx.Loader())
	if !ok {
		reportTranslatorErrors(tr)
		report.ReportTranslationFinished("")
		return false
	}

	outputPath := d.outputPathOr(tr.Target().OutputExt)
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		report.ReportError("Output Error", "failed to write output file: %s", err)
		report.ReportTranslationFinished("")
		return false
	}

	report.ReportTranslationFinished(outputPath)
	return true
}

// flavor flavors the textual input module for the configured target and
// writes the flavored module.  No native passes are run.
func (d *driver) flavor() bool {
	report.ReportPhase("Loading")

	src, err := os.ReadFile(d.inputPath)
	if err != nil {
		report.ReportError("Input Error", "failed to read module: %s", err)
		report.ReportTranslationFinished("")
		return false
	}

	mod, err := lltext.Parse(filepath.Base(d.inputPath), src)
	if err != nil {
		report.ReportError("Input Error", "%s", err)
		report.ReportTranslationFinished("")
		return false
	}

	tr := d.newTranslator(lltext.Optimizer{})

	report.ReportPhase("Flavoring")

	for _, spec := range d.cfg.Specializations {
		if !mod.SpecializeGlobal(spec.Global, spec.Value) {
			report.ReportWarning("Specialization", "global `%s` not present in module", spec.Global)
		}
	}

	if !tr.ToBackendFlavor(mod) {
		reportTranslatorErrors(tr)
		report.ReportTranslationFinished("")
		return false
	}

	outputPath := d.outputPathOr(".flavored.ll")
	f, err := os.Create(outputPath)
	if err != nil {
		report.ReportError("Output Error", "failed to create output file: %s", err)
		report.ReportTranslationFinished("")
		return false
	}

	if err := writeAndClose(f, mod); err != nil {
		report.ReportError("Output Error", "failed to write output file: %s", err)
		report.ReportTranslationFinished("")
		return false
	}

	report.ReportTranslationFinished(outputPath)
	return true
}

// writeAndClose serializes m into wc and closes it, returning the first error.
func writeAndClose(wc io.WriteCloser, m backend.Module) error {
	if err := m.Serialize(wc); err != nil {
		wc.Close()
		return err
	}

	return errors.Wrap(wc.Close(), "close")
}
