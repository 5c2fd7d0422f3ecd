package backend

import "github.com/0dminnimda/OpenSYCL/report"

// ToBackendFlavor mutates m so that it matches the translator's target: the
// target triple, the data layout, and the calling convention of every kernel
// entry point are set.  The module is then optimized.  Kernel names which do
// not name a function in m are skipped.
func (t *Translator) ToBackendFlavor(m Module) bool {
	if m == nil {
		panic("backend: cannot flavor a nil module")
	}

	// The triple and layout must be set before optimization: passes make
	// legality and cost decisions based on them.
	m.SetTargetTriple(t.target.Triple)
	m.SetDataLayout(t.target.DataLayout)

	for _, name := range t.kernelNames {
		if fn, ok := m.Function(name); ok {
			fn.SetCallConv(t.target.KernelCallConv)
		} else {
			report.ReportVerbose("kernel `%s` not present in module; skipped", name)
		}
	}

	if err := t.optimize(m); err != nil {
		t.registerError("could not optimize module: %s", err)
		return false
	}

	return true
}
