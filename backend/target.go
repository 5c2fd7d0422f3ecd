package backend

// Target describes one device backend: the fixed properties a module must be
// flavored with and the external tool that produces the backend binary.
type Target struct {
	// The name of the target as used in configuration: eg. "spirv".
	Name string

	// The target triple and data layout every flavored module receives.
	Triple     string
	DataLayout string

	// The calling convention of kernel entry points.
	KernelCallConv CallConv

	// The prefix used for temporary file names along with the extensions of
	// the translator's input and output files.
	TempPrefix string
	InputExt   string
	OutputExt  string

	// The absolute path to the external translator executable.
	TranslatorPath string
}

// SPIRV is the SPIR-V backend: modules are translated by `llvm-spirv`.
var SPIRV = Target{
	Name:           "spirv",
	Triple:         "spir64-unknown-unknown",
	DataLayout:     "e-i64:64-v16:16-v24:32-v32:32-v48:64-v96:128-v192:256-v256:256-v512:512-v1024:1024",
	KernelCallConv: SPIRKernelCallConv,
	TempPrefix:     "sscp-spirv",
	InputExt:       ".bc",
	OutputExt:      ".spv",
	TranslatorPath: "/usr/bin/llvm-spirv",
}

// targets is the table of known targets organized by name.
var targets = map[string]Target{
	SPIRV.Name: SPIRV,
}

// LookupTarget returns a copy of the target with the given name.
func LookupTarget(name string) (Target, bool) {
	t, ok := targets[name]
	return t, ok
}

// TargetNames returns the names of all known targets.
func TargetNames() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}

	return names
}
