package llvm

import (
	"io"

	"github.com/0dminnimda/OpenSYCL/backend"
	"github.com/cockroachdb/errors"
)

// BackendModule exposes a native module to the translator.
type BackendModule struct {
	*Module
}

func (bm BackendModule) Function(name string) (backend.Function, bool) {
	fn, ok := bm.GetFunction(name)
	if !ok {
		return nil, false
	}

	return backendFunction{fn: fn}, true
}

func (bm BackendModule) SpecializeGlobal(name string, value uint64) bool {
	gv, ok := bm.GetGlobal(name)
	if !ok || !gv.IsIntegral() {
		return false
	}

	gv.SetConstantInt(value)
	return true
}

// Serialize writes the module as LLVM bitcode.
func (bm BackendModule) Serialize(w io.Writer) error {
	return bm.WriteBitcode(w)
}

// backendFunction exposes a native function to the translator.  The backend
// calling convention numbering is LLVM's own, so conversion is a cast.
type backendFunction struct {
	fn Function
}

func (bf backendFunction) Name() string {
	return bf.fn.Name()
}

func (bf backendFunction) CallConv() backend.CallConv {
	return backend.CallConv(bf.fn.CallConv())
}

func (bf backendFunction) SetCallConv(cc backend.CallConv) {
	bf.fn.SetCallConv(CallConv(cc))
}

// Loader returns a loader which parses modules into this context.  The modules
// it creates are disposed along with the context.
func (ctx *Context) Loader() backend.Loader {
	return func(src []byte) (backend.Module, error) {
		mod, err := ctx.NewModuleFromIR(src)
		if err != nil {
			return nil, err
		}

		if err := mod.Verify(); err != nil {
			return nil, errors.Wrap(err, "invalid module")
		}

		return BackendModule{Module: mod}, nil
	}
}

// -----------------------------------------------------------------------------

// Optimizer runs pass pipelines through LLVM's new pass manager.
type Optimizer struct {
	// Whether the module should be verified after every pass.
	VerifyEach bool

	// Whether each pass run should be logged by LLVM.
	DebugLogging bool
}

// passManager runs pipelines with a shared set of pass builder options.
type passManager struct {
	pbo PassBuilderOptions
}

func (o Optimizer) WithPassManager(fn func(pm backend.PassManager) error) error {
	pbo := NewPassBuilderOptions()
	defer pbo.dispose()

	pbo.SetVerifyEach(o.VerifyEach)
	pbo.SetDebugLogging(o.DebugLogging)

	return fn(passManager{pbo: pbo})
}

func (pm passManager) RunPasses(m backend.Module, pipeline string) error {
	bm, ok := m.(BackendModule)
	if !ok {
		return errors.Newf("cannot run native passes over module of type %T", m)
	}

	return bm.RunPasses(pipeline, pm.pbo)
}
