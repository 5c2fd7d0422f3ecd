package backend

import (
	"io"
	"strconv"
)

// CallConv is an LLVM calling convention identifier.  The values match the
// numbering used by LLVM itself so that IR implementations can convert to and
// from their own representation without a lookup table.
type CallConv uint

// Enumeration of the calling conventions the backends care about.
const (
	CCallConv            CallConv = 0
	FastCallConv         CallConv = 8
	ColdCallConv         CallConv = 9
	PTXKernelCallConv    CallConv = 71
	PTXDeviceCallConv    CallConv = 72
	SPIRFuncCallConv     CallConv = 75
	SPIRKernelCallConv   CallConv = 76
	AMDGPUKernelCallConv CallConv = 91
)

var callConvNames = map[CallConv]string{
	CCallConv:            "ccc",
	FastCallConv:         "fastcc",
	ColdCallConv:         "coldcc",
	PTXKernelCallConv:    "ptx_kernel",
	PTXDeviceCallConv:    "ptx_device",
	SPIRFuncCallConv:     "spir_func",
	SPIRKernelCallConv:   "spir_kernel",
	AMDGPUKernelCallConv: "amdgpu_kernel",
}

func (cc CallConv) String() string {
	if name, ok := callConvNames[cc]; ok {
		return name
	}

	return "cc" + strconv.FormatUint(uint64(cc), 10)
}

// -----------------------------------------------------------------------------

// Module is an in-memory IR module that can be flavored for a backend and
// serialized for the external translator.  Implementations mutate themselves
// in place: a flavored module cannot be returned to its generic form.
type Module interface {
	// TargetTriple returns the target triple of the module.
	TargetTriple() string

	// SetTargetTriple sets the target triple of the module.
	SetTargetTriple(triple string)

	// DataLayout returns the data layout string of the module.
	DataLayout() string

	// SetDataLayout sets the data layout string of the module.
	SetDataLayout(layout string)

	// Function looks up a defined or declared function by name.
	Function(name string) (Function, bool)

	// SpecializeGlobal replaces the initializer of the named integer global
	// with value and marks the global as an internal constant.  It returns
	// false if no such global exists.
	SpecializeGlobal(name string, value uint64) bool

	// Serialize writes the module's interchange encoding to w: LLVM bitcode
	// for native modules.
	Serialize(w io.Writer) error
}

// Function is a function of a Module.
type Function interface {
	// Name returns the name of the function.
	Name() string

	// CallConv returns the calling convention of the function.
	CallConv() CallConv

	// SetCallConv sets the calling convention of the function.
	SetCallConv(cc CallConv)
}

// Loader creates a Module from its serialized form (bitcode or textual IR).
type Loader func(src []byte) (Module, error)
