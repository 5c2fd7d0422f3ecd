package llvm

/*
#include <stdlib.h>
#include "llvm-c/Core.h"
#include "llvm-c/Error.h"
#include "llvm-c/Transforms/PassBuilder.h"
*/
import "C"

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// PassBuilderOptions represents the options of LLVM's new pass manager.
type PassBuilderOptions struct {
	c C.LLVMPassBuilderOptionsRef
}

// NewPassBuilderOptions creates a new set of pass builder options.  The options
// must be disposed by the caller.
func NewPassBuilderOptions() (pbo PassBuilderOptions) {
	pbo.c = C.LLVMCreatePassBuilderOptions()
	return
}

// dispose disposes of the pass builder options.
func (pbo PassBuilderOptions) dispose() {
	C.LLVMDisposePassBuilderOptions(pbo.c)
}

// SetVerifyEach sets whether the module is verified after each pass.
func (pbo PassBuilderOptions) SetVerifyEach(verify bool) {
	C.LLVMPassBuilderOptionsSetVerifyEach(pbo.c, llvmBool(verify))
}

// SetDebugLogging sets whether the pass manager logs each pass it runs.
func (pbo PassBuilderOptions) SetDebugLogging(debug bool) {
	C.LLVMPassBuilderOptionsSetDebugLogging(pbo.c, llvmBool(debug))
}

// RunPasses runs the textual pass pipeline over the module.  No target machine
// is supplied: the passes only see the module's triple and data layout.
func (m *Module) RunPasses(pipeline string, pbo PassBuilderOptions) error {
	cpipeline := C.CString(pipeline)
	defer C.free(unsafe.Pointer(cpipeline))

	if cerr := C.LLVMRunPasses(m.c, cpipeline, nil, pbo.c); cerr != nil {
		cmsg := C.LLVMGetErrorMessage(cerr)
		defer C.LLVMDisposeErrorMessage(cmsg)

		return errors.Newf("pipeline `%s`: %s", pipeline, C.GoString(cmsg))
	}

	return nil
}
