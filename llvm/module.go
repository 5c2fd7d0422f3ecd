package llvm

/*
#include <stdlib.h>
#include "llvm-c/Core.h"
#include "llvm-c/Analysis.h"
#include "llvm-c/BitWriter.h"
#include "llvm-c/IRReader.h"
*/
import "C"

import (
	"io"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Module represents an LLVM module.
type Module struct {
	c C.LLVMModuleRef
}

// NewModuleFromIR creates a new module in the context from either LLVM bitcode
// or textual LLVM IR.
func (ctx *Context) NewModuleFromIR(src []byte) (*Module, error) {
	if len(src) == 0 {
		return nil, errors.New("empty module source")
	}

	cname := C.CString("<input>")
	defer C.free(unsafe.Pointer(cname))

	// The parser takes ownership of the buffer: it must not be disposed here.
	memBuff := C.LLVMCreateMemoryBufferWithMemoryRangeCopy(
		(*C.char)(unsafe.Pointer(&src[0])),
		(C.size_t)(len(src)),
		cname,
	)

	var modPtr C.LLVMModuleRef
	var msg *C.char
	if C.LLVMParseIRInContext(ctx.c, memBuff, byref(&modPtr), byref(&msg)) == 0 {
		mod := &Module{c: modPtr}
		ctx.takeOwnership(mod)
		return mod, nil
	}

	defer C.LLVMDisposeMessage(msg)
	return nil, errors.New(C.GoString(msg))
}

// dispose disposes of the current module.
func (m *Module) dispose() {
	C.LLVMDisposeModule(m.c)
}

// -----------------------------------------------------------------------------

// DataLayout returns the data layout string of the module.
func (m *Module) DataLayout() string {
	return C.GoString(C.LLVMGetDataLayoutStr(m.c))
}

// SetDataLayout sets the data layout string of the module.
func (m *Module) SetDataLayout(layout string) {
	clayout := C.CString(layout)
	defer C.free(unsafe.Pointer(clayout))
	C.LLVMSetDataLayout(m.c, clayout)
}

// TargetTriple returns the target triple string of the module.
func (m *Module) TargetTriple() string {
	return C.GoString(C.LLVMGetTarget(m.c))
}

// SetTargetTriple sets the target triple string of the module.
func (m *Module) SetTargetTriple(triple string) {
	ctriple := C.CString(triple)
	defer C.free(unsafe.Pointer(ctriple))
	C.LLVMSetTarget(m.c, ctriple)
}

// -----------------------------------------------------------------------------

// GetFunction returns the declared function corresponding to name.
func (m *Module) GetFunction(name string) (fn Function, exists bool) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	fnPtr := C.LLVMGetNamedFunction(m.c, cname)
	if fnPtr == nil {
		return
	}

	fn.c = fnPtr
	exists = true
	return
}

// -----------------------------------------------------------------------------

// WriteBitcode writes the module to w as LLVM bitcode.
func (m *Module) WriteBitcode(w io.Writer) error {
	memBuff := C.LLVMWriteBitcodeToMemoryBuffer(m.c)
	if memBuff == nil {
		return errors.New("failed to write bitcode")
	}
	defer C.LLVMDisposeMemoryBuffer(memBuff)

	data := C.GoBytes(
		unsafe.Pointer(C.LLVMGetBufferStart(memBuff)),
		(C.int)(C.LLVMGetBufferSize(memBuff)),
	)

	_, err := w.Write(data)
	return err
}

// Verify verifies that the module is correct/well-formed.
func (m *Module) Verify() error {
	var cmsg *C.char

	if C.LLVMVerifyModule(m.c, C.LLVMReturnStatusAction, byref(&cmsg)) == 1 {
		msg := C.GoString(cmsg)
		C.LLVMDisposeMessage(cmsg)

		return errors.New(msg)
	}

	return nil
}
