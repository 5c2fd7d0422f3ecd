package llvm

/*
#include <stdlib.h>
#include "llvm-c/Core.h"
*/
import "C"
import "unsafe"

// GlobalVariable represents an LLVM global variable.
type GlobalVariable struct {
	c C.LLVMValueRef
}

// GetGlobal returns the global variable corresponding to name.
func (m *Module) GetGlobal(name string) (gv GlobalVariable, exists bool) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	gvPtr := C.LLVMGetNamedGlobal(m.c, cname)
	if gvPtr == nil {
		return
	}

	gv.c = gvPtr
	exists = true
	return
}

// IsIntegral returns whether the value type of the global is an integer type.
func (gv GlobalVariable) IsIntegral() bool {
	return C.LLVMGetTypeKind(C.LLVMGlobalGetValueType(gv.c)) == C.LLVMIntegerTypeKind
}

// SetConstantInt sets the initializer of an integer global to value and marks
// it as an internal constant so that optimization can fold its uses.
func (gv GlobalVariable) SetConstantInt(value uint64) {
	init := C.LLVMConstInt(C.LLVMGlobalGetValueType(gv.c), (C.ulonglong)(value), llvmBool(false))

	C.LLVMSetInitializer(gv.c, init)
	C.LLVMSetGlobalConstant(gv.c, llvmBool(true))
	C.LLVMSetLinkage(gv.c, C.LLVMInternalLinkage)
}
