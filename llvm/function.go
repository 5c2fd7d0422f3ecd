package llvm

/*
#include <stdlib.h>
#include "llvm-c/Core.h"
*/
import "C"

// CallConv represents an LLVM calling convention.
type CallConv C.LLVMCallConv

// Enumeration of the calling conventions relevant to device backends.
const (
	CCallConv            CallConv = C.LLVMCCallConv
	FastCallConv         CallConv = C.LLVMFastCallConv
	ColdCallConv         CallConv = C.LLVMColdCallConv
	PTXKernelCallConv    CallConv = C.LLVMPTXKernelCallConv
	PTXDeviceCallConv    CallConv = C.LLVMPTXDeviceCallConv
	SPIRFUNCCallConv     CallConv = C.LLVMSPIRFUNCCallConv
	SPIRKERNELCallConv   CallConv = C.LLVMSPIRKERNELCallConv
	AMDGPUKERNELCallConv CallConv = C.LLVMAMDGPUKERNELCallConv
)

// Function represents an LLVM function.
type Function struct {
	c C.LLVMValueRef
}

// Name returns the name of the function.
func (f Function) Name() string {
	var strlen C.size_t
	cname := C.LLVMGetValueName2(f.c, byref(&strlen))
	return C.GoStringN(cname, (C.int)(strlen))
}

// CallConv returns the calling convention of the function.
func (f Function) CallConv() CallConv {
	return CallConv(C.LLVMGetFunctionCallConv(f.c))
}

// SetCallConv sets the calling convention of the function to cc.
func (f Function) SetCallConv(cc CallConv) {
	C.LLVMSetFunctionCallConv(f.c, (C.uint)(cc))
}
