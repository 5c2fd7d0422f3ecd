// Package llvm contains the bindings to the LLVM C API used by the translator:
// module parsing, the module properties touched while flavoring, bitcode
// serialization and the new pass manager.
//
// The package links against LLVM: build with CGO_CFLAGS and CGO_LDFLAGS set
// from `llvm-config --cflags` and `llvm-config --ldflags --libs --system-libs`.
package llvm

/*
#include "llvm-c/Core.h"
*/
import "C"
import "unsafe"

// OwnedObject is a native handle released together with its Context.
type OwnedObject interface {
	dispose()
}

// Context wraps an LLVMContextRef.  Modules parsed into a context live until
// the context is disposed.
type Context struct {
	c C.LLVMContextRef

	// Handles disposed before the context itself.
	ownedObjects []OwnedObject
}

// NewContext creates an empty context.  Callers must Dispose it.
func NewContext() *Context {
	return &Context{c: C.LLVMContextCreate()}
}

// takeOwnership ties the lifetime of obj to the context.
func (c *Context) takeOwnership(obj OwnedObject) {
	c.ownedObjects = append(c.ownedObjects, obj)
}

// Dispose releases every owned handle, then the context.  The context and the
// modules parsed into it must not be used afterwards.
func (c *Context) Dispose() {
	for _, obj := range c.ownedObjects {
		obj.dispose()
	}
	c.ownedObjects = nil

	C.LLVMContextDispose(c.c)
}

// -----------------------------------------------------------------------------

// byref yields an out-parameter pointer for a C call.
func byref[T any](v *T) *T {
	return (*T)(unsafe.Pointer(v))
}

// llvmBool encodes v as LLVMBool.
func llvmBool(v bool) C.LLVMBool {
	if v {
		return 1
	}

	return 0
}
