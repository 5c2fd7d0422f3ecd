package backend_test

import (
	"testing"

	"github.com/0dminnimda/OpenSYCL/backend"
	"github.com/stretchr/testify/assert"
)

func TestCallConvString(t *testing.T) {
	assert.Equal(t, "spir_kernel", backend.SPIRKernelCallConv.String())
	assert.Equal(t, "ccc", backend.CCallConv.String())
	assert.Equal(t, "cc64", backend.CallConv(64).String())
}

func TestLookupTarget(t *testing.T) {
	target, ok := backend.LookupTarget("spirv")
	assert.True(t, ok)
	assert.Equal(t, backend.SPIRKernelCallConv, target.KernelCallConv)
	assert.Equal(t, "spir64-unknown-unknown", target.Triple)

	_, ok = backend.LookupTarget("ptx")
	assert.False(t, ok)

	assert.Equal(t, []string{"spirv"}, backend.TargetNames())
}
