// Package lltext provides IR modules backed by the pure-Go LLVM IR library
// llir/llvm.  Modules are parsed from and serialized to textual LLVM IR, so
// they can be flavored without linking against LLVM.
package lltext

import (
	"io"

	"github.com/0dminnimda/OpenSYCL/backend"
	"github.com/cockroachdb/errors"
	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// Module is a textual IR module.
type Module struct {
	m *ir.Module
}

// NewModule wraps an existing llir module.
func NewModule(m *ir.Module) *Module {
	return &Module{m: m}
}

// Parse parses textual LLVM IR into a module.  The name is used for error
// messages only.
func Parse(name string, src []byte) (*Module, error) {
	m, err := asm.ParseBytes(name, src)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", name)
	}

	return &Module{m: m}, nil
}

// Load is a backend.Loader for textual IR.
func Load(src []byte) (backend.Module, error) {
	return Parse("<input>", src)
}

// IR returns the underlying llir module.
func (m *Module) IR() *ir.Module {
	return m.m
}

func (m *Module) TargetTriple() string {
	return m.m.TargetTriple
}

func (m *Module) SetTargetTriple(triple string) {
	m.m.TargetTriple = triple
}

func (m *Module) DataLayout() string {
	return m.m.DataLayout
}

func (m *Module) SetDataLayout(layout string) {
	m.m.DataLayout = layout
}

func (m *Module) Function(name string) (backend.Function, bool) {
	for _, f := range m.m.Funcs {
		if f.Name() == name {
			return Function{f: f}, true
		}
	}

	return nil, false
}

// SpecializeGlobal gives the named integer global a constant initializer.
// Globals which are not of integer type are left untouched and reported as
// absent.
func (m *Module) SpecializeGlobal(name string, value uint64) bool {
	for _, g := range m.m.Globals {
		if g.Name() != name {
			continue
		}

		it, ok := g.ContentType.(*types.IntType)
		if !ok {
			return false
		}

		g.Init = constant.NewInt(it, int64(value))
		g.Immutable = true
		g.Linkage = enum.LinkageInternal
		return true
	}

	return false
}

// Serialize writes the module as textual LLVM IR.
func (m *Module) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, m.m.String())
	return err
}

// -----------------------------------------------------------------------------

// Function is a function of a textual IR module.
type Function struct {
	f *ir.Func
}

func (fn Function) Name() string {
	return fn.f.Name()
}

// llir reserves the zero calling convention for "none" and numbers the C
// calling convention 1.  All other conventions share LLVM's numbering.
func (fn Function) CallConv() backend.CallConv {
	switch fn.f.CallingConv {
	case enum.CallingConvNone, enum.CallingConvC:
		return backend.CCallConv
	default:
		return backend.CallConv(fn.f.CallingConv)
	}
}

func (fn Function) SetCallConv(cc backend.CallConv) {
	if cc == backend.CCallConv {
		fn.f.CallingConv = enum.CallingConvNone
	} else {
		fn.f.CallingConv = enum.CallingConv(cc)
	}
}
