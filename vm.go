package lispp

import (
	"io"
	"strings"
)

// VM pairs a Reader over a byte source with the global environment it
// evaluates against, mirroring the original's VirtualMachineBase.
type VM struct {
	reader *Reader
	tok    *Tokenizer
	Global *Env
}

// New builds a VM reading from r with a fresh global environment: builtins
// registered, then the standard prelude evaluated once.
func New(r io.Reader) (*VM, *LispError) {
	global := NewEnv(nil)
	registerBuiltins(global)

	vm := &VM{Global: global}
	vm.resetTokenizer(strings.NewReader(prelude))
	if _, err := vm.EvalAll(); err != nil {
		return nil, err
	}

	vm.resetTokenizer(r)
	return vm, nil
}

// NewFromString builds a VM whose source is the given code, for use as a
// one-shot evaluator of a fixed string.
func NewFromString(code string) (*VM, *LispError) {
	return New(strings.NewReader(code))
}

func (vm *VM) resetTokenizer(r io.Reader) {
	vm.tok = NewTokenizer(r)
	vm.reader = NewReader(vm.tok)
}

// Feed replaces the VM's source with code, for REPL-style line-at-a-time
// evaluation over a single long-lived global environment.
func (vm *VM) Feed(code string) {
	vm.resetTokenizer(strings.NewReader(code))
}

// HasObjects reports whether a further top-level form is available.
func (vm *VM) HasObjects() bool {
	return vm.reader.HasObjects(true)
}

// Parse reads one top-level object without evaluating it.
func (vm *VM) Parse() (Value, *LispError) {
	return vm.reader.ReadObject()
}

// EvalOne parses and evaluates exactly one top-level form.
func (vm *VM) EvalOne() (Value, *LispError) {
	v, err := vm.Parse()
	if err != nil {
		return nil, err
	}
	return Eval(v, vm.Global)
}

// EvalAll evaluates every remaining top-level form, returning the value of
// the last one (Nil if there were none).
func (vm *VM) EvalAll() (Value, *LispError) {
	var result Value = NilValue
	for vm.HasObjects() {
		v, err := vm.EvalOne()
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// CurrentLine reports the tokenizer's current line, for the batch driver's
// error annotation.
func (vm *VM) CurrentLine() int {
	return vm.tok.CurrentLine()
}
