package lispp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewVM(t *testing.T, src string) *VM {
	t.Helper()
	vm, err := New(strings.NewReader(src))
	require.Nil(t, err, "VM construction (prelude load) failed: %v", err)
	return vm
}

func evalAll(t *testing.T, vm *VM) Value {
	t.Helper()
	v, err := vm.EvalAll()
	require.Nil(t, err, "eval error: %v", err)
	return v
}

func TestPreludeLengthReverseMap(t *testing.T) {
	// spec.md §8 prelude sanity checks.
	vm := mustNewVM(t, "(length (list 1 2 3))")
	assert.Equal(t, Number(3), evalAll(t, vm))

	vm = mustNewVM(t, "(reverse (list 1 2 3))")
	got := evalAll(t, vm)
	assert.True(t, Equal(list(Number(3), Number(2), Number(1)), got))

	vm = mustNewVM(t, "(map (lambda (x) (* x x)) (list 1 2 3))")
	got = evalAll(t, vm)
	assert.True(t, Equal(list(Number(1), Number(4), Number(9)), got))

	vm = mustNewVM(t, "(foldr + (list 1 2 3))")
	assert.Equal(t, Number(6), evalAll(t, vm))
}

func TestPreludeListAndAccessors(t *testing.T) {
	vm := mustNewVM(t, "(list 1 2 3)")
	got := evalAll(t, vm)
	assert.True(t, Equal(list(Number(1), Number(2), Number(3)), got))

	vm = mustNewVM(t, "(first (list 1 2 3))")
	assert.Equal(t, Number(1), evalAll(t, vm))

	vm = mustNewVM(t, "(second (list 1 2 3))")
	assert.Equal(t, Number(2), evalAll(t, vm))

	vm = mustNewVM(t, "(rest (list 1 2 3))")
	got = evalAll(t, vm)
	assert.True(t, Equal(list(Number(2), Number(3)), got))
}

func TestPreludeListRefAndTail(t *testing.T) {
	vm := mustNewVM(t, "(list-ref (list 10 20 30) 1)")
	assert.Equal(t, Number(20), evalAll(t, vm))

	vm = mustNewVM(t, "(list-tail (list 10 20 30) 1)")
	got := evalAll(t, vm)
	assert.True(t, Equal(list(Number(20), Number(30)), got))
}

func TestPreludeAppend(t *testing.T) {
	vm := mustNewVM(t, "(append (list 1 2) (list 3 4))")
	got := evalAll(t, vm)
	assert.True(t, Equal(list(Number(1), Number(2), Number(3), Number(4)), got))
}

func TestPreludeMember(t *testing.T) {
	vm := mustNewVM(t, "(member 2 (list 1 2 3))")
	assert.Equal(t, Boolean(true), evalAll(t, vm))

	vm = mustNewVM(t, "(member 9 (list 1 2 3))")
	assert.Equal(t, Boolean(false), evalAll(t, vm))
}

func TestPreludeMaxMinAbs(t *testing.T) {
	vm := mustNewVM(t, "(max 3 1 4 1 5)")
	assert.Equal(t, Number(5), evalAll(t, vm))

	vm = mustNewVM(t, "(min 3 1 4 1 5)")
	assert.Equal(t, Number(1), evalAll(t, vm))

	vm = mustNewVM(t, "(abs -3)")
	assert.Equal(t, Number(3), evalAll(t, vm))

	vm = mustNewVM(t, "(abs 3)")
	assert.Equal(t, Number(3), evalAll(t, vm))
}

func TestPreludeTake(t *testing.T) {
	vm := mustNewVM(t, "(take (list 1 2 3 4) 2)")
	got := evalAll(t, vm)
	assert.True(t, Equal(list(Number(1), Number(2)), got))
}

// filter's else-branch is a reproduced bug (calls the undefined symbol prox
// instead of proc): filtering a list that needs to skip an element throws a
// ScopeError, rather than silently fixing the original's typo — spec.md §9.
func TestPreludeFilterTypoSurfacesWhenElementIsSkipped(t *testing.T) {
	vm := mustNewVM(t, "(filter (lambda (x) (> x 1)) (list 1 2 3))")
	_, err := vm.EvalAll()
	require.NotNil(t, err)
	assert.Equal(t, ScopeError, err.Kind)
}

// When every element passes, filter's buggy else-branch is never reached.
func TestPreludeFilterAllPassingElementsWorks(t *testing.T) {
	vm := mustNewVM(t, "(filter (lambda (x) #t) (list 1 2 3))")
	got := evalAll(t, vm)
	assert.True(t, Equal(list(Number(1), Number(2), Number(3)), got))
}

// make-list's recursive call drops its value argument in the original
// source; reproduced verbatim, so (make-list n v) for n > 0 always fails
// its own arity check instead of building a list — spec.md §9/SPEC_FULL §3.
func TestPreludeMakeListBugSurfaces(t *testing.T) {
	vm := mustNewVM(t, "(make-list 2 0)")
	_, err := vm.EvalAll()
	require.NotNil(t, err)
	// make-list is a user-defined procedure, not a macro: its own
	// undersupplied-argument check in the recursive call raises the
	// generic ExecutionError a user-callable arity mismatch always does.
	assert.Equal(t, ExecutionError, err.Kind)
}

func TestPreludeMakeListZeroIsEmpty(t *testing.T) {
	vm := mustNewVM(t, "(make-list 0 9)")
	got := evalAll(t, vm)
	assert.True(t, IsNil(got))
}

func TestPreludeEmptyAndPairAliases(t *testing.T) {
	vm := mustNewVM(t, "(empty? (list))")
	assert.Equal(t, Boolean(true), evalAll(t, vm))

	vm = mustNewVM(t, "(pair? (cons 1 2))")
	assert.Equal(t, Boolean(true), evalAll(t, vm))
}
