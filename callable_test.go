package lispp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeUserBindsFormalsPositionally(t *testing.T) {
	global := NewEnv(nil)
	body := []Value{cons(Symbol("+"), list(Symbol("x"), Symbol("y")))}
	registerBuiltins(global)
	fn := newUserCallable("add", KindFunction, []string{"x", "y"}, "", body, global)

	result, err := invokeUser(fn, []Value{Number(1), Number(2)}, NilValue)
	require.Nil(t, err)
	assert.Equal(t, Number(3), result)
}

func TestInvokeUserUndersuppliedArgumentsIsError(t *testing.T) {
	global := NewEnv(nil)
	fn := newUserCallable("f", KindFunction, []string{"x", "y"}, "", nil, global)
	_, err := invokeUser(fn, []Value{Number(1)}, NilValue)
	require.NotNil(t, err)
	assert.Equal(t, ExecutionError, err.Kind)
}

func TestInvokeUserSurplusArgumentsWithoutRestIsError(t *testing.T) {
	global := NewEnv(nil)
	fn := newUserCallable("f", KindFunction, []string{"x"}, "", nil, global)
	_, err := invokeUser(fn, []Value{Number(1), Number(2)}, NilValue)
	require.NotNil(t, err)
	assert.Equal(t, ExecutionError, err.Kind)
}

func TestInvokeUserBindsRestParameter(t *testing.T) {
	global := NewEnv(nil)
	registerBuiltins(global)
	body := []Value{Symbol("rest")}
	fn := newUserCallable("f", KindFunction, []string{"x"}, "rest", body, global)

	result, err := invokeUser(fn, []Value{Number(1), Number(2), Number(3)}, NilValue)
	require.Nil(t, err)
	want := list(Number(2), Number(3))
	assert.True(t, Equal(want, result))
}

func TestInvokeUserRestIsNilWhenNoSurplus(t *testing.T) {
	global := NewEnv(nil)
	body := []Value{Symbol("rest")}
	fn := newUserCallable("f", KindFunction, []string{"x"}, "rest", body, global)

	result, err := invokeUser(fn, []Value{Number(1)}, NilValue)
	require.Nil(t, err)
	assert.True(t, IsNil(result))
}

func TestInvokeUserBodyEvaluatesSequentiallyReturningLast(t *testing.T) {
	global := NewEnv(nil)
	registerBuiltins(global)
	body := []Value{
		cons(Symbol("define"), list(Symbol("ignored"), Number(1))),
		Number(99),
	}
	fn := newUserCallable("f", KindFunction, nil, "", body, global)

	result, err := invokeUser(fn, nil, NilValue)
	require.Nil(t, err)
	assert.Equal(t, Number(99), result)
}

func TestCallableStringDistinguishesFunctionAndMacro(t *testing.T) {
	fn := &Callable{Kind: KindFunction}
	macro := &Callable{Kind: KindMacro}
	assert.Equal(t, "<procedure>", fn.String())
	assert.Equal(t, "<macro>", macro.String())
}
