package lispp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTruthy(t *testing.T) {
	// Only Boolean(false) is falsy; everything else, including Nil and
	// Number(0), is truthy per spec.md §3/§8.
	assert.False(t, IsTruthy(Boolean(false)))
	assert.True(t, IsTruthy(Boolean(true)))
	assert.True(t, IsTruthy(NilValue))
	assert.True(t, IsTruthy(Number(0)))
	assert.True(t, IsTruthy(String("")))
	assert.True(t, IsTruthy(Symbol("x")))
}

func TestIsNilIsPairIsList(t *testing.T) {
	assert.True(t, IsNil(NilValue))
	assert.False(t, IsNil(Number(0)))

	p := cons(Number(1), Number(2))
	assert.True(t, IsPair(p))
	assert.False(t, IsPair(NilValue))

	assert.True(t, IsList(NilValue))
	assert.False(t, IsList(p)) // dotted pair, not a list
	assert.True(t, IsList(list(Number(1), Number(2), Number(3))))
}

func TestConsCarCdr(t *testing.T) {
	// (car (cons a b)) = a, (cdr (cons a b)) = b for all a, b.
	a, b := Number(1), String("two")
	p := cons(a, b)
	assert.Equal(t, a, p.Car)
	assert.Equal(t, b, p.Cdr)
}

func TestListToSlice(t *testing.T) {
	proper := list(Number(1), Number(2), Number(3))
	elems, tail := listToSlice(proper)
	require.Len(t, elems, 3)
	assert.Equal(t, Number(2), elems[1])
	assert.True(t, IsNil(tail))

	dotted := cons(Number(1), cons(Number(2), Number(3)))
	elems, tail = listToSlice(dotted)
	require.Len(t, elems, 2)
	assert.Equal(t, Number(3), tail)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(NilValue, NilValue))
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.True(t, Equal(String("a"), String("a")))
	assert.True(t, Equal(Symbol("x"), Symbol("x")))
	assert.False(t, Equal(Symbol("x"), String("x")))

	lhs := list(Number(1), list(Number(2), Number(3)))
	rhs := list(Number(1), list(Number(2), Number(3)))
	assert.True(t, Equal(lhs, rhs))

	rhs2 := list(Number(1), list(Number(2), Number(4)))
	assert.False(t, Equal(lhs, rhs2))
}
