package lispp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDefineLookup(t *testing.T) {
	env := NewEnv(nil)
	env.Define("x", Number(1))

	v, err := env.Lookup("x")
	require.Nil(t, err)
	assert.Equal(t, Number(1), v)
}

func TestEnvLookupUnboundIsScopeError(t *testing.T) {
	env := NewEnv(nil)
	_, err := env.Lookup("y")
	require.NotNil(t, err)
	assert.Equal(t, ScopeError, err.Kind)
}

func TestEnvLookupWalksParentChain(t *testing.T) {
	parent := NewEnv(nil)
	parent.Define("x", Number(1))
	child := NewEnv(parent)

	v, err := child.Lookup("x")
	require.Nil(t, err)
	assert.Equal(t, Number(1), v)
}

func TestEnvDefineShadowsParentWithoutMutatingIt(t *testing.T) {
	parent := NewEnv(nil)
	parent.Define("x", Number(1))
	child := NewEnv(parent)
	child.Define("x", Number(2))

	childVal, _ := child.Lookup("x")
	parentVal, _ := parent.Lookup("x")
	assert.Equal(t, Number(2), childVal)
	assert.Equal(t, Number(1), parentVal)
}

func TestEnvAssignWalksToDefiningFrame(t *testing.T) {
	parent := NewEnv(nil)
	parent.Define("x", Number(1))
	child := NewEnv(parent)

	err := child.Assign("x", Number(2))
	require.Nil(t, err)

	// Mutated in the defining (parent) frame, not a new local one.
	v, _ := parent.Lookup("x")
	assert.Equal(t, Number(2), v)
	assert.False(t, child.vars["x"] == Number(2))
}

func TestEnvAssignUnboundIsScopeError(t *testing.T) {
	env := NewEnv(nil)
	err := env.Assign("y", Number(1))
	require.NotNil(t, err)
	assert.Equal(t, ScopeError, err.Kind)
}

func TestEnvHas(t *testing.T) {
	parent := NewEnv(nil)
	parent.Define("x", Number(1))
	child := NewEnv(parent)

	assert.True(t, child.Has("x"))
	assert.False(t, child.Has("y"))
}
