package lispp

// Env is a node in the environment chain: a map from identifier text to
// Value, plus an optional parent. The root frame is the global
// environment; children are created by the evaluator (for lambda/let
// applications) and by Callable invocation.
type Env struct {
	vars   map[string]Value
	parent *Env
}

// NewEnv creates a new environment frame, optionally chained to parent.
// A nil parent marks the global frame.
func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]Value), parent: parent}
}

// Has reports whether name is bound in this frame or any ancestor.
func (e *Env) Has(name string) bool {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.vars[name]; ok {
			return true
		}
	}
	return false
}

// Lookup searches the chain for name, returning a ScopeError if it is
// unbound anywhere in the chain.
func (e *Env) Lookup(name string) (Value, *LispError) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.vars[name]; ok {
			return v, nil
		}
	}
	return nil, newScopeError("unbound variable: %s", name)
}

// Define binds name to value in this frame only, shadowing any binding
// of the same name in an ancestor frame. Parents are never walked.
func (e *Env) Define(name string, value Value) {
	e.vars[name] = value
}

// Assign walks up to the nearest frame that already defines name and
// mutates it in place, returning a ScopeError if no frame defines it.
func (e *Env) Assign(name string, value Value) *LispError {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.vars[name]; ok {
			frame.vars[name] = value
			return nil
		}
	}
	return newScopeError("cannot set! unbound variable: %s", name)
}
