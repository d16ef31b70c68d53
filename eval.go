package lispp

// Eval evaluates v in env per spec.md §4.3:
//
//	Nil                                                       -> error: "cannot execute empty list"
//	self-evaluating (Boolean, Number, String, *Callable)       -> itself
//	Symbol                                                    -> env.Lookup
//	Quote{x}                                                  -> x, unevaluated
//	Quasiquote{x}                                             -> evalQuasiquote(x)
//	Unquote{x}                                                -> Eval(x)  (outside a backtick this is legal, just unusual)
//	*Pair                                                     -> evaluate the head, then Apply it to the tail spine
func Eval(v Value, env *Env) (Value, *LispError) {
	switch t := v.(type) {
	case Nil:
		return nil, newExecutionError("cannot execute empty list")
	case Boolean, Number, String, *Callable:
		return v, nil
	case Symbol:
		return env.Lookup(string(t))
	case Quote:
		return t.Inner, nil
	case Quasiquote:
		return evalQuasiquote(t.Inner, env)
	case Unquote:
		return Eval(t.Inner, env)
	case *Pair:
		head, err := Eval(t.Car, env)
		if err != nil {
			return nil, err
		}
		callable, ok := head.(*Callable)
		if !ok {
			return nil, newExecutionError("%s is not callable", Print(head))
		}
		return Apply(callable, env, t.Cdr)
	default:
		return nil, newExecutionError("cannot evaluate %T", v)
	}
}

// Apply runs callable against the argument spine argsList (itself unevaluated
// as read), per spec.md §4.3/§4.4:
//
//  1. Evaluate each element of the spine if callable is a Function, leaving
//     a Macro's spine untouched; any dotted tail is carried along as-is,
//     never evaluated (matching the original's comma-aware quasiquote walk,
//     not its argument-mapping, which this interpreter does not replicate
//     since call sites are never themselves backtick-quoted).
//  2. Unpack the (possibly evaluated) spine into a flat sequence plus tail.
//  3. Primitive callables receive (env, sequence) directly; User callables
//     bind formals positionally in a fresh child of their captured
//     environment, with any surplus sequence elements plus a non-nil tail
//     packed onto the rest formal.
//  4. If callable is a User-defined Macro, evaluate the result once more in
//     the caller's environment before returning it.
func Apply(callable *Callable, callerEnv *Env, argsList Value) (Value, *LispError) {
	var prepared Value
	if callable.Kind == KindFunction {
		evaluated, err := evalSpine(argsList, callerEnv)
		if err != nil {
			return nil, err
		}
		prepared = evaluated
	} else {
		prepared = argsList
	}

	values, tail := listToSlice(prepared)

	if callable.isPrimitive() {
		localEnv := callerEnv
		if callable.FreshScope {
			localEnv = NewEnv(callerEnv)
		}
		return callable.Fn(localEnv, values)
	}

	result, err := invokeUser(callable, values, tail)
	if err != nil {
		return nil, err
	}
	if callable.Kind == KindMacro {
		return Eval(result, callerEnv)
	}
	return result, nil
}

// evalSpine evaluates the car of every Pair in v's spine under env,
// preserving the chain shape and leaving any non-Pair tail untouched.
func evalSpine(v Value, env *Env) (Value, *LispError) {
	p, ok := v.(*Pair)
	if !ok {
		return v, nil
	}
	car, err := Eval(p.Car, env)
	if err != nil {
		return nil, err
	}
	cdr, err := evalSpine(p.Cdr, env)
	if err != nil {
		return nil, err
	}
	return cons(car, cdr), nil
}

// evalQuasiquote implements the backtick walk of spec.md §4.5: a one-level
// car-wise map over the spine where an Unquote element evaluates in env and
// everything else, including a non-pair tail or a bare non-pair value under
// the backtick, passes through unchanged unless it is itself an Unquote.
func evalQuasiquote(v Value, env *Env) (Value, *LispError) {
	p, ok := v.(*Pair)
	if !ok {
		return quasiquoteElement(v, env)
	}
	car, err := quasiquoteElement(p.Car, env)
	if err != nil {
		return nil, err
	}
	cdr, err := evalQuasiquote(p.Cdr, env)
	if err != nil {
		return nil, err
	}
	return cons(car, cdr), nil
}

func quasiquoteElement(v Value, env *Env) (Value, *LispError) {
	if u, ok := v.(Unquote); ok {
		return Eval(u.Inner, env)
	}
	return v, nil
}
