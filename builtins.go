package lispp

import (
	"fmt"
	"os"
)

// checkArgsCount requires got == want, else an ExecutionError — used by
// primitive procedures, where a bad argument count is a generic execution
// failure (spec.md §4.4).
func checkArgsCount(name string, got, want int) *LispError {
	if got != want {
		return newExecutionError("%s: expected %d arguments, got %d", name, want, got)
	}
	return nil
}

// checkArgsRange requires min <= got, and got <= max unless max < 0 (no
// upper bound). Used by primitive procedures; see checkMacroArgsRange for
// the macro-form counterpart.
func checkArgsRange(name string, got, min, max int) *LispError {
	if got < min || (max >= 0 && got > max) {
		return newExecutionError("%s: expected between %d and %d arguments, got %d", name, min, max, got)
	}
	return nil
}

// checkMacroArgsCount/checkMacroArgsRange are checkArgsCount/checkArgsRange's
// counterparts for primitive macros (if, let, define, ...): spec.md §4.4
// requires the wrong *shape* of a macro-form's arguments to raise
// MacroArgumentsError, distinguishable from an ordinary ExecutionError, so
// that contest-mode classifies it as a syntax error rather than a runtime
// one.
func checkMacroArgsCount(name string, got, want int) *LispError {
	if got != want {
		return newMacroArgumentsError("%s: expected %d arguments, got %d", name, want, got)
	}
	return nil
}

func checkMacroArgsRange(name string, got, min, max int) *LispError {
	if got < min || (max >= 0 && got > max) {
		return newMacroArgumentsError("%s: expected between %d and %d arguments, got %d", name, min, max, got)
	}
	return nil
}

func wantPair(name string, v Value) (*Pair, *LispError) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, newExecutionError("%s: expected a pair, got %s", name, Print(v))
	}
	return p, nil
}

// wantMacroPair/wantMacroSymbol are wantPair's counterpart for
// parsing a macro-form's own argument shape (a cond/let branch, a
// lambda/define header) rather than a runtime value a macro's body
// evaluates — see checkMacroArgsCount's doc comment.
func wantMacroPair(name string, v Value) (*Pair, *LispError) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, newMacroArgumentsError("%s: expected a pair, got %s", name, Print(v))
	}
	return p, nil
}

func wantMacroSymbol(name string, v Value) (Symbol, *LispError) {
	s, ok := v.(Symbol)
	if !ok {
		return "", newMacroArgumentsError("%s: expected a symbol, got %s", name, Print(v))
	}
	return s, nil
}

func wantNumber(name string, index int, v Value) (Number, *LispError) {
	n, ok := v.(Number)
	if !ok {
		return 0, newExecutionError("%s: expected a number for arg %d, got %s", name, index, Print(v))
	}
	return n, nil
}

func wantString(name string, v Value) (String, *LispError) {
	s, ok := v.(String)
	if !ok {
		return "", newExecutionError("%s: expected a string, got %s", name, Print(v))
	}
	return s, nil
}

// parseCallableDefinition reads a lambda/define/define-macro formal-argument
// spine: every element up to the tail must be a Symbol, and a non-nil tail
// (the rest parameter) must itself be a Symbol.
func parseCallableDefinition(macroName string, spine Value) (formals []string, rest string, err *LispError) {
	elems, tail := listToSlice(spine)
	formals = make([]string, 0, len(elems))
	for _, e := range elems {
		sym, ok := e.(Symbol)
		if !ok {
			return nil, "", newMacroArgumentsError("%s: expected symbol in argument list, got %s", macroName, Print(e))
		}
		formals = append(formals, string(sym))
	}
	if !IsNil(tail) {
		sym, ok := tail.(Symbol)
		if !ok {
			return nil, "", newMacroArgumentsError("%s: expected symbol for rest argument, got %s", macroName, Print(tail))
		}
		rest = string(sym)
	}
	return formals, rest, nil
}

var lambdaCounter int

func nextLambdaName() string {
	name := fmt.Sprintf("<lambda#%d>", lambdaCounter)
	lambdaCounter++
	return name
}

func defineCallable(macroName string, env *Env, args []Value, kind CallableKind) (*Callable, *LispError) {
	header, err := wantMacroPair(macroName, args[0])
	if err != nil {
		return nil, err
	}
	name, err := wantMacroSymbol(macroName, header.Car)
	if err != nil {
		return nil, err
	}
	formals, rest, err := parseCallableDefinition(macroName, header.Cdr)
	if err != nil {
		return nil, err
	}
	callable := newUserCallable(string(name), kind, formals, rest, args[1:], env)
	env.Define(string(name), callable)
	return callable, nil
}

// registerBuiltins installs every special form and primitive procedure into
// env, mirroring init_scope_with_builtins's registration order.
func registerBuiltins(env *Env) {
	def := func(name string, kind CallableKind, freshScope bool, fn primitiveFunc) {
		env.Define(name, newPrimitive(name, kind, freshScope, fn))
	}

	// Built-in macros.
	def("cond", KindMacro, false, condMacro)
	def("if", KindMacro, false, ifMacro)
	def("quote", KindMacro, false, quoteMacro)
	def("eval", KindMacro, false, evalBuiltinMacro)
	def("let", KindMacro, true, letMacro)
	def("lambda", KindMacro, false, lambdaMacro)
	def("define", KindMacro, false, defineMacro)
	def("define-macro", KindMacro, false, defineMacroMacro)
	def("set!", KindMacro, false, setMacro)
	def("set-car!", KindMacro, false, setCarMacro)
	def("set-cdr!", KindMacro, false, setCdrMacro)

	// Boolean macros.
	def("not", KindMacro, false, notMacro)
	def("or", KindMacro, false, orMacro)
	def("and", KindMacro, false, andMacro)

	// List operators.
	def("cons", KindFunction, false, consFunc)
	def("car", KindFunction, false, carFunc)
	def("cdr", KindFunction, false, cdrFunc)

	// Predicates.
	def("null?", KindFunction, false, nullpFunc)
	def("number?", KindFunction, false, numberpFunc)
	def("boolean?", KindFunction, false, booleanpFunc)
	def("cons?", KindFunction, false, conspFunc)
	def("list?", KindFunction, false, listpFunc)
	def("symbol?", KindFunction, false, symbolpFunc)
	def("string?", KindFunction, false, stringpFunc)

	// Arithmetic.
	def("+", KindFunction, false, plusFunc)
	def("-", KindFunction, false, minusFunc)
	def("*", KindFunction, false, mulFunc)
	def("/", KindFunction, false, divFunc)
	def("<", KindFunction, false, compareNumbers("<", func(a, b float64) bool { return a < b }))
	def("<=", KindFunction, false, compareNumbers("<=", func(a, b float64) bool { return a <= b }))
	def(">", KindFunction, false, compareNumbers(">", func(a, b float64) bool { return a > b }))
	def(">=", KindFunction, false, compareNumbers(">=", func(a, b float64) bool { return a >= b }))
	def("=", KindFunction, false, compareNumbers("=", func(a, b float64) bool { return a == b }))

	// String operations.
	def("string-length", KindFunction, false, stringLengthFunc)
	def("string<?", KindFunction, false, compareStrings("string<?", func(a, b string) bool { return a < b }))
	def("string<=?", KindFunction, false, compareStrings("string<=?", func(a, b string) bool { return a <= b }))
	def("string>?", KindFunction, false, compareStrings("string>?", func(a, b string) bool { return a > b }))
	def("string>=?", KindFunction, false, compareStrings("string>=?", func(a, b string) bool { return a >= b }))
	def("string=?", KindFunction, false, compareStrings("string=?", func(a, b string) bool { return a == b }))

	// Misc.
	def("print", KindFunction, false, printFunc)
	def("exit", KindFunction, false, exitFunc)
	def("throw", KindFunction, false, throwFunc)

	env.Define("null", NilValue)
}

func quoteMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsCount("quote", len(args), 1); err != nil {
		return nil, err
	}
	return args[0], nil
}

func ifMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsRange("if", len(args), 2, 3); err != nil {
		return nil, err
	}
	cond, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if IsTruthy(cond) {
		return Eval(args[1], env)
	}
	if len(args) == 3 {
		return Eval(args[2], env)
	}
	return NilValue, nil
}

func condMacro(env *Env, args []Value) (Value, *LispError) {
	for _, branch := range args {
		p, err := wantMacroPair("cond", branch)
		if err != nil {
			return nil, err
		}
		elems, _ := listToSlice(p)
		if len(elems) != 2 {
			return nil, newMacroArgumentsError("cond: expected exactly 2 values in branch, got %d", len(elems))
		}
		cond, err := Eval(elems[0], env)
		if err != nil {
			return nil, err
		}
		if IsTruthy(cond) {
			return Eval(elems[1], env)
		}
	}
	return NilValue, nil
}

func evalBuiltinMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsCount("eval", len(args), 1); err != nil {
		return nil, err
	}
	once, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	return Eval(once, env)
}

func notMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsCount("not", len(args), 1); err != nil {
		return nil, err
	}
	cond, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	return Boolean(!IsTruthy(cond)), nil
}

func orMacro(env *Env, args []Value) (Value, *LispError) {
	var result Value = Boolean(false)
	for _, arg := range args {
		if IsTruthy(result) {
			break
		}
		var err *LispError
		result, err = Eval(arg, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func andMacro(env *Env, args []Value) (Value, *LispError) {
	var result Value = Boolean(true)
	for _, arg := range args {
		if !IsTruthy(result) {
			break
		}
		var err *LispError
		result, err = Eval(arg, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func letMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsRange("let", len(args), 1, -1); err != nil {
		return nil, err
	}

	bindings, _ := listToSlice(args[0])
	for _, binding := range bindings {
		pair, err := wantMacroPair("let", binding)
		if err != nil {
			return nil, err
		}
		elems, _ := listToSlice(pair)
		if len(elems) != 2 {
			return nil, newMacroArgumentsError("let: expected exactly 2 values for variable item")
		}
		name, err := wantMacroSymbol("let", elems[0])
		if err != nil {
			return nil, err
		}
		// Bindings are evaluated in the outer environment, not sequentially
		// against each other: this is parallel let, not let*.
		value, err := Eval(elems[1], env.parent)
		if err != nil {
			return nil, err
		}
		env.Define(string(name), value)
	}

	var result Value = NilValue
	for _, expr := range args[1:] {
		var err *LispError
		result, err = Eval(expr, env)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func lambdaMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsRange("lambda", len(args), 2, -1); err != nil {
		return nil, err
	}
	formals, rest, err := parseCallableDefinition("lambda", args[0])
	if err != nil {
		return nil, err
	}
	return newUserCallable(nextLambdaName(), KindFunction, formals, rest, args[1:], env), nil
}

func defineMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsRange("define", len(args), 2, -1); err != nil {
		return nil, err
	}
	if name, ok := args[0].(Symbol); ok {
		if err := checkMacroArgsCount("define", len(args), 2); err != nil {
			return nil, err
		}
		value, err := Eval(args[1], env)
		if err != nil {
			return nil, err
		}
		env.Define(string(name), value)
		return value, nil
	}
	return defineCallable("define", env, args, KindFunction)
}

func defineMacroMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsRange("define-macro", len(args), 1, -1); err != nil {
		return nil, err
	}
	if _, err := defineCallable("define-macro", env, args, KindMacro); err != nil {
		return nil, err
	}
	return NilValue, nil
}

func setMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsCount("set!", len(args), 2); err != nil {
		return nil, err
	}
	name, err := wantMacroSymbol("set!", args[0])
	if err != nil {
		return nil, err
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(string(name), value); err != nil {
		return nil, err
	}
	return NilValue, nil
}

func setCarMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsCount("set-car!", len(args), 2); err != nil {
		return nil, err
	}
	name, err := wantMacroSymbol("set-car!", args[0])
	if err != nil {
		return nil, err
	}
	bound, err := env.Lookup(string(name))
	if err != nil {
		return nil, err
	}
	pair, ok := bound.(*Pair)
	if !ok {
		return nil, newExecutionError("variable of set-car! must be a cons")
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	pair.Car = value
	return pair, nil
}

func setCdrMacro(env *Env, args []Value) (Value, *LispError) {
	if err := checkMacroArgsCount("set-cdr!", len(args), 2); err != nil {
		return nil, err
	}
	name, err := wantMacroSymbol("set-cdr!", args[0])
	if err != nil {
		return nil, err
	}
	bound, err := env.Lookup(string(name))
	if err != nil {
		return nil, err
	}
	pair, ok := bound.(*Pair)
	if !ok {
		return nil, newExecutionError("variable of set-cdr! must be a cons")
	}
	value, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	pair.Cdr = value
	return pair, nil
}

func consFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("cons", len(args), 2); err != nil {
		return nil, err
	}
	return cons(args[0], args[1]), nil
}

func carFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("car", len(args), 1); err != nil {
		return nil, err
	}
	pair, err := wantPair("car", args[0])
	if err != nil {
		return nil, err
	}
	return pair.Car, nil
}

func cdrFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("cdr", len(args), 1); err != nil {
		return nil, err
	}
	pair, err := wantPair("cdr", args[0])
	if err != nil {
		return nil, err
	}
	return pair.Cdr, nil
}

func nullpFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("null?", len(args), 1); err != nil {
		return nil, err
	}
	return Boolean(IsNil(args[0])), nil
}

func numberpFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("number?", len(args), 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(Number)
	return Boolean(ok), nil
}

func booleanpFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("boolean?", len(args), 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(Boolean)
	return Boolean(ok), nil
}

func conspFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("cons?", len(args), 1); err != nil {
		return nil, err
	}
	return Boolean(IsPair(args[0])), nil
}

func listpFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("list?", len(args), 1); err != nil {
		return nil, err
	}
	return Boolean(IsList(args[0])), nil
}

func symbolpFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("symbol?", len(args), 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(Symbol)
	return Boolean(ok), nil
}

func stringpFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("string?", len(args), 1); err != nil {
		return nil, err
	}
	_, ok := args[0].(String)
	return Boolean(ok), nil
}

func plusFunc(env *Env, args []Value) (Value, *LispError) {
	var result float64
	for i, arg := range args {
		n, err := wantNumber("+", i, arg)
		if err != nil {
			return nil, err
		}
		result += float64(n)
	}
	return Number(result), nil
}

func minusFunc(env *Env, args []Value) (Value, *LispError) {
	if len(args) == 0 {
		return nil, newExecutionError("-: requires at least one argument")
	}
	first, err := wantNumber("-", 0, args[0])
	if err != nil {
		return nil, err
	}
	result := float64(first)
	if len(args) == 1 {
		return Number(-result), nil
	}
	for i := 1; i < len(args); i++ {
		n, err := wantNumber("-", i, args[i])
		if err != nil {
			return nil, err
		}
		result -= float64(n)
	}
	return Number(result), nil
}

func mulFunc(env *Env, args []Value) (Value, *LispError) {
	result := 1.0
	for i, arg := range args {
		n, err := wantNumber("*", i, arg)
		if err != nil {
			return nil, err
		}
		result *= float64(n)
	}
	return Number(result), nil
}

func divFunc(env *Env, args []Value) (Value, *LispError) {
	if len(args) == 0 {
		return nil, newExecutionError("/: requires at least one argument")
	}
	first, err := wantNumber("/", 0, args[0])
	if err != nil {
		return nil, err
	}
	result := float64(first)
	if len(args) == 1 {
		return Number(1 / result), nil
	}
	for i := 1; i < len(args); i++ {
		n, err := wantNumber("/", i, args[i])
		if err != nil {
			return nil, err
		}
		result /= float64(n)
	}
	return Number(result), nil
}

// compareNumbers builds a chained pairwise comparison primitive: zero
// arguments is vacuously true, one argument is an ExecutionError, otherwise
// every adjacent pair must satisfy cmp.
func compareNumbers(name string, cmp func(a, b float64) bool) primitiveFunc {
	return func(env *Env, args []Value) (Value, *LispError) {
		if len(args) == 0 {
			return Boolean(true), nil
		}
		if err := checkArgsRange(name, len(args), 2, -1); err != nil {
			return nil, err
		}
		last, err := wantNumber(name, 0, args[0])
		if err != nil {
			return nil, err
		}
		result := true
		for i := 1; i < len(args) && result; i++ {
			curr, err := wantNumber(name, i, args[i])
			if err != nil {
				return nil, err
			}
			result = result && cmp(float64(last), float64(curr))
			last = curr
		}
		return Boolean(result), nil
	}
}

func compareStrings(name string, cmp func(a, b string) bool) primitiveFunc {
	return func(env *Env, args []Value) (Value, *LispError) {
		if len(args) == 0 {
			return Boolean(true), nil
		}
		if err := checkArgsRange(name, len(args), 2, -1); err != nil {
			return nil, err
		}
		last, err := wantString(name, args[0])
		if err != nil {
			return nil, err
		}
		result := true
		for i := 1; i < len(args) && result; i++ {
			curr, err := wantString(name, args[i])
			if err != nil {
				return nil, err
			}
			result = result && cmp(string(last), string(curr))
			last = curr
		}
		return Boolean(result), nil
	}
}

func stringLengthFunc(env *Env, args []Value) (Value, *LispError) {
	if err := checkArgsCount("string-length", len(args), 1); err != nil {
		return nil, err
	}
	s, err := wantString("string-length", args[0])
	if err != nil {
		return nil, err
	}
	return Number(len(string(s))), nil
}

func printFunc(env *Env, args []Value) (Value, *LispError) {
	for _, arg := range args {
		fmt.Println(Print(arg))
	}
	return NilValue, nil
}

func exitFunc(env *Env, args []Value) (Value, *LispError) {
	code := 0
	if len(args) > 0 {
		if n, ok := args[0].(Number); ok {
			code = int(n)
		}
	}
	os.Exit(code)
	return NilValue, nil
}

func throwFunc(env *Env, args []Value) (Value, *LispError) {
	msg := "Throw from code: "
	for _, arg := range args {
		msg += Print(arg) + " "
	}
	return nil, newExecutionError("%s", msg)
}
