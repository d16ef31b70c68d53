package lispp

// Value is any object the evaluator can hold: a Boolean, Number, String,
// Symbol, *Pair, Nil, *Callable, or one of the reader's Quote/Quasiquote/
// Unquote wrappers. Go's interface dispatch stands in for the original's
// tagged Object hierarchy (as_number/as_cons/... fast casters).
type Value interface {
	isValue()
}

// Boolean is #t / #f. Only Boolean(false) is falsy; every other Value,
// including Nil and Number(0), is truthy.
type Boolean bool

// Number is the language's sole numeric type: an IEEE-754 double.
type Number float64

// String is immutable character data.
type String string

// Symbol evaluates by looking itself up in the current environment.
type Symbol string

// Nil is the empty list, distinct from Boolean false.
type Nil struct{}

// NilValue is the shared empty-list sentinel.
var NilValue = Nil{}

// Pair is the cons cell. A "list" is a chain of Pairs whose final Cdr is
// Nil; a "dotted pair" is one whose final Cdr is any non-Pair, non-Nil
// Value.
type Pair struct {
	Car Value
	Cdr Value
}

// Quote wraps the syntactic prefix ' — evaluates to Inner, unevaluated.
type Quote struct{ Inner Value }

// Quasiquote wraps the syntactic prefix ` — see eval.go for its walk.
type Quasiquote struct{ Inner Value }

// Unquote wraps the syntactic prefix , — meaningful inside a Quasiquote
// walk, but eval(Unquote(x)) = eval(x) is permitted anywhere.
type Unquote struct{ Inner Value }

func (Boolean) isValue()    {}
func (Number) isValue()     {}
func (String) isValue()     {}
func (Symbol) isValue()     {}
func (Nil) isValue()        {}
func (*Pair) isValue()      {}
func (*Callable) isValue()  {}
func (Quote) isValue()      {}
func (Quasiquote) isValue() {}
func (Unquote) isValue()    {}

// IsTruthy reports whether v is anything other than Boolean(false).
func IsTruthy(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}

// IsNil reports whether v is the empty list.
func IsNil(v Value) bool {
	_, ok := v.(Nil)
	return ok
}

// IsPair reports whether v is a cons cell.
func IsPair(v Value) bool {
	_, ok := v.(*Pair)
	return ok
}

// IsList reports whether v is Nil, or a Pair whose cdr chain terminates
// at Nil.
func IsList(v Value) bool {
	for {
		switch t := v.(type) {
		case Nil:
			return true
		case *Pair:
			v = t.Cdr
		default:
			return false
		}
	}
}

// cons builds a new pair, the one primitive list constructor.
func cons(car, cdr Value) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// list builds a proper list from the given values.
func list(vs ...Value) Value {
	var result Value = NilValue
	for i := len(vs) - 1; i >= 0; i-- {
		result = cons(vs[i], result)
	}
	return result
}

// listToSlice unpacks a possibly-dotted spine into its elements and its
// final non-pair tail (Nil for a proper list).
func listToSlice(v Value) (elems []Value, tail Value) {
	for {
		p, ok := v.(*Pair)
		if !ok {
			return elems, v
		}
		elems = append(elems, p.Car)
		v = p.Cdr
	}
}

// Equal implements spec.md's equality rules: Symbols by textual identity,
// Strings by content, Pairs structurally (recursive car/cdr), Quote/
// Quasiquote/Unquote wrappers by their inner values, Callables by identity,
// everything else by Go equality of the underlying scalar.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && Equal(av.Car, bv.Car) && Equal(av.Cdr, bv.Cdr)
	case *Callable:
		bv, ok := b.(*Callable)
		return ok && av == bv
	case Quote:
		bv, ok := b.(Quote)
		return ok && Equal(av.Inner, bv.Inner)
	case Quasiquote:
		bv, ok := b.(Quasiquote)
		return ok && Equal(av.Inner, bv.Inner)
	case Unquote:
		bv, ok := b.(Unquote)
		return ok && Equal(av.Inner, bv.Inner)
	default:
		return false
	}
}
