package lispp

import (
	"strconv"
	"strings"
)

// maxPrintDepth bounds the car and cdr recursion in writePairTail. set-car!/
// set-cdr! can build a cyclic pair that a visited-pointer set would also
// flag on an acyclic but structurally-shared list, so a flat depth ceiling
// is used instead, per spec.md §9's "a simple depth limit … is acceptable".
const maxPrintDepth = 10000

// Print renders v the way the REPL and `print` builtin show it, per
// spec.md §6. Numbers use Go's shortest round-trippable decimal form
// rather than the original's fixed six-decimal %f, an explicitly allowed
// deviation.
func Print(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v, 0)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, depth int) {
	switch t := v.(type) {
	case Boolean:
		if t {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case Number:
		sb.WriteString(strconv.FormatFloat(float64(t), 'f', -1, 64))
	case String:
		sb.WriteByte('"')
		sb.WriteString(string(t))
		sb.WriteByte('"')
	case Symbol:
		sb.WriteString(string(t))
	case Nil:
		sb.WriteString("()")
	case *Pair:
		sb.WriteByte('(')
		writePairTail(sb, t, depth)
		sb.WriteByte(')')
	case Quote:
		sb.WriteByte('\'')
		writeValue(sb, t.Inner, depth)
	case Quasiquote:
		sb.WriteByte('`')
		writeValue(sb, t.Inner, depth)
	case Unquote:
		sb.WriteByte(',')
		writeValue(sb, t.Inner, depth)
	case *Callable:
		sb.WriteString(t.String())
	default:
		sb.WriteString("()")
	}
}

// writePairTail prints p's car, then recurses into its cdr: nothing more
// for a Nil tail, a space-separated continuation for a Pair tail, and a
// " . "-joined atom for a genuinely dotted tail. depth counts nesting
// through both car and cdr, and guards against a set-car!/set-cdr!-built
// cycle running print forever.
func writePairTail(sb *strings.Builder, p *Pair, depth int) {
	if depth >= maxPrintDepth {
		sb.WriteString("...")
		return
	}
	writeValue(sb, p.Car, depth+1)
	switch cdr := p.Cdr.(type) {
	case Nil:
	case *Pair:
		sb.WriteByte(' ')
		writePairTail(sb, cdr, depth+1)
	default:
		sb.WriteString(" . ")
		writeValue(sb, cdr, depth+1)
	}
}
