package lispp

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// REPL drives an interactive session: reading balanced-paren forms a line
// at a time via readline (so history and multi-line continuation work the
// way a shell would), evaluating each against a single long-lived VM, and
// reporting errors in one of two transcript styles.
type REPL struct {
	vm      *VM
	rl      *readline.Instance
	Contest bool
}

// NewREPL builds a REPL over vm using rl for line editing.
func NewREPL(vm *VM, rl *readline.Instance) *REPL {
	return &REPL{vm: vm, rl: rl}
}

// Run drives the session until the user closes stdin (EOF) or a contest-mode
// syntax error terminates it early, per the original's two RunAsRepl bodies.
func (r *REPL) Run() {
	if !r.Contest {
		r.rl.SetPrompt("> ")
	} else {
		r.rl.SetPrompt("")
	}

	for {
		line, ok := r.readForm()
		if !ok {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		r.vm.Feed(line)
		result, err := r.vm.EvalAll()

		if err != nil {
			if r.reportError(err) {
				return
			}
		} else if r.Contest {
			fmt.Println(Print(result))
		} else if !IsNil(result) {
			fmt.Println(Print(result))
		}

		if !r.Contest {
			r.rl.SetPrompt("> ")
		}
	}
}

// readForm reads lines from rl until parentheses balance (or EOF), the way
// the original's stdin-backed IstreamTokenizer lets a single vm.eval() call
// block across several physical lines.
func (r *REPL) readForm() (string, bool) {
	var sb strings.Builder
	depth := 0
	for {
		line, err := r.rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return "", false
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
		depth += parenBalance(line)
		if depth <= 0 {
			return sb.String(), true
		}
		if !r.Contest {
			r.rl.SetPrompt("... ")
		}
	}
}

func parenBalance(line string) int {
	balance := 0
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inString = !inString
		case '(':
			if !inString {
				balance++
			}
		case ')':
			if !inString {
				balance--
			}
		}
	}
	return balance
}

// reportError prints err in the REPL's transcript style and reports
// whether the session should terminate.
func (r *REPL) reportError(err *LispError) bool {
	if r.Contest {
		switch err.Kind {
		case TokenizerError, ParserError, MacroArgumentsError:
			fmt.Println("syntax error")
			return true
		case ScopeError:
			fmt.Println("name error")
			return false
		default:
			fmt.Println("runtime error")
			return false
		}
	}

	colorError := color.New(color.FgRed)
	colorError.Printf("%s: %s\n", err.Kind, err.Message)
	return false
}

// RunFromFile batch-evaluates the contents of r (normally an open file),
// annotating TokenizerError/ParserError with the offending line, matching
// the original's asymmetric RunFromFile (ExecutionError/ScopeError never
// get a line number, since only the tokenizer tracks position).
func RunFromFile(r io.Reader) {
	vm, err := New(r)
	if err != nil {
		fmt.Println(formatFileError(vm, err))
		return
	}
	if _, err := vm.EvalAll(); err != nil {
		fmt.Println(formatFileError(vm, err))
	}
}

func formatFileError(vm *VM, err *LispError) string {
	switch err.Kind {
	case TokenizerError, ParserError:
		line := 0
		if vm != nil {
			line = vm.CurrentLine()
		}
		return fmt.Sprintf("%s at line %d: %s", err.Kind, line, err.Message)
	default:
		return fmt.Sprintf("%s: %s", err.Kind, err.Message)
	}
}
