// Command lispp is the interpreter's process entry point: an interactive
// REPL on stdin when given no arguments, or a batch evaluation of a single
// source file when given one.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/trukanduk/lispp"
)

func main() {
	contest := flag.Bool("contest", false, "use the terse contest-mode transcript (syntax/runtime/name error, no prompts)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		runREPL(*contest)
		return
	}

	f, err := os.Open(args[0])
	if err != nil {
		log.Fatalf("lispp: %v", err)
	}
	defer f.Close()

	lispp.RunFromFile(f)
}

func runREPL(contest bool) {
	rl, err := readline.New("> ")
	if err != nil {
		log.Fatalf("lispp: %v", err)
	}
	defer rl.Close()

	vm, lerr := lispp.New(strings.NewReader(""))
	if lerr != nil {
		log.Fatalf("lispp: %v", lerr)
	}

	repl := lispp.NewREPL(vm, rl)
	repl.Contest = contest
	repl.Run()
}
