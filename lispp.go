// Package lispp implements a small Scheme/Lisp dialect: a tokenizer and
// recursive-descent reader that turn source bytes into a tree of Values,
// and a tree-walking evaluator over a lexically scoped environment
// pre-populated with built-in procedures, special forms, and a prelude
// written in the language itself.
//
// Construct a VM with New or NewFromString and drive it with Parse,
// EvalOne, or EvalAll; the cmd/lispp binary wires a VM to stdin or a
// source file.
package lispp
