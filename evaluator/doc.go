/*
Package evaluator parses and runs SLogo programs.

Programs are parsed by an arity-directed shift/reduce parser. There is no
grammar beyond the arity table: every command announces how many numeric
and list arguments it needs, and the parser collects arguments until a
command is saturated, then reduces it to a command node. Nested prefix
expressions like

	FORWARD SUM 10 PRODUCT 2 3

are resolved without recursion, using a handful of parallel stacks. List
literals get a fresh set of stacks, saved and restored on a context stack.

Variables are bound late. A variable bound to a macro is replaced by the
macro's tokens at the point of use, so macros may refer to names defined
after them.

The Interpreter type bundles a parser, an execution engine and the state of
a session: turtles, constants and macros, and a history of submissions.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'slogo.evaluator'
func tracer() tracing.Trace {
	return tracing.Select("slogo.evaluator")
}
