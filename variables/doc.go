/*
Package variables implements the store for user-defined names of SLogo
programs.

Users may bind a name either to a constant or to a macro:

   make :size 50
   make :square repeat 4 [ fd :size rt 90 ]

A constant is a numeric literal. A macro is a sequence of tokens which is
kept unresolved and spliced into the program text whenever the macro is
used. As macros are resolved late, a macro may refer to other macros or
constants which do not yet exist when the macro is defined.

Constants and macros live in disjoint namespaces: a name bound as a
constant cannot become a macro and vice versa. Re-binding a name within its
namespace replaces the previous binding.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package variables

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slogo.variables'.
func tracer() tracing.Trace {
	return tracing.Select("slogo.variables")
}
