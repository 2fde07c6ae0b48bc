/*
Package grammar implements the lexical layer of the SLogo language:
splitting program text into tokens, classifying tokens into symbol
categories, resolving localized command names to canonical ones and
looking up the arity of canonical commands.

Symbol classes, command aliases and arities are data. They are read from
YAML tables embedded into this package; clients may load their own tables
to swap the language.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slogo.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("slogo.grammar")
}
