/*
Package vm executes command sequences built by the parser.

The engine runs commands strictly left to right. List arguments of control
commands are run as ordinary sequences, depth first. After every command,
nested ones included, the engine sends exactly one notification to a
Renderer. It never waits for the renderer; slow renderers should be wrapped
in an AsyncSink.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vm

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'slogo.vm'
func tracer() tracing.Trace {
	return tracing.Select("slogo.vm")
}
