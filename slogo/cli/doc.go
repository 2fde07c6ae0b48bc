package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'slogo.cli'
func tracer() tracing.Trace {
	return tracing.Select("slogo.cli")
}
