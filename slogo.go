/*
Package slogo is an interpreter for a small Logo dialect.

Programs are whitespace-separated streams of prefix commands, numeric
literals, variable references and bracketed lists. Commands are resolved
through a per-language alias table, saturated by an arity-directed stack
parser and executed against one or more turtles.

This root package holds the turtle model, the turtle roster, the error
kinds reported by the interpreter and a few application-global handles.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slogo

import (
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slogo'.
func tracer() tracing.Trace {
	return tracing.Select("slogo")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Exit exits the application.
func Exit(errcode int) {
	tracer().Infof("exit with code %d", errcode)
	os.Exit(errcode)
}

// ConfigString returns a configuration value, or dflt if either no
// configuration has been loaded or the key is unset.
func ConfigString(key, dflt string) string {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	if s := Configuration.String(key); s != "" {
		return s
	}
	return dflt
}

// ConfigInt returns an integer configuration value, or dflt.
func ConfigInt(key string, dflt int) int {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	return Configuration.Int(key)
}
