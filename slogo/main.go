// Command slogo is an interpreter for SLogo, a small dialect of Logo.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package main

import (
	"github.com/npillmayer/slogo/slogo/cli"
)

func main() {
	cli.Execute()
}
