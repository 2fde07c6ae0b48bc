// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// trace traces with key 'slogo.cli'.
func trace() tracing.Trace {
	return tracing.Select("slogo.cli")
}

// Formatter writes an item to a terminal. It returns false if it does not
// know how to format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats basic types, hierarchical objects and tables.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	switch t := item.(type) {
	case string:
		w.Write([]byte("▶ "))
		if _, err := w.Write([]byte(t)); err != nil {
			return false, err
		}
		w.Write([]byte{'\n'})
		return true, nil
	case float64:
		_, err := fmt.Fprintf(w, "▶ %g\n", t)
		return err == nil, err
	case error:
		_, err := fmt.Fprintf(w, "%s %s\n", prtxt.FgRed.Sprint("✗"), t.Error())
		return err == nil, err
	case map[string]interface{}:
		yml, err := yaml.Marshal(t)
		if err != nil {
			return false, nil
		}
		w.Write([]byte("▶ Hierarchical object:\n"))
		w.Write(yml)
		return true, nil
	case table.Writer:
		if t == nil {
			w.Write([]byte("▶ (empty table)\n"))
		} else {
			w.Write([]byte(t.Render()))
			w.Write([]byte{'\n'})
		}
		return true, nil
	default:
		w.Write([]byte("▶ "))
		w.Write([]byte(fmt.Sprintf("object of type %T\n", t)))
		return true, nil
	}
}
