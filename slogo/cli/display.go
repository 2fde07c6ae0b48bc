package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/slogo"
	"github.com/npillmayer/slogo/evaluator"
	"github.com/npillmayer/slogo/slogo/ui/termui"
	"github.com/npillmayer/slogo/variables"
	"github.com/npillmayer/slogo/vm"
)

// Formatter formats interpreter objects for the REPL.
type Formatter struct {
	termui.DefaultFormatter
}

// Format is part of interface termui.Formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("Format called for item %T", item)
	switch t := item.(type) {
	case vm.Notification:
		_, err := fmt.Fprintf(w, "▶ %s at (%.2f,%.2f), heading %.2f°\n", t.Turtle.Name,
			t.Turtle.X, t.Turtle.Y, t.Turtle.Heading)
		return err == nil, err
	case []slogo.TurtleSnapshot:
		item = turtlesAsTable(t, "")
	case []variables.Constant:
		item = constantsAsTable(t)
	case []variables.Macro:
		item = macrosAsTable(t)
	case []evaluator.HistoryEntry:
		item = historyAsTable(t)
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Property tables for various types -------------------------------------

func turtlesAsTable(turtles []slogo.TurtleSnapshot, active string) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Turtles")
	tw.AppendHeader(table.Row{"", "id", "name", "x", "y", "heading", "pen", "visible"})
	for _, t := range turtles {
		mark := ""
		if t.Name == active {
			mark = "▶"
		}
		pen := "up"
		if t.PenDown {
			pen = "down"
		}
		tw.AppendRow(table.Row{mark, t.ID, t.Name, fmt.Sprintf("%.2f", t.X),
			fmt.Sprintf("%.2f", t.Y), fmt.Sprintf("%.2f", t.Heading), pen, t.Visible})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func constantsAsTable(consts []variables.Constant) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Constants")
	tw.AppendHeader(table.Row{"name", "value"})
	for _, c := range consts {
		tw.AppendRow(table.Row{":" + c.Name, c.Literal})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func macrosAsTable(macros []variables.Macro) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Macros")
	tw.AppendHeader(table.Row{"name", "body"})
	for _, m := range macros {
		tw.AppendRow(table.Row{":" + m.Name, m.Source()})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func historyAsTable(history []evaluator.HistoryEntry) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("History")
	tw.AppendHeader(table.Row{"#", "program", "result"})
	for i, h := range history {
		result := strconv.FormatFloat(h.Result, 'g', -1, 64)
		if h.Failed() {
			result = "✗ " + h.Error
		}
		program := strings.Join(strings.Fields(h.Program), " ")
		tw.AppendRow(table.Row{i + 1, program, result})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

// --- Administrative REPL commands ------------------------------------------

func (scmd *slogoCmdIntpr) adminCommands() map[string]termui.AdminCommand {
	intp := scmd.intp
	f := Formatter{}
	return map[string]termui.AdminCommand{
		"roster": {
			Help: "list all turtles",
			Run: func(args []string, w io.Writer) {
				f.Format(turtlesAsTable(intp.Turtles(), intp.TurtleSnapshot().Name), w)
			},
		},
		"vars": {
			Help: "list constants and macros",
			Run: func(args []string, w io.Writer) {
				f.Format(intp.Constants(), w)
				f.Format(intp.Macros(), w)
			},
		},
		"history": {
			Help: "list programs submitted so far",
			Run: func(args []string, w io.Writer) {
				f.Format(intp.History(), w)
			},
		},
		"language": {
			Usage: "[lang]",
			Help:  "display or set the language of commands",
			Run: func(args []string, w io.Writer) {
				if len(args) > 1 {
					if err := intp.SetLanguage(args[1]); err != nil {
						f.Format(err, w)
						return
					}
				}
				f.Format("language is "+intp.Language(), w)
			},
		},
		"turtle": {
			Usage: "<name>",
			Help:  "make a turtle the active one",
			Run: func(args []string, w io.Writer) {
				if len(args) < 2 {
					f.Format("active turtle is "+intp.TurtleSnapshot().Name, w)
					return
				}
				if err := intp.ChooseTurtle(strings.Join(args[1:], " ")); err != nil {
					f.Format(err, w)
					return
				}
				f.Format("active turtle is "+intp.TurtleSnapshot().Name, w)
			},
		},
		"newturtle": {
			Usage: "[name x y heading]",
			Help:  "create a new turtle and make it the active one",
			Run: func(args []string, w io.Writer) {
				snap, err := newTurtle(intp, args[1:])
				if err != nil {
					f.Format(err, w)
					return
				}
				f.Format(fmt.Sprintf("created turtle #%d %q", snap.ID, snap.Name), w)
			},
		},
		"undo": {
			Help: "undo the last change of the active turtle",
			Run: func(args []string, w io.Writer) {
				if !intp.Undo() {
					f.Format("nothing to undo", w)
					return
				}
				snap := intp.TurtleSnapshot()
				f.Format(vm.Notification{Turtle: snap}, w)
			},
		},
	}
}

// newTurtle creates a turtle, either with a generated name or from
// arguments 'name x y heading'.
func newTurtle(intp *evaluator.Interpreter, args []string) (slogo.TurtleSnapshot, error) {
	if len(args) == 0 {
		return intp.NewTurtle(), nil
	}
	if len(args) != 4 {
		return slogo.TurtleSnapshot{}, fmt.Errorf("usage: newturtle [name x y heading]")
	}
	var coords [3]float64
	for i, a := range args[1:] {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return slogo.TurtleSnapshot{}, fmt.Errorf("not a number: %q", a)
		}
		coords[i] = v
	}
	return intp.AddTurtle(args[0], coords[0], coords[1], coords[2])
}
