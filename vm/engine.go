package vm

import (
	"math/rand"
	"time"

	"github.com/npillmayer/slogo"
	"github.com/npillmayer/slogo/corelang"
)

// Notification tells a renderer about a single executed command.
type Notification struct {
	Category corelang.Category    // what kind of change happened
	Command  string               // canonical name of the command
	Turtle   slogo.TurtleSnapshot // active turtle after the command
	Value    float64              // result of the command
}

// Renderer is a sink for notifications. Renderers must not block the
// engine and never report anything back.
type Renderer interface {
	ExpectCommands(n int) // hint: number of commands to come
	Notify(Notification)
}

// Engine executes command sequences against a roster of turtles.
// Engine implements corelang.Machine.
type Engine struct {
	roster   *slogo.Roster
	rnd      *rand.Rand
	renderer Renderer
	executed int // number of commands executed since creation
}

// NewEngine creates an engine for a roster. If r is nil, a TraceSink is
// used. If rnd is nil, a time-seeded random source is used.
func NewEngine(roster *slogo.Roster, r Renderer, rnd *rand.Rand) *Engine {
	if r == nil {
		r = TraceSink{}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{roster: roster, rnd: rnd, renderer: r}
}

// Roster is part of interface corelang.Machine.
func (e *Engine) Roster() *slogo.Roster {
	return e.roster
}

// Rand is part of interface corelang.Machine.
func (e *Engine) Rand() *rand.Rand {
	return e.rnd
}

// SetRenderer replaces the renderer of an engine. A nil renderer
// installs a TraceSink.
func (e *Engine) SetRenderer(r Renderer) {
	if r == nil {
		r = TraceSink{}
	}
	e.renderer = r
}

// Renderer returns the renderer notifications are sent to.
func (e *Engine) Renderer() Renderer {
	return e.renderer
}

// Executed returns the number of commands executed by an engine.
func (e *Engine) Executed() int {
	return e.executed
}

// Execute runs a top-level command sequence and returns the result of the
// last command, or 0 for an empty sequence. Before execution, the renderer
// receives the number of commands in seq, counting nested list arguments
// once.
func (e *Engine) Execute(seq corelang.Sequence) float64 {
	n := seq.Count()
	tracer().Infof("executing %d commands", n)
	e.renderer.ExpectCommands(n)
	return e.Run(seq)
}

// Run is part of interface corelang.Machine. It executes the commands of
// seq in order, notifying the renderer after each one.
func (e *Engine) Run(seq corelang.Sequence) float64 {
	var r float64
	for _, node := range seq {
		r = node.Execute(e)
		e.executed++
		tracer().P("cmd", node.Name()).Debugf("%s = %g", node, r)
		e.renderer.Notify(Notification{
			Category: node.Category(),
			Command:  node.Name(),
			Turtle:   e.roster.Active().Snapshot(),
			Value:    r,
		})
	}
	return r
}

var _ corelang.Machine = &Engine{}
