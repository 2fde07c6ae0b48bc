package slogo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/arithm"
)

// DefaultTurtleName is the base name of turtles created without a name.
const DefaultTurtleName = "Turtle"

// ErrNoSuchTurtle is returned when choosing a turtle by an unknown name.
var ErrNoSuchTurtle = errors.New("no such turtle")

// ErrTurtleExists is returned when adding a turtle under a name already
// taken.
var ErrTurtleExists = errors.New("turtle already exists")

// Roster keeps track of all turtles of a session. One of them is the active
// turtle, which commands operate on. Turtles are never removed from a
// roster, only hidden.
type Roster struct {
	turtles    []*Turtle
	byName     map[string]*Turtle
	generation map[string]int // next generation number for a base name
	active     *Turtle
	basename   string
	background int
}

// NewRoster creates a roster with one initial turtle, which is the active
// one. basename is used to name turtles created by NewTurtle; if empty,
// DefaultTurtleName is used.
func NewRoster(basename string) *Roster {
	if basename == "" {
		basename = DefaultTurtleName
	}
	r := &Roster{
		byName:     make(map[string]*Turtle),
		generation: make(map[string]int),
		basename:   basename,
	}
	r.NewTurtle()
	return r
}

// NewTurtle creates a turtle with the roster's base name at the origin and
// makes it the active turtle. Name collisions are resolved by appending a
// generation suffix in Roman numerals: "Turtle", "Turtle II", "Turtle III".
func (r *Roster) NewTurtle() *Turtle {
	name := r.basename
	for {
		if _, taken := r.byName[name]; !taken {
			break
		}
		gen, ok := r.generation[r.basename]
		if !ok {
			gen = 2
		}
		r.generation[r.basename] = gen + 1
		name = r.basename + " " + RomanNumeral(gen)
	}
	return r.add(name, InitialState())
}

// AddTurtle creates a turtle with a given name, position and heading, and
// makes it the active turtle.
func (r *Roster) AddTurtle(name string, x, y, heading float64) (*Turtle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("turtle name must not be empty")
	}
	if _, taken := r.byName[name]; taken {
		return nil, fmt.Errorf("%w: %q", ErrTurtleExists, name)
	}
	st := InitialState()
	st.Position = arithm.P(x, y)
	st.Heading = heading
	return r.add(name, st), nil
}

func (r *Roster) add(name string, st State) *Turtle {
	t := newTurtle(len(r.turtles)+1, name, st)
	r.turtles = append(r.turtles, t)
	r.byName[name] = t
	r.active = t
	tracer().P("turtle", name).Infof("new turtle #%d", t.id)
	return t
}

// Choose makes the turtle with the given name the active one.
func (r *Roster) Choose(name string) (*Turtle, error) {
	t, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchTurtle, name)
	}
	r.active = t
	tracer().P("turtle", name).Debugf("turtle is now active")
	return t, nil
}

// Active returns the active turtle.
func (r *Roster) Active() *Turtle {
	return r.active
}

// Turtle returns the turtle with a given name, or nil.
func (r *Roster) Turtle(name string) *Turtle {
	return r.byName[name]
}

// Len returns the number of turtles in the roster.
func (r *Roster) Len() int {
	return len(r.turtles)
}

// Turtles returns all turtles in order of creation.
func (r *Roster) Turtles() []*Turtle {
	t := make([]*Turtle, len(r.turtles))
	copy(t, r.turtles)
	return t
}

// Background returns the palette index of the background color.
func (r *Roster) Background() int {
	return r.background
}

// SetBackground sets the palette index of the background color.
func (r *Roster) SetBackground(inx int) {
	r.background = inx
}

// Snapshot returns read-only views of all turtles in order of creation.
func (r *Roster) Snapshot() []TurtleSnapshot {
	snaps := make([]TurtleSnapshot, len(r.turtles))
	for i, t := range r.turtles {
		snaps[i] = t.Snapshot()
	}
	return snaps
}

var romanDigits = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// RomanNumeral formats a positive integer in Roman numerals. Non-positive
// numbers yield an empty string.
func RomanNumeral(n int) string {
	var b strings.Builder
	for _, d := range romanDigits {
		for n >= d.value {
			b.WriteString(d.symbol)
			n -= d.value
		}
	}
	return b.String()
}
