package slogo

import (
	"fmt"
	"math"

	"github.com/npillmayer/arithm"
)

// PenState is the drawing state of a turtle's pen.
type PenState struct {
	Down  bool    // is the pen down, i.e. drawing?
	Color int     // index into the palette of the rendering side
	Size  float64 // width of the pen
}

// State is the mutable part of a turtle. Heading is in degrees, normalized
// to [0, 360), with 0 pointing along the x-axis.
type State struct {
	Position arithm.Pair
	Heading  float64
	Pen      PenState
	Visible  bool
	Shape    int
}

// InitialState is the state of a freshly created turtle: at the origin,
// heading 0, pen down, visible.
func InitialState() State {
	return State{
		Position: arithm.Origin,
		Pen:      PenState{Down: true, Color: 0, Size: 1},
		Visible:  true,
	}
}

// Turtle is an entity commands operate on. Turtles are created by a Roster
// and live for a whole session.
//
// Every mutation records the previous state, so a turtle's movements may be
// undone or replayed.
type Turtle struct {
	id      int
	name    string
	state   State
	history []State
}

func newTurtle(id int, name string, st State) *Turtle {
	st.Heading = NormalizeHeading(st.Heading)
	return &Turtle{id: id, name: name, state: st}
}

// ID returns the numeric id of a turtle. Ids start at 1.
func (t *Turtle) ID() int {
	return t.id
}

// Name returns the display name of a turtle.
func (t *Turtle) Name() string {
	return t.name
}

func (t *Turtle) String() string {
	return fmt.Sprintf("<turtle #%d %q (%g,%g) %g°>", t.id, t.name, t.X(), t.Y(), t.state.Heading)
}

// State returns the current state of a turtle.
func (t *Turtle) State() State {
	return t.state
}

// X returns the x-coordinate of the turtle's position.
func (t *Turtle) X() float64 {
	return t.state.Position.X()
}

// Y returns the y-coordinate of the turtle's position.
func (t *Turtle) Y() float64 {
	return t.state.Position.Y()
}

// Heading returns the turtle's heading in degrees.
func (t *Turtle) Heading() float64 {
	return t.state.Heading
}

// IsPenDown is a predicate: is the turtle drawing?
func (t *Turtle) IsPenDown() bool {
	return t.state.Pen.Down
}

// IsVisible is a predicate: is the turtle shown?
func (t *Turtle) IsVisible() bool {
	return t.state.Visible
}

// change records the current state in the history and then applies f.
func (t *Turtle) change(f func(st *State)) {
	t.history = append(t.history, t.state)
	f(&t.state)
	tracer().P("turtle", t.name).Debugf("now at (%g,%g) heading %g",
		t.X(), t.Y(), t.state.Heading)
}

// Move moves the turtle along its heading by distance d (negative d moves
// backwards). Returns d.
func (t *Turtle) Move(d float64) float64 {
	rad := t.state.Heading * math.Pi / 180.0
	x := t.X() + d*math.Cos(rad)
	y := t.Y() + d*math.Sin(rad)
	t.change(func(st *State) {
		st.Position = arithm.P(x, y)
	})
	return d
}

// Turn turns the turtle counter-clockwise by deg degrees (negative deg turns
// clockwise). Returns deg.
func (t *Turtle) Turn(deg float64) float64 {
	h := NormalizeHeading(t.state.Heading + deg)
	t.change(func(st *State) {
		st.Heading = h
	})
	return deg
}

// SetHeading turns the turtle to an absolute heading. Returns the number of
// degrees turned.
func (t *Turtle) SetHeading(deg float64) float64 {
	h := NormalizeHeading(deg)
	turned := h - t.state.Heading
	t.change(func(st *State) {
		st.Heading = h
	})
	return turned
}

// Towards turns the turtle to face point (x,y). Returns the number of degrees
// turned. If the turtle already sits at (x,y), its heading is unchanged.
func (t *Turtle) Towards(x, y float64) float64 {
	dx, dy := x-t.X(), y-t.Y()
	if dx == 0 && dy == 0 {
		return 0
	}
	return t.SetHeading(math.Atan2(dy, dx) * 180.0 / math.Pi)
}

// SetPosition moves the turtle to (x,y) without changing its heading.
// Returns the distance moved.
func (t *Turtle) SetPosition(x, y float64) float64 {
	d := math.Hypot(x-t.X(), y-t.Y())
	t.change(func(st *State) {
		st.Position = arithm.P(x, y)
	})
	return d
}

// Home moves the turtle to the origin and resets its heading. Returns the
// distance moved.
func (t *Turtle) Home() float64 {
	d := math.Hypot(t.X(), t.Y())
	t.change(func(st *State) {
		st.Position = arithm.Origin
		st.Heading = 0
	})
	return d
}

// SetPen puts the pen down or lifts it up.
func (t *Turtle) SetPen(down bool) {
	t.change(func(st *State) {
		st.Pen.Down = down
	})
}

// SetPenColor sets the palette index of the pen color.
func (t *Turtle) SetPenColor(inx int) {
	t.change(func(st *State) {
		st.Pen.Color = inx
	})
}

// SetPenSize sets the width of the pen.
func (t *Turtle) SetPenSize(size float64) {
	t.change(func(st *State) {
		st.Pen.Size = size
	})
}

// SetVisible shows or hides the turtle.
func (t *Turtle) SetVisible(visible bool) {
	t.change(func(st *State) {
		st.Visible = visible
	})
}

// SetShape sets the shape index of the turtle.
func (t *Turtle) SetShape(inx int) {
	t.change(func(st *State) {
		st.Shape = inx
	})
}

// Undo restores the state before the most recent mutation. It returns false
// if there is nothing to undo.
func (t *Turtle) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := len(t.history) - 1
	t.state = t.history[last]
	t.history = t.history[:last]
	tracer().P("turtle", t.name).Debugf("undo, back at (%g,%g)", t.X(), t.Y())
	return true
}

// History returns all states a turtle went through, oldest first, including
// the current one. Clients may use it to replay a turtle's movements.
func (t *Turtle) History() []State {
	h := make([]State, len(t.history), len(t.history)+1)
	copy(h, t.history)
	return append(h, t.state)
}

// TurtleSnapshot is a read-only view of a turtle, suitable for external
// serialization.
type TurtleSnapshot struct {
	ID      int     `yaml:"id"`
	Name    string  `yaml:"name"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"`
	PenDown bool    `yaml:"pendown"`
	Visible bool    `yaml:"visible"`
}

// Snapshot returns a read-only view of a turtle.
func (t *Turtle) Snapshot() TurtleSnapshot {
	return TurtleSnapshot{
		ID:      t.id,
		Name:    t.name,
		X:       t.X(),
		Y:       t.Y(),
		Heading: t.state.Heading,
		PenDown: t.state.Pen.Down,
		Visible: t.state.Visible,
	}
}

// NormalizeHeading maps an angle in degrees to [0, 360).
func NormalizeHeading(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 { // rounding of tiny negative angles
		h = 0
	}
	return h
}
