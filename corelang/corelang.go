/*
Package corelang implements the command catalog of SLogo.

Every command of the language is a Kind: a canonical name, the number of
numeric and list arguments it expects, a notification category and an
evaluation function. Kinds are registered with a Catalog, which builds
command nodes from fully saturated arguments. The parser does not know
about any particular kind; adding a command means registering a kind and an
arity for it.

Command Nodes

A node is a kind together with its arguments. Numeric arguments are
operands, which are either literal values or refer to the result of an
earlier node. Pure nodes with known operands are evaluated as soon as they
are built; all other nodes get their result when executed.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corelang

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slogo"
)

// tracer traces with key 'slogo.core'.
func tracer() tracing.Trace {
	return tracing.Select("slogo.core")
}

// Category tells a renderer what kind of change a command caused.
type Category int8

// Notification categories. Every kind carries exactly one of them.
const (
	TransformUpdate Category = iota // position or heading may have changed
	StateReset                      // screen cleared, turtle sent home
	PenToggle                       // pen up or down
	VisibilityToggle                // turtle shown or hidden
	BackgroundChange                // background color changed
	PenColorChange                  // pen color changed
	ShapeChange                     // turtle shape changed
	PenSizeChange                   // pen width changed
)

func (c Category) String() string {
	switch c {
	case TransformUpdate:
		return "transform-update"
	case StateReset:
		return "state-reset"
	case PenToggle:
		return "pen-toggle"
	case VisibilityToggle:
		return "visibility-toggle"
	case BackgroundChange:
		return "background-change"
	case PenColorChange:
		return "pen-color-change"
	case ShapeChange:
		return "shape-change"
	case PenSizeChange:
		return "pen-size-change"
	}
	return fmt.Sprintf("<illegal category: %d>", int(c))
}

// --- Execution -------------------------------------------------------------

// Machine is what a command sees of the engine executing it.
type Machine interface {
	Roster() *slogo.Roster     // all turtles of the session
	Rand() *rand.Rand          // source for random numbers
	Run(seq Sequence) float64  // execute a list argument, returning the last result
}

// EvalFunc evaluates a node and returns its result. Pure kinds may be
// evaluated with a nil machine.
type EvalFunc func(m Machine, n *Node) float64

// Kind is a command kind, i.e. a canonical command with its behaviour.
type Kind struct {
	Name     string   // canonical name
	Numeric  int      // number of numeric arguments
	Lists    int      // number of list arguments
	Category Category // notification category
	Pure     bool     // result depends on arguments only
	Eval     EvalFunc
}

func (k *Kind) String() string {
	return fmt.Sprintf("<kind %s(%d,%d)>", k.Name, k.Numeric, k.Lists)
}

// --- Operands and nodes ----------------------------------------------------

// Operand is a numeric argument of a node: either a literal or the result
// of another node.
type Operand struct {
	value float64
	node  *Node
}

// Literal creates an operand for a constant value.
func Literal(v float64) Operand {
	return Operand{value: v}
}

// ResultOf creates an operand referring to the result of a node.
func ResultOf(n *Node) Operand {
	return Operand{node: n}
}

// Value returns the current value of an operand.
func (o Operand) Value() float64 {
	if o.node != nil {
		return o.node.result
	}
	return o.value
}

// IsKnown is a predicate: is the value of the operand available before
// execution?
func (o Operand) IsKnown() bool {
	return o.node == nil || o.node.known
}

// Node returns the node an operand refers to, or nil for literals.
func (o Operand) Node() *Node {
	return o.node
}

func (o Operand) String() string {
	if o.node != nil && !o.node.known {
		return "<" + o.node.kind.Name + ">"
	}
	return fmt.Sprintf("%g", o.Value())
}

// Sequence is an ordered list of nodes, executed left to right.
type Sequence []*Node

// Count returns the number of nodes in a sequence, including the nodes of
// all nested list arguments.
func (seq Sequence) Count() int {
	cnt := 0
	for _, n := range seq {
		cnt++
		for _, l := range n.lists {
			cnt += l.Count()
		}
	}
	return cnt
}

// Node is a fully saturated command: a kind together with all its
// arguments and the turtles it operates on.
type Node struct {
	kind     *Kind
	operands []Operand
	lists    []Sequence
	targets  []*slogo.Turtle
	result   float64
	known    bool
}

// Kind returns the kind of a node.
func (n *Node) Kind() *Kind {
	return n.kind
}

// Name returns the canonical command name of a node.
func (n *Node) Name() string {
	return n.kind.Name
}

// Category returns the notification category of a node.
func (n *Node) Category() Category {
	return n.kind.Category
}

// Operands returns the numeric arguments of a node.
func (n *Node) Operands() []Operand {
	return n.operands
}

// Lists returns the list arguments of a node.
func (n *Node) Lists() []Sequence {
	return n.lists
}

// Targets returns the turtles a node operates on.
func (n *Node) Targets() []*slogo.Turtle {
	return n.targets
}

// Arg returns the current value of the i-th numeric argument.
func (n *Node) Arg(i int) float64 {
	return n.operands[i].Value()
}

// List returns the i-th list argument.
func (n *Node) List(i int) Sequence {
	return n.lists[i]
}

// Result returns the cached result of a node.
func (n *Node) Result() float64 {
	return n.result
}

// IsKnown is a predicate: has the result of a node been computed?
func (n *Node) IsKnown() bool {
	return n.known
}

// Execute evaluates a node on a machine and caches its result.
func (n *Node) Execute(m Machine) float64 {
	n.result = n.kind.Eval(m, n)
	n.known = true
	return n.result
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString(n.kind.Name)
	for _, o := range n.operands {
		b.WriteByte(' ')
		b.WriteString(o.String())
	}
	for _, l := range n.lists {
		b.WriteString(" [")
		for _, ln := range l {
			b.WriteByte(' ')
			b.WriteString(ln.String())
		}
		b.WriteString(" ]")
	}
	return b.String()
}

// --- Catalog ---------------------------------------------------------------

// Catalog is a registry of command kinds, keyed by canonical name.
type Catalog struct {
	kinds map[string]*Kind
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{kinds: make(map[string]*Kind)}
}

// Register adds a kind to the catalog. Registering a name twice is a
// configuration error.
func (c *Catalog) Register(k *Kind) error {
	if k == nil || k.Name == "" || k.Eval == nil {
		return slogo.Errorf(slogo.KindConfiguration, "", "incomplete command kind %v", k)
	}
	if _, dup := c.kinds[k.Name]; dup {
		return slogo.Errorf(slogo.KindConfiguration, k.Name, "command kind registered twice")
	}
	c.kinds[k.Name] = k
	return nil
}

// Lookup finds the kind for a canonical name.
func (c *Catalog) Lookup(name string) (*Kind, bool) {
	k, ok := c.kinds[name]
	return k, ok
}

// Names returns the canonical names of all registered kinds, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.kinds))
	for name := range c.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a node for a canonical command. The number of operands and
// lists has to match the kind exactly; a mismatch means the arity
// configuration disagrees with the catalog and is reported as a
// configuration error. Pure nodes with known operands are evaluated
// right away.
func (c *Catalog) New(name string, targets []*slogo.Turtle, operands []Operand,
	lists []Sequence) (*Node, error) {
	//
	k, ok := c.kinds[name]
	if !ok {
		return nil, slogo.Errorf(slogo.KindConfiguration, name, "no command kind registered")
	}
	if len(operands) != k.Numeric || len(lists) != k.Lists {
		return nil, slogo.Errorf(slogo.KindConfiguration, name,
			"kind expects (%d,%d) arguments, got (%d,%d)", k.Numeric, k.Lists, len(operands), len(lists))
	}
	n := &Node{
		kind:     k,
		operands: operands,
		lists:    lists,
		targets:  targets,
	}
	if k.Pure && n.operandsKnown() {
		n.Execute(nil)
		tracer().P("cmd", name).Debugf("folded to %g", n.result)
	}
	return n, nil
}

func (n *Node) operandsKnown() bool {
	for _, o := range n.operands {
		if !o.IsKnown() {
			return false
		}
	}
	return true
}

var standard *Catalog
var standardOnce sync.Once

// StandardCatalog returns a new catalog holding all built-in command kinds.
// Clients may register additional kinds with it.
func StandardCatalog() *Catalog {
	standardOnce.Do(func() {
		standard = NewCatalog()
		for _, group := range [][]*Kind{turtleKinds, queryKinds, penKinds, controlKinds,
			mathKinds, logicKinds} {
			for _, k := range group {
				if err := standard.Register(k); err != nil {
					panic(err) // built-in kinds are unique
				}
			}
		}
	})
	c := NewCatalog()
	for name, k := range standard.kinds {
		c.kinds[name] = k
	}
	return c
}
