package variables

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/slogo"
	"github.com/shopspring/decimal"
)

// Constant is a name bound to a numeric literal. Literal is the normalized
// string form used for display, Value is used in evaluation.
type Constant struct {
	Name    string  `yaml:"name"`
	Literal string  `yaml:"literal"`
	Value   float64 `yaml:"-"`
}

// Macro is a name bound to an unresolved sequence of tokens.
type Macro struct {
	Name string   `yaml:"name"`
	Body []string `yaml:"body"`
}

// Source returns the body of a macro as program text.
func (m Macro) Source() string {
	return strings.Join(m.Body, " ")
}

// Store holds the constant and macro bindings of a session. Names are kept
// sorted, so listings are stable.
type Store struct {
	constants *treemap.Map // name → Constant
	macros    *treemap.Map // name → Macro
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		constants: treemap.NewWithStringComparator(),
		macros:    treemap.NewWithStringComparator(),
	}
}

// ParseConstant converts a numeric literal into a constant value.
func ParseConstant(name, literal string) (Constant, error) {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return Constant{}, slogo.Errorf(slogo.KindMalformedProgram, literal, "not a numeric literal")
	}
	f, _ := d.Float64()
	return Constant{Name: name, Literal: d.String(), Value: f}, nil
}

// DefineConstant binds name to a numeric literal. If name is bound to a
// macro, an error of kind slogo.KindRedefinitionConflict is returned and
// the store is unchanged.
func (s *Store) DefineConstant(name, literal string) (Constant, error) {
	if _, found := s.macros.Get(name); found {
		return Constant{}, slogo.Errorf(slogo.KindRedefinitionConflict, name,
			"name is already bound to a macro")
	}
	c, err := ParseConstant(name, literal)
	if err != nil {
		return c, err
	}
	s.constants.Put(name, c)
	tracer().P("name", name).Debugf("constant = %s", c.Literal)
	return c, nil
}

// DefineMacro binds name to a token sequence. If name is bound to a
// constant, an error of kind slogo.KindRedefinitionConflict is returned and
// the store is unchanged.
func (s *Store) DefineMacro(name string, body []string) (Macro, error) {
	if _, found := s.constants.Get(name); found {
		return Macro{}, slogo.Errorf(slogo.KindRedefinitionConflict, name,
			"name is already bound to a constant")
	}
	b := make([]string, len(body))
	copy(b, body)
	m := Macro{Name: name, Body: b}
	s.macros.Put(name, m)
	tracer().P("name", name).Debugf("macro = %s", m.Source())
	return m, nil
}

// UpdateConstant changes the literal of an existing constant. It is meant
// for front ends which let users edit constants in place.
func (s *Store) UpdateConstant(name, literal string) (Constant, error) {
	if _, found := s.constants.Get(name); !found {
		return Constant{}, slogo.Errorf(slogo.KindUndefinedVariable, name, "no such constant")
	}
	return s.DefineConstant(name, literal)
}

// Constant looks up a constant binding.
func (s *Store) Constant(name string) (Constant, bool) {
	c, found := s.constants.Get(name)
	if !found {
		return Constant{}, false
	}
	return c.(Constant), true
}

// Macro looks up a macro binding.
func (s *Store) Macro(name string) (Macro, bool) {
	m, found := s.macros.Get(name)
	if !found {
		return Macro{}, false
	}
	return m.(Macro), true
}

// Constants returns all constant bindings, sorted by name.
func (s *Store) Constants() []Constant {
	cs := make([]Constant, 0, s.constants.Size())
	for _, c := range s.constants.Values() {
		cs = append(cs, c.(Constant))
	}
	return cs
}

// Macros returns all macro bindings, sorted by name. Macro bodies are
// copies.
func (s *Store) Macros() []Macro {
	ms := make([]Macro, 0, s.macros.Size())
	for _, v := range s.macros.Values() {
		m := v.(Macro)
		body := make([]string, len(m.Body))
		copy(body, m.Body)
		ms = append(ms, Macro{Name: m.Name, Body: body})
	}
	return ms
}
