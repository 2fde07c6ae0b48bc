package evaluator

import (
	"math/rand"
	"time"

	"github.com/npillmayer/slogo"
	"github.com/npillmayer/slogo/corelang"
	"github.com/npillmayer/slogo/grammar"
	"github.com/npillmayer/slogo/variables"
	"github.com/npillmayer/slogo/vm"
)

// Interpreter interprets SLogo programs. It holds the state of a session:
// a roster of turtles, the bindings of constants and macros, and a history
// of all programs submitted.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	roster        *slogo.Roster
	store         *variables.Store
	catalog       *corelang.Catalog
	parser        *Parser
	engine        *vm.Engine
	history       []HistoryEntry
	language      string
	turtleName    string
	maxExpansions int
	renderer      vm.Renderer
	rnd           *rand.Rand
}

// HistoryEntry records a single submission.
type HistoryEntry struct {
	Program string    `yaml:"program"`
	Result  float64   `yaml:"result"`
	Error   string    `yaml:"error,omitempty"`
	Time    time.Time `yaml:"time"`
}

// Failed is a predicate: did the submission fail?
func (h HistoryEntry) Failed() bool {
	return h.Error != ""
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLanguage sets the language of command names, either by table name
// ("english") or by language tag ("de").
func WithLanguage(lang string) Option {
	return func(intp *Interpreter) { intp.language = lang }
}

// WithRenderer sets the renderer receiving a notification per command.
func WithRenderer(r vm.Renderer) Option {
	return func(intp *Interpreter) { intp.renderer = r }
}

// WithRand sets the source of random numbers.
func WithRand(rnd *rand.Rand) Option {
	return func(intp *Interpreter) { intp.rnd = rnd }
}

// WithMaxExpansions limits the number of macro expansions per program.
func WithMaxExpansions(n int) Option {
	return func(intp *Interpreter) { intp.maxExpansions = n }
}

// WithTurtleName sets the base name of turtles.
func WithTurtleName(name string) Option {
	return func(intp *Interpreter) { intp.turtleName = name }
}

// WithCatalog replaces the standard command catalog. Every command of
// the arity table has to be registered with it.
func WithCatalog(c *corelang.Catalog) Option {
	return func(intp *Interpreter) { intp.catalog = c }
}

// NewInterpreter creates an interpreter with a single turtle. Defaults
// for options are taken from the global configuration, if present.
func NewInterpreter(opts ...Option) (*Interpreter, error) {
	intp := &Interpreter{
		language:      slogo.ConfigString("language", grammar.DefaultLanguage),
		turtleName:    slogo.ConfigString("turtle.name", slogo.DefaultTurtleName),
		maxExpansions: slogo.ConfigInt("parser.max-expansions", DefaultMaxExpansions),
	}
	for _, opt := range opts {
		opt(intp)
	}
	resolver, err := loadResolver(intp.language)
	if err != nil {
		return nil, err
	}
	classifier, err := grammar.StandardClassifier()
	if err != nil {
		return nil, err
	}
	arities, err := grammar.StandardArityTable()
	if err != nil {
		return nil, err
	}
	if intp.catalog == nil {
		intp.catalog = corelang.StandardCatalog()
	}
	intp.roster = slogo.NewRoster(intp.turtleName)
	intp.store = variables.NewStore()
	intp.engine = vm.NewEngine(intp.roster, intp.renderer, intp.rnd)
	intp.parser = NewParser(classifier, resolver, arities, intp.catalog, intp.store,
		func() []*slogo.Turtle {
			return []*slogo.Turtle{intp.roster.Active()}
		})
	intp.parser.SetMaxExpansions(intp.maxExpansions)
	intp.language = resolver.Language()
	tracer().Infof("interpreter ready, language is %s", intp.language)
	return intp, nil
}

func loadResolver(name string) (*grammar.Resolver, error) {
	lang, err := grammar.LoadLanguage(name)
	if err != nil {
		return nil, err
	}
	return grammar.NewResolver(lang)
}

// Parse parses a program without executing it. Definitions in the program
// are committed nevertheless.
func (intp *Interpreter) Parse(program string) (*Program, error) {
	return intp.parser.Parse(program)
}

// Submit parses and executes a program. It returns the result of the last
// top-level command. A program consisting of a constant definition only
// returns the constant's value.
//
// The program is parsed completely before execution starts, so a program
// with errors does not move any turtle. Bindings made before an error are
// kept.
func (intp *Interpreter) Submit(program string) (float64, error) {
	entry := HistoryEntry{Program: program, Time: time.Now()}
	prog, err := intp.parser.Parse(program)
	if err != nil {
		tracer().Errorf("%v", err)
		entry.Error = err.Error()
		intp.history = append(intp.history, entry)
		return 0, err
	}
	r := intp.engine.Execute(prog.Sequence)
	if len(prog.Sequence) == 0 && prog.Definition != nil && prog.Definition.Constant != nil {
		r = prog.Definition.Constant.Value
	}
	entry.Result = r
	intp.history = append(intp.history, entry)
	return r, nil
}

// SetLanguage switches the language of command names.
func (intp *Interpreter) SetLanguage(name string) error {
	resolver, err := loadResolver(name)
	if err != nil {
		return err
	}
	intp.parser.SetResolver(resolver)
	intp.language = resolver.Language()
	tracer().Infof("language is now %s", intp.language)
	return nil
}

// Language returns the name of the current language.
func (intp *Interpreter) Language() string {
	return intp.language
}

// SetRenderer replaces the renderer receiving notifications.
func (intp *Interpreter) SetRenderer(r vm.Renderer) {
	intp.engine.SetRenderer(r)
}

// Roster returns the turtles of the session.
func (intp *Interpreter) Roster() *slogo.Roster {
	return intp.roster
}

// NewTurtle creates a turtle with a generated name and makes it the
// active one.
func (intp *Interpreter) NewTurtle() slogo.TurtleSnapshot {
	return intp.roster.NewTurtle().Snapshot()
}

// AddTurtle creates a named turtle at a given position and heading, and
// makes it the active one.
func (intp *Interpreter) AddTurtle(name string, x, y, heading float64) (slogo.TurtleSnapshot, error) {
	t, err := intp.roster.AddTurtle(name, x, y, heading)
	if err != nil {
		return slogo.TurtleSnapshot{}, err
	}
	return t.Snapshot(), nil
}

// ChooseTurtle makes the turtle with a given name the active one.
func (intp *Interpreter) ChooseTurtle(name string) error {
	_, err := intp.roster.Choose(name)
	return err
}

// Undo reverts the most recent change of the active turtle.
func (intp *Interpreter) Undo() bool {
	return intp.roster.Active().Undo()
}

// TurtleSnapshot returns a view of the active turtle.
func (intp *Interpreter) TurtleSnapshot() slogo.TurtleSnapshot {
	return intp.roster.Active().Snapshot()
}

// Turtles returns views of all turtles, in order of creation.
func (intp *Interpreter) Turtles() []slogo.TurtleSnapshot {
	return intp.roster.Snapshot()
}

// Macros returns all macro bindings, sorted by name.
func (intp *Interpreter) Macros() []variables.Macro {
	return intp.store.Macros()
}

// Constants returns all constant bindings, sorted by name.
func (intp *Interpreter) Constants() []variables.Constant {
	return intp.store.Constants()
}

// History returns all submissions so far, oldest first.
func (intp *Interpreter) History() []HistoryEntry {
	h := make([]HistoryEntry, len(intp.history))
	copy(h, intp.history)
	return h
}

// UpdateConstant changes the value of an existing constant.
func (intp *Interpreter) UpdateConstant(name, literal string) (variables.Constant, error) {
	return intp.store.UpdateConstant(name, literal)
}
