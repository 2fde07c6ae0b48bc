package evaluator

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/slogo"
	"github.com/npillmayer/slogo/corelang"
	"github.com/npillmayer/slogo/grammar"
	"github.com/npillmayer/slogo/variables"
)

// definitionCommand is the canonical name of the definition form.
const definitionCommand = "MakeVariable"

// DefaultMaxExpansions limits the number of macro expansions in a single
// program.
const DefaultMaxExpansions = 10000

// Parser turns program text into command sequences. A parser is not safe
// for concurrent use; each program is parsed by a single call to Parse.
type Parser struct {
	classifier    *grammar.Classifier
	resolver      *grammar.Resolver
	arities       *grammar.ArityTable
	catalog       *corelang.Catalog
	store         *variables.Store
	targets       func() []*slogo.Turtle
	maxExpansions int
}

// Definition is a binding made by the definition form of a program.
type Definition struct {
	Name     string
	Constant *variables.Constant // set for constant definitions
	Macro    *variables.Macro    // set for macro definitions
}

// Program is the result of parsing a program text.
type Program struct {
	Sequence   corelang.Sequence // top-level commands, in execution order
	Definition *Definition       // binding made by the program, if any
}

// NewParser creates a parser. targets tells the parser which turtles new
// command nodes operate on.
func NewParser(c *grammar.Classifier, r *grammar.Resolver, at *grammar.ArityTable,
	cat *corelang.Catalog, store *variables.Store, targets func() []*slogo.Turtle) *Parser {
	//
	return &Parser{
		classifier:    c,
		resolver:      r,
		arities:       at,
		catalog:       cat,
		store:         store,
		targets:       targets,
		maxExpansions: DefaultMaxExpansions,
	}
}

// SetMaxExpansions sets the limit for macro expansions per program.
// Values < 1 reset the limit to DefaultMaxExpansions.
func (p *Parser) SetMaxExpansions(n int) {
	if n < 1 {
		n = DefaultMaxExpansions
	}
	p.maxExpansions = n
}

// SetResolver switches the language of a parser.
func (p *Parser) SetResolver(r *grammar.Resolver) {
	p.resolver = r
}

// Parse parses a program text into a sequence of command nodes. Bindings
// made by the definition form are committed to the store immediately,
// even if parsing fails later on.
func (p *Parser) Parse(program string) (*Program, error) {
	run := &parseRun{
		Parser: p,
		cur:    newContext(),
		saved:  linkedliststack.New(),
		input:  grammar.Tokenize(program),
	}
	return run.parse()
}

// --- Parse state -----------------------------------------------------------

// context is the set of parallel stacks for one level of list nesting,
// together with the sequence of nodes built at that level.
type context struct {
	names    *linkedliststack.Stack // pending canonical command names
	operands *corelang.OperandStack // numeric arguments
	lists    *linkedliststack.Stack // list arguments, of type corelang.Sequence
	numeric  *linkedliststack.Stack // remaining numeric arity per pending command
	listsDue *linkedliststack.Stack // remaining list arity per pending command
	seq      corelang.Sequence      // nodes built so far
}

func newContext() *context {
	return &context{
		names:    linkedliststack.New(),
		operands: corelang.NewOperandStack(),
		lists:    linkedliststack.New(),
		numeric:  linkedliststack.New(),
		listsDue: linkedliststack.New(),
	}
}

// due returns the remaining arity of the top pending command.
func (ctx *context) due() (numeric int, lists int) {
	n, _ := ctx.numeric.Peek()
	l, _ := ctx.listsDue.Peek()
	return n.(int), l.(int)
}

// setDue replaces the remaining arity of the top pending command.
func (ctx *context) setDue(numeric int, lists int) {
	ctx.numeric.Pop()
	ctx.listsDue.Pop()
	ctx.numeric.Push(numeric)
	ctx.listsDue.Push(lists)
}

type parseRun struct {
	*Parser
	cur        *context
	saved      *linkedliststack.Stack // saved contexts of enclosing lists
	input      []string               // remaining tokens
	expansions int
	definition *Definition
}

func (run *parseRun) next() (string, bool) {
	if len(run.input) == 0 {
		return "", false
	}
	tok := run.input[0]
	run.input = run.input[1:]
	return tok, true
}

func (run *parseRun) parse() (*Program, error) {
	for {
		word, ok := run.next()
		if !ok {
			break
		}
		if err := run.shift(word); err != nil {
			return nil, err
		}
	}
	if !run.saved.Empty() {
		return nil, slogo.Errorf(slogo.KindMalformedProgram, "[",
			"%d list(s) not closed at end of program", run.saved.Size())
	}
	if !run.cur.names.Empty() {
		name, _ := run.cur.names.Peek()
		return nil, slogo.Errorf(slogo.KindMalformedProgram, name.(string),
			"command is missing arguments at end of program")
	}
	tracer().Debugf("parsed program into %d top-level commands", len(run.cur.seq))
	return &Program{Sequence: run.cur.seq, Definition: run.definition}, nil
}

// shift processes a single token.
func (run *parseRun) shift(word string) error {
	tok, err := grammar.ScanToken(word, run.classifier, run.resolver)
	if err != nil {
		return err
	}
	tracer().Debugf("shift %s", tok)
	switch tok.Category {
	case grammar.Command:
		if tok.Canonical == definitionCommand {
			return run.define(tok)
		}
		return run.pushCommand(tok)
	case grammar.Constant:
		c, err := variables.ParseConstant("", tok.Lexeme)
		if err != nil {
			return err
		}
		return run.supplyOperand(tok.Lexeme, corelang.Literal(c.Value))
	case grammar.Variable:
		return run.variable(tok)
	case grammar.ListStart:
		run.saved.Push(run.cur)
		run.cur = newContext()
		return nil
	case grammar.ListEnd:
		return run.closeList(tok)
	}
	return slogo.Errorf(slogo.KindUnknownCommand, word, "token has no usable category")
}

func (run *parseRun) pushCommand(tok grammar.Token) error {
	arity, err := run.arities.ArityOf(tok.Canonical)
	if err != nil {
		return err
	}
	run.cur.names.Push(tok.Canonical)
	run.cur.numeric.Push(arity.Numeric)
	run.cur.listsDue.Push(arity.Lists)
	return run.reduce()
}

// variable resolves a variable reference. Constants are supplied as
// operands, macros are spliced into the input.
func (run *parseRun) variable(tok grammar.Token) error {
	name := variableName(tok.Lexeme)
	if c, ok := run.store.Constant(name); ok {
		return run.supplyOperand(tok.Lexeme, corelang.Literal(c.Value))
	}
	m, ok := run.store.Macro(name)
	if !ok {
		return slogo.Errorf(slogo.KindUndefinedVariable, tok.Lexeme, "variable is not defined")
	}
	run.expansions++
	if run.expansions > run.maxExpansions {
		return slogo.Errorf(slogo.KindMalformedProgram, tok.Lexeme,
			"more than %d macro expansions, possibly a self-referencing macro", run.maxExpansions)
	}
	input := make([]string, 0, len(m.Body)+len(run.input))
	input = append(input, m.Body...)
	run.input = append(input, run.input...)
	tracer().P("macro", name).Debugf("expanded to %d tokens", len(m.Body))
	return nil
}

func (run *parseRun) closeList(tok grammar.Token) error {
	if run.saved.Empty() {
		return slogo.Errorf(slogo.KindMalformedProgram, tok.Lexeme, "no list to close")
	}
	if !run.cur.names.Empty() {
		name, _ := run.cur.names.Peek()
		return slogo.Errorf(slogo.KindMalformedProgram, name.(string),
			"command is missing arguments at end of list")
	}
	list := run.cur.seq
	if list == nil {
		list = corelang.Sequence{}
	}
	ctx, _ := run.saved.Pop()
	run.cur = ctx.(*context)
	return run.supplyList(tok.Lexeme, list)
}

// supplyOperand hands a numeric argument to the top pending command.
// Values without a pending command are dropped.
func (run *parseRun) supplyOperand(lexeme string, o corelang.Operand) error {
	if err := run.deliverOperand(lexeme, o); err != nil {
		return err
	}
	return run.reduce()
}

func (run *parseRun) deliverOperand(lexeme string, o corelang.Operand) error {
	ctx := run.cur
	if ctx.names.Empty() {
		tracer().Debugf("dropping value %s", o)
		return nil
	}
	numeric, lists := ctx.due()
	if numeric == 0 {
		name, _ := ctx.names.Peek()
		return slogo.Errorf(slogo.KindMalformedProgram, lexeme,
			"%s does not expect a numeric argument here", name)
	}
	ctx.operands.Push(o)
	ctx.setDue(numeric-1, lists)
	return nil
}

// supplyList hands a list argument to the top pending command.
// Lists without a pending command are dropped.
func (run *parseRun) supplyList(lexeme string, list corelang.Sequence) error {
	ctx := run.cur
	if ctx.names.Empty() {
		tracer().Debugf("dropping list of %d commands", len(list))
		return nil
	}
	numeric, lists := ctx.due()
	if lists == 0 {
		name, _ := ctx.names.Peek()
		return slogo.Errorf(slogo.KindMalformedProgram, lexeme,
			"%s does not expect a list argument here", name)
	}
	ctx.lists.Push(list)
	ctx.setDue(numeric, lists-1)
	return run.reduce()
}

// reduce builds command nodes as long as the top pending command is
// saturated. The result of every node becomes an operand for the command
// below it.
func (run *parseRun) reduce() error {
	ctx := run.cur
	for !ctx.names.Empty() {
		if numeric, lists := ctx.due(); numeric > 0 || lists > 0 {
			return nil
		}
		name, _ := ctx.names.Pop()
		ctx.numeric.Pop()
		ctx.listsDue.Pop()
		node, err := run.build(name.(string))
		if err != nil {
			return err
		}
		ctx.seq = append(ctx.seq, node)
		if err := run.deliverOperand(node.Name(), corelang.ResultOf(node)); err != nil {
			return err
		}
	}
	return nil
}

func (run *parseRun) build(name string) (*corelang.Node, error) {
	arity, err := run.arities.ArityOf(name)
	if err != nil {
		return nil, err
	}
	ctx := run.cur
	ops, err := ctx.operands.PopN(arity.Numeric)
	if err != nil {
		return nil, slogo.Errorf(slogo.KindMalformedProgram, name, "%v", err)
	}
	lists := make([]corelang.Sequence, arity.Lists)
	for i := arity.Lists - 1; i >= 0; i-- {
		l, ok := ctx.lists.Pop()
		if !ok {
			return nil, slogo.Errorf(slogo.KindMalformedProgram, name, "list argument missing")
		}
		lists[i] = l.(corelang.Sequence)
	}
	var targets []*slogo.Turtle
	if run.targets != nil {
		targets = run.targets()
	}
	node, err := run.catalog.New(name, targets, ops, lists)
	if err != nil {
		return nil, err
	}
	tracer().P("cmd", name).Debugf("reduced %s", node)
	return node, nil
}

// define handles the definition form
//
//     MAKE :name literal
//     MAKE :name token…
//
// The first form binds a constant, the second one a macro, consuming the
// rest of the program. A macro body may be enclosed in brackets.
func (run *parseRun) define(mk grammar.Token) error {
	if !run.saved.Empty() || !run.cur.names.Empty() {
		return slogo.Errorf(slogo.KindMalformedProgram, mk.Lexeme,
			"definitions are allowed at top level only")
	}
	word, ok := run.next()
	if !ok {
		return slogo.Errorf(slogo.KindMalformedProgram, mk.Lexeme, "variable name missing")
	}
	cat, err := run.classifier.Classify(word)
	if err != nil {
		return err
	}
	if cat != grammar.Variable {
		return slogo.Errorf(slogo.KindMalformedProgram, word, "expected a variable name")
	}
	name := variableName(word)
	body := run.input
	run.input = nil
	if len(body) == 0 {
		return slogo.Errorf(slogo.KindMalformedProgram, word, "definition has no value")
	}
	if len(body) == 1 {
		if cat, err := run.classifier.Classify(body[0]); err == nil && cat == grammar.Constant {
			c, err := run.store.DefineConstant(name, body[0])
			if err != nil {
				return err
			}
			run.definition = &Definition{Name: name, Constant: &c}
			tracer().P("name", name).Infof("defined constant %s", c.Literal)
			return nil
		}
	}
	body = unwrapList(body)
	if len(body) == 0 {
		if _, isConst := run.store.Constant(name); isConst {
			return slogo.Errorf(slogo.KindRedefinitionConflict, name,
				"name is already bound to a constant")
		}
		return slogo.Errorf(slogo.KindMalformedProgram, word, "definition has an empty body")
	}
	m, err := run.store.DefineMacro(name, body)
	if err != nil {
		return err
	}
	run.definition = &Definition{Name: name, Macro: &m}
	tracer().P("name", name).Infof("defined macro of %d tokens", len(m.Body))
	return nil
}

// unwrapList strips a pair of brackets enclosing a whole macro body, so
// that "MAKE :sq [ fd 10 ]" defines the same macro as "MAKE :sq fd 10".
func unwrapList(body []string) []string {
	if len(body) < 2 || body[0] != "[" || body[len(body)-1] != "]" {
		return body
	}
	depth := 0
	for i, tok := range body {
		switch tok {
		case "[":
			depth++
		case "]":
			depth--
			if depth == 0 && i < len(body)-1 {
				return body // first list closes before the end
			}
		}
	}
	if depth != 0 {
		return body
	}
	return body[1 : len(body)-1]
}

// variableName strips the sigil off a variable token.
func variableName(lexeme string) string {
	return strings.TrimPrefix(lexeme, ":")
}

func (def *Definition) String() string {
	if def.Constant != nil {
		return fmt.Sprintf(":%s = %s", def.Name, def.Constant.Literal)
	}
	return fmt.Sprintf(":%s = [ %s ]", def.Name, def.Macro.Source())
}
