package grammar

import (
	"fmt"
	"strings"
)

// Category is the symbol class of a token.
type Category int

// Symbol categories of the language. Values start at 1, as lexmachine
// token types.
const (
	NoCategory Category = iota
	Command
	Constant
	Variable
	ListStart
	ListEnd
)

var categoryNames = map[Category]string{
	NoCategory: "<none>",
	Command:    "Command",
	Constant:   "Constant",
	Variable:   "Variable",
	ListStart:  "ListStart",
	ListEnd:    "ListEnd",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("<illegal category: %d>", int(c))
}

// CategoryFromString gets a category from its name.
func CategoryFromString(s string) Category {
	for c, name := range categoryNames {
		if c != NoCategory && name == s {
			return c
		}
	}
	return NoCategory
}

// Token is a unit of program text, together with its category and, for
// commands, the canonical command name.
type Token struct {
	Lexeme    string
	Category  Category
	Canonical string
}

func (t Token) String() string {
	if t.Category == Command {
		return fmt.Sprintf("%s(%s)", t.Lexeme, t.Canonical)
	}
	return fmt.Sprintf("%s:%s", t.Lexeme, t.Category)
}

// commentMarker starts a comment line.
const commentMarker = "#"

// Tokenize splits program text into tokens at runs of whitespace. Empty
// segments are discarded. Lines starting with '#' (after optional blanks)
// are comments and do not contribute any tokens.
func Tokenize(program string) []string {
	var tokens []string
	for _, line := range strings.Split(program, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), commentMarker) {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	tracer().Debugf("tokenized program into %d tokens", len(tokens))
	return tokens
}
