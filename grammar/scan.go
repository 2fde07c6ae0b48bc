package grammar

/*
BSD License

Copyright (c) 2019–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"embed"
	"sync"

	"github.com/npillmayer/slogo"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
	"gopkg.in/yaml.v3"
)

//go:embed tables
var tables embed.FS

// SymbolPattern associates a symbol category with a lexmachine pattern.
type SymbolPattern struct {
	Category string `yaml:"category"`
	Pattern  string `yaml:"pattern"`
}

// SyntaxTable is an ordered list of symbol patterns. If a token is matched
// by more than one pattern, the first one wins.
type SyntaxTable []SymbolPattern

// ParseSyntaxTable reads a syntax table in YAML format.
func ParseSyntaxTable(data []byte) (SyntaxTable, error) {
	var st SyntaxTable
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, slogo.Errorf(slogo.KindConfiguration, "", "cannot read syntax table: %v", err)
	}
	return st, nil
}

// Classifier maps tokens to symbol categories. It is backed by a DFA
// compiled from a syntax table.
type Classifier struct {
	lexer *lexmachine.Lexer
}

// NewClassifier compiles a syntax table into a classifier.
func NewClassifier(st SyntaxTable) (*Classifier, error) {
	lexer := lexmachine.NewLexer()
	for _, sp := range st {
		cat := CategoryFromString(sp.Category)
		if cat == NoCategory {
			return nil, slogo.Errorf(slogo.KindConfiguration, sp.Category,
				"syntax table names unknown symbol category")
		}
		lexer.Add([]byte(sp.Pattern), makeToken(cat))
	}
	if err := lexer.Compile(); err != nil {
		return nil, slogo.Errorf(slogo.KindConfiguration, "", "cannot compile syntax table: %v", err)
	}
	tracer().Debugf("compiled classifier for %d symbol categories", len(st))
	return &Classifier{lexer: lexer}, nil
}

func makeToken(cat Category) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(cat), string(m.Bytes), m), nil
	}
}

var stdClassifier *Classifier
var stdClassifierErr error
var initOnce sync.Once // monitors one-time creation of the standard classifier

// StandardClassifier returns a classifier for the syntax table shipped
// with this package.
func StandardClassifier() (*Classifier, error) {
	initOnce.Do(func() {
		var data []byte
		data, stdClassifierErr = tables.ReadFile("tables/syntax.yaml")
		if stdClassifierErr != nil {
			return
		}
		var st SyntaxTable
		if st, stdClassifierErr = ParseSyntaxTable(data); stdClassifierErr != nil {
			return
		}
		stdClassifier, stdClassifierErr = NewClassifier(st)
	})
	return stdClassifier, stdClassifierErr
}

// Classify returns the symbol category of a token. The token has to be
// matched in full by one of the patterns; otherwise Classify returns an
// error of kind slogo.KindUnknownCommand.
func (c *Classifier) Classify(token string) (Category, error) {
	scanner, err := c.lexer.Scanner([]byte(token))
	if err != nil {
		return NoCategory, slogo.Errorf(slogo.KindUnknownCommand, token, "cannot scan token: %v", err)
	}
	tok, err, eos := scanner.Next()
	if eos || err != nil {
		return NoCategory, slogo.Errorf(slogo.KindUnknownCommand, token, "token not recognized")
	}
	t := tok.(*lexmachine.Token)
	if t.TC != 0 || len(t.Lexeme) != len(token) {
		return NoCategory, slogo.Errorf(slogo.KindUnknownCommand, token,
			"token not recognized, matched only %q", string(t.Lexeme))
	}
	cat := Category(t.Type)
	tracer().P("token", token).Debugf("classified as %s", cat)
	return cat, nil
}

// ScanToken classifies a single token and, if it is a command, resolves its
// canonical name.
func ScanToken(word string, c *Classifier, r *Resolver) (Token, error) {
	cat, err := c.Classify(word)
	if err != nil {
		return Token{Lexeme: word}, err
	}
	t := Token{Lexeme: word, Category: cat}
	if cat == Command {
		canonical, ok := r.Resolve(word)
		if !ok {
			return t, slogo.Errorf(slogo.KindUnknownCommand, word,
				"no such command in language %s", r.Language())
		}
		t.Canonical = canonical
	}
	return t, nil
}

