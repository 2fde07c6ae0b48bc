package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slogo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		toks  []string
	}{
		{input: "fd 50", toks: []string{"fd", "50"}},
		{input: "  fd\t50 \n\n rt   90  ", toks: []string{"fd", "50", "rt", "90"}},
		{input: "# a comment\nfd 10\n   # another one\n", toks: []string{"fd", "10"}},
		{input: "repeat 4 [ fd 10 ]", toks: []string{"repeat", "4", "[", "fd", "10", "]"}},
		{input: "   ", toks: nil},
	} {
		toks := Tokenize(x.input)
		if !assert.Equal(t, x.toks, toks) {
			t.Errorf("test %d failed", i)
		}
	}
}

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	c, err := StandardClassifier()
	require.NoError(t, err)
	for i, x := range []struct {
		token string
		cat   Category
	}{
		{token: "fd", cat: Command},
		{token: "FORWARD", cat: Command},
		{token: "pendown?", cat: Command},
		{token: "50", cat: Constant},
		{token: "-3.25", cat: Constant},
		{token: "+7", cat: Constant},
		{token: ":x", cat: Variable},
		{token: ":side_2", cat: Variable},
		{token: "[", cat: ListStart},
		{token: "]", cat: ListEnd},
	} {
		cat, err := c.Classify(x.token)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
		} else if cat != x.cat {
			t.Errorf("test %d: expected %q to be %s, is %s", i, x.token, x.cat, cat)
		}
	}
}

func TestClassifyRejectsPartialMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	c, err := StandardClassifier()
	require.NoError(t, err)
	for _, token := range []string{"fd50", "3x", "[fd", "@", "1.", ":"} {
		_, err := c.Classify(token)
		assert.True(t, errors.Is(err, slogo.ErrUnknownCommand), "token %q", token)
	}
}

func TestCustomSyntaxTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	st, err := ParseSyntaxTable([]byte(`
- category: Constant
  pattern: '[0-9]+'
- category: Variable
  pattern: '\$[a-z]+'
- category: Command
  pattern: '[a-z]+'
- category: ListStart
  pattern: '\('
- category: ListEnd
  pattern: '\)'
`))
	require.NoError(t, err)
	c, err := NewClassifier(st)
	require.NoError(t, err)
	cat, err := c.Classify("$abc")
	require.NoError(t, err)
	assert.Equal(t, Variable, cat)
	cat, err = c.Classify("(")
	require.NoError(t, err)
	assert.Equal(t, ListStart, cat)
	_, err = NewClassifier(SyntaxTable{{Category: "Bogus", Pattern: "x"}})
	assert.True(t, errors.Is(err, slogo.ErrConfiguration))
}

func TestScanToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	c, err := StandardClassifier()
	require.NoError(t, err)
	lang, err := LoadLanguage("english")
	require.NoError(t, err)
	r, err := NewResolver(lang)
	require.NoError(t, err)
	tok, err := ScanToken("FD", c, r)
	require.NoError(t, err)
	assert.Equal(t, Command, tok.Category)
	assert.Equal(t, "Forward", tok.Canonical)
	tok, err = ScanToken("42", c, r)
	require.NoError(t, err)
	assert.Equal(t, Constant, tok.Category)
	assert.Equal(t, "", tok.Canonical)
	_, err = ScanToken("jump", c, r)
	assert.True(t, errors.Is(err, slogo.ErrUnknownCommand))
	assert.Equal(t, slogo.KindUnknownCommand, slogo.KindOf(err))
}
