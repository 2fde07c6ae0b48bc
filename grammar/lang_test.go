package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slogo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageNames(t *testing.T) {
	assert.Equal(t, []string{"english", "french", "german", "spanish"}, LanguageNames())
}

func TestLoadLanguageByTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		name, table string
	}{
		{"", "english"},
		{"Spanish", "spanish"},
		{"es", "spanish"},
		{"de-AT", "german"},
		{"fr-CA", "french"},
		{"en-US", "english"},
	} {
		lang, err := LoadLanguage(x.name)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		assert.Equal(t, x.table, lang.Name, "test %d", i)
	}
	_, err := LoadLanguage("klingon")
	assert.True(t, errors.Is(err, slogo.ErrConfiguration))
}

func TestResolverFoldsCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	lang, err := LoadLanguage("english")
	require.NoError(t, err)
	r, err := NewResolver(lang)
	require.NoError(t, err)
	for token, canonical := range map[string]string{
		"fd": "Forward", "FORWARD": "Forward", "Sum": "Sum", "MAKE": "MakeVariable",
		"repeat": "Repeat", "PenDown?": "IsPenDown",
	} {
		c, ok := r.Resolve(token)
		assert.True(t, ok, "token %q", token)
		assert.Equal(t, canonical, c)
	}
	_, ok := r.Resolve("avanza")
	assert.False(t, ok)
	assert.Equal(t, "english", r.Language())
	assert.Equal(t, []string{"forward", "fd"}, r.Aliases("Forward"))
}

func TestResolverRejectsDuplicateAliases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	lang, err := ParseLanguage([]byte(`
name: broken
tag: en
commands:
  Forward: [go]
  Backward: [GO]
`))
	require.NoError(t, err)
	_, err = NewResolver(lang)
	assert.True(t, errors.Is(err, slogo.ErrConfiguration))
}

// Every shipped language must be unambiguous and every command it knows,
// except the definition form, must have an arity.
func TestShippedLanguagesAreConsistent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	at, err := StandardArityTable()
	require.NoError(t, err)
	c, err := StandardClassifier()
	require.NoError(t, err)
	for _, name := range LanguageNames() {
		lang, err := LoadLanguage(name)
		require.NoError(t, err)
		_, err = NewResolver(lang)
		assert.NoError(t, err, "language %s", name)
		for canonical, aliases := range lang.Commands {
			for _, a := range aliases {
				cat, err := c.Classify(a)
				assert.NoError(t, err, "alias %q of %s", a, name)
				assert.Equal(t, Command, cat, "alias %q of %s", a, name)
			}
			if canonical == "MakeVariable" {
				continue
			}
			_, err := at.ArityOf(canonical)
			assert.NoError(t, err, "%s in %s", canonical, name)
		}
	}
}

func TestArityTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.grammar")
	defer teardown()
	//
	at, err := StandardArityTable()
	require.NoError(t, err)
	a, err := at.ArityOf("Forward")
	require.NoError(t, err)
	assert.Equal(t, Arity{Numeric: 1}, a)
	a, err = at.ArityOf("IfElse")
	require.NoError(t, err)
	assert.Equal(t, Arity{Numeric: 1, Lists: 2}, a)
	_, err = at.ArityOf("Teleport")
	assert.True(t, errors.Is(err, slogo.ErrConfiguration))
	_, err = ParseArityTable([]byte("Forward: [1]\n"))
	assert.True(t, errors.Is(err, slogo.ErrConfiguration))
	assert.Contains(t, at.Commands(), "Repeat")
}
