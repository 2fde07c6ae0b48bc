package evaluator_test

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slogo"
	"github.com/npillmayer/slogo/evaluator"
	"github.com/npillmayer/slogo/grammar"
	"github.com/npillmayer/slogo/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInterpreter(t *testing.T, opts ...evaluator.Option) (*evaluator.Interpreter, *vm.Recorder) {
	rec := &vm.Recorder{}
	opts = append([]evaluator.Option{
		evaluator.WithRenderer(rec),
		evaluator.WithRand(rand.New(rand.NewSource(42))),
	}, opts...)
	intp, err := evaluator.NewInterpreter(opts...)
	require.NoError(t, err)
	return intp, rec
}

func TestForward(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, rec := newInterpreter(t)
	r, err := intp.Submit("FORWARD 50")
	require.NoError(t, err)
	assert.Equal(t, 50.0, r)
	turtle := intp.TurtleSnapshot()
	assert.InDelta(t, 50.0, turtle.X, 1e-9)
	assert.InDelta(t, 0.0, turtle.Y, 1e-9)
	assert.Equal(t, []int{1}, rec.Expected())
	require.Len(t, rec.Notifications(), 1)
}

func TestSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t)
	r, err := intp.Submit("SUM 3 4")
	require.NoError(t, err)
	assert.Equal(t, 7.0, r)
}

func TestConstantDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t)
	r, err := intp.Submit("MAKE :X 10")
	require.NoError(t, err)
	assert.Equal(t, 10.0, r)
	_, err = intp.Submit("FORWARD :X")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, intp.TurtleSnapshot().X, 1e-9)
	consts := intp.Constants()
	require.Len(t, consts, 1)
	assert.Equal(t, "X", consts[0].Name)
	c, err := intp.UpdateConstant("X", "2.50")
	require.NoError(t, err)
	assert.Equal(t, "2.5", c.Literal)
	_, err = intp.UpdateConstant("Y", "1")
	assert.ErrorIs(t, err, slogo.ErrUndefinedVariable)
}

func TestUnmatchedListEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t)
	_, err := intp.Submit("]")
	require.Error(t, err)
	assert.ErrorIs(t, err, slogo.ErrMalformedProgram)
	assert.Equal(t, slogo.KindMalformedProgram, slogo.KindOf(err))
}

func TestRejectedRedefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, rec := newInterpreter(t)
	_, err := intp.Submit("MAKE :X 5")
	require.NoError(t, err)
	before := intp.TurtleSnapshot()
	_, err = intp.Submit("MAKE :X [FORWARD 10]")
	assert.ErrorIs(t, err, slogo.ErrRedefinitionConflict)
	assert.Equal(t, before, intp.TurtleSnapshot())
	assert.Empty(t, intp.Macros())
	assert.Empty(t, rec.Notifications())
}

func TestParseErrorLeavesTurtlesUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, rec := newInterpreter(t)
	_, err := intp.Submit("fd 10 rt 90 fd")
	assert.ErrorIs(t, err, slogo.ErrMalformedProgram)
	assert.Equal(t, 0.0, intp.TurtleSnapshot().X)
	assert.Empty(t, rec.Notifications())
	h := intp.History()
	require.Len(t, h, 1)
	assert.True(t, h[0].Failed())
}

func TestMutationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, rec := newInterpreter(t)
	_, err := intp.Submit("fd 10 repeat 2 [ lt 90 fd 5 ] pu setxy 0 0")
	require.NoError(t, err)
	var cmds []string
	for _, n := range rec.Notifications() {
		cmds = append(cmds, n.Command)
	}
	assert.Equal(t, []string{"Forward", "Left", "Forward", "Left", "Forward", "Repeat",
		"PenUp", "SetPosition"}, cmds)
	notes := rec.Notifications()
	assert.InDelta(t, 10.0, notes[2].Turtle.X, 1e-9)
	assert.InDelta(t, 5.0, notes[2].Turtle.Y, 1e-9)
	assert.InDelta(t, 5.0, notes[4].Turtle.X, 1e-9)
	assert.InDelta(t, 5.0, notes[4].Turtle.Y, 1e-9)
	assert.Equal(t, []int{6}, rec.Expected())
}

func TestQueriesReadStateAtExecution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t)
	_, err := intp.Submit("fd 10 fd xcor fd sum xcor 1")
	require.NoError(t, err)
	assert.InDelta(t, 41.0, intp.TurtleSnapshot().X, 1e-9)
	r, err := intp.Submit("repeat 3 [ fd xcor ]")
	require.NoError(t, err)
	assert.InDelta(t, 164.0, r, 1e-9)
	assert.InDelta(t, 328.0, intp.TurtleSnapshot().X, 1e-9)
}

func TestConditionals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t)
	_, err := intp.Submit("ifelse less? xcor 5 [ fd 100 ] [ bk 100 ]")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, intp.TurtleSnapshot().X, 1e-9)
	_, err = intp.Submit("ifelse less? xcor 5 [ fd 100 ] [ bk 100 ]")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, intp.TurtleSnapshot().X, 1e-9)
	r, err := intp.Submit("if pendown? [ pu ]")
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
	r, err = intp.Submit("pendown?")
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestMacros(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t)
	_, err := intp.Submit("make :side 20")
	require.NoError(t, err)
	_, err = intp.Submit("make :square repeat 4 [ fd :side lt 90 ]")
	require.NoError(t, err)
	_, err = intp.Submit(":square")
	require.NoError(t, err)
	turtle := intp.TurtleSnapshot()
	assert.InDelta(t, 0.0, turtle.X, 1e-9)
	assert.InDelta(t, 0.0, turtle.Y, 1e-9)
	assert.Equal(t, 0.0, turtle.Heading)
	macros := intp.Macros()
	require.Len(t, macros, 1)
	assert.Equal(t, "square", macros[0].Name)
}

func TestLanguages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t, evaluator.WithLanguage("de"))
	assert.Equal(t, "german", intp.Language())
	_, err := intp.Submit("vw 10")
	require.NoError(t, err)
	_, err = intp.Submit("fd 10")
	assert.ErrorIs(t, err, slogo.ErrUnknownCommand)
	require.NoError(t, intp.SetLanguage("english"))
	_, err = intp.Submit("FD 10")
	require.NoError(t, err)
	assert.InDelta(t, 20.0, intp.TurtleSnapshot().X, 1e-9)
	assert.ErrorIs(t, intp.SetLanguage("klingon"), slogo.ErrConfiguration)
	_, err = evaluator.NewInterpreter(evaluator.WithLanguage("klingon"))
	assert.ErrorIs(t, err, slogo.ErrConfiguration)
}

func TestShippedLanguagesStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	names := grammar.LanguageNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		intp, err := evaluator.NewInterpreter(evaluator.WithLanguage(name))
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, intp.Language())
		}
	}
	intp, _ := newInterpreter(t)
	r, err := intp.Submit("pendown?")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
	r, err = intp.Submit("less? 1 2")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
}

func TestMultipleTurtles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t, evaluator.WithTurtleName("Tortoise"))
	assert.Equal(t, "Tortoise", intp.TurtleSnapshot().Name)
	snap := intp.NewTurtle()
	assert.Equal(t, "Tortoise II", snap.Name)
	_, err := intp.Submit("fd 10 id")
	require.NoError(t, err)
	r, err := intp.Submit("id")
	require.NoError(t, err)
	assert.Equal(t, 2.0, r)
	_, err = intp.AddTurtle("Speedy", 5, 5, 90)
	require.NoError(t, err)
	_, err = intp.Submit("fd 5")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, intp.TurtleSnapshot().Y, 1e-9)
	r, err = intp.Submit("turtles")
	require.NoError(t, err)
	assert.Equal(t, 3.0, r)
	require.NoError(t, intp.ChooseTurtle("Tortoise"))
	assert.Equal(t, 0.0, intp.TurtleSnapshot().X)
	assert.ErrorIs(t, intp.ChooseTurtle("Nobody"), slogo.ErrNoSuchTurtle)
	turtles := intp.Turtles()
	require.Len(t, turtles, 3)
	assert.InDelta(t, 10.0, turtles[1].X, 1e-9)
}

func TestUndo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t)
	_, err := intp.Submit("fd 10 rt 90")
	require.NoError(t, err)
	assert.True(t, intp.Undo())
	assert.Equal(t, 0.0, intp.TurtleSnapshot().Heading)
	assert.True(t, intp.Undo())
	assert.Equal(t, 0.0, intp.TurtleSnapshot().X)
	assert.False(t, intp.Undo())
}

func TestHistory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	intp, _ := newInterpreter(t)
	_, _ = intp.Submit("sum 1 2")
	_, _ = intp.Submit("bogus")
	h := intp.History()
	require.Len(t, h, 2)
	assert.Equal(t, "sum 1 2", h[0].Program)
	assert.Equal(t, 3.0, h[0].Result)
	assert.False(t, h[0].Failed())
	assert.True(t, h[1].Failed())
}

func TestRandomIsSeeded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.evaluator")
	defer teardown()
	//
	a, _ := newInterpreter(t)
	b, _ := newInterpreter(t)
	for i := 0; i < 5; i++ {
		ra, err := a.Submit("random 1000")
		require.NoError(t, err)
		rb, err := b.Submit("random 1000")
		require.NoError(t, err)
		assert.Equal(t, ra, rb)
	}
}
