package corelang

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slogo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMachine struct {
	roster *slogo.Roster
	rnd    *rand.Rand
	ran    []string
}

func newTestMachine() *testMachine {
	return &testMachine{
		roster: slogo.NewRoster(""),
		rnd:    rand.New(rand.NewSource(1)),
	}
}

func (m *testMachine) Roster() *slogo.Roster { return m.roster }
func (m *testMachine) Rand() *rand.Rand      { return m.rnd }
func (m *testMachine) Run(seq Sequence) float64 {
	var r float64
	for _, n := range seq {
		m.ran = append(m.ran, n.Name())
		r = n.Execute(m)
	}
	return r
}

func TestCatalogFoldsPureNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.core")
	defer teardown()
	//
	c := StandardCatalog()
	sum, err := c.New("Sum", nil, []Operand{Literal(3), Literal(4)}, nil)
	require.NoError(t, err)
	assert.True(t, sum.IsKnown())
	assert.Equal(t, 7.0, sum.Result())
	prod, err := c.New("Product", nil, []Operand{ResultOf(sum), Literal(2)}, nil)
	require.NoError(t, err)
	assert.True(t, prod.IsKnown())
	assert.Equal(t, 14.0, prod.Result())
}

func TestCatalogDefersImpureNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.core")
	defer teardown()
	//
	m := newTestMachine()
	turtle := m.roster.Active()
	c := StandardCatalog()
	xcor, err := c.New("XCoordinate", []*slogo.Turtle{turtle}, nil, nil)
	require.NoError(t, err)
	assert.False(t, xcor.IsKnown())
	sum, err := c.New("Sum", nil, []Operand{ResultOf(xcor), Literal(1)}, nil)
	require.NoError(t, err)
	assert.False(t, sum.IsKnown(), "SUM over XCOR must not be folded")
	turtle.Move(10)
	m.Run(Sequence{xcor, sum})
	assert.Equal(t, 11.0, sum.Result())
}

func TestCatalogArityMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.core")
	defer teardown()
	//
	c := StandardCatalog()
	_, err := c.New("Sum", nil, []Operand{Literal(3)}, nil)
	assert.ErrorIs(t, err, slogo.ErrConfiguration)
	_, err = c.New("NoSuchThing", nil, nil, nil)
	assert.ErrorIs(t, err, slogo.ErrConfiguration)
}

func TestCatalogRegister(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.core")
	defer teardown()
	//
	c := StandardCatalog()
	double := &Kind{Name: "Double", Numeric: 1, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return 2 * n.Arg(0) }}
	require.NoError(t, c.Register(double))
	assert.ErrorIs(t, c.Register(double), slogo.ErrConfiguration)
	n, err := c.New("Double", nil, []Operand{Literal(21)}, nil)
	require.NoError(t, err)
	assert.Equal(t, 42.0, n.Result())
	_, ok := StandardCatalog().Lookup("Double")
	assert.False(t, ok, "standard catalog must not see kinds registered with a copy")
}

func TestTurtleCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.core")
	defer teardown()
	//
	m := newTestMachine()
	targets := []*slogo.Turtle{m.roster.Active()}
	c := StandardCatalog()
	build := func(name string, args ...float64) *Node {
		ops := make([]Operand, len(args))
		for i, a := range args {
			ops[i] = Literal(a)
		}
		n, err := c.New(name, targets, ops, nil)
		require.NoError(t, err)
		return n
	}
	m.Run(Sequence{build("Forward", 50), build("Left", 90), build("Forward", 20)})
	turtle := m.roster.Active()
	assert.InDelta(t, 50.0, turtle.X(), 1e-9)
	assert.InDelta(t, 20.0, turtle.Y(), 1e-9)
	assert.Equal(t, 90.0, turtle.Heading())
	assert.Equal(t, 0.0, build("PenUp").Execute(m))
	assert.False(t, turtle.IsPenDown())
	assert.Equal(t, 0.0, build("IsPenDown").Execute(m))
	assert.Equal(t, 0.0, build("HideTurtle").Execute(m))
	assert.False(t, turtle.IsVisible())
	assert.Equal(t, 3.0, build("SetBackground", 3).Execute(m))
	assert.Equal(t, 3, m.roster.Background())
	assert.Equal(t, 1.0, build("ID").Execute(m))
	assert.Equal(t, 1.0, build("Turtles").Execute(m))
	d := build("ClearScreen").Execute(m)
	assert.InDelta(t, math.Hypot(50, 20), d, 1e-9)
	assert.Equal(t, 0.0, turtle.X())
}

func TestControlCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.core")
	defer teardown()
	//
	m := newTestMachine()
	targets := []*slogo.Turtle{m.roster.Active()}
	c := StandardCatalog()
	fd, err := c.New("Forward", targets, []Operand{Literal(10)}, nil)
	require.NoError(t, err)
	rep, err := c.New("Repeat", targets, []Operand{Literal(4)}, []Sequence{{fd}})
	require.NoError(t, err)
	assert.Equal(t, 10.0, rep.Execute(m))
	assert.Equal(t, 40.0, m.roster.Active().X())
	//
	m.ran = nil
	ifelse, err := c.New("IfElse", targets, []Operand{Literal(0)},
		[]Sequence{{}, {fd}})
	require.NoError(t, err)
	ifelse.Execute(m)
	assert.Equal(t, []string{"Forward"}, m.ran)
	cond, err := c.New("If", targets, []Operand{Literal(0)}, []Sequence{{fd}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, cond.Execute(m))
	assert.Equal(t, 3, Sequence{rep, fd}.Count())
}

func TestMathCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.core")
	defer teardown()
	//
	c := StandardCatalog()
	eval := func(name string, args ...float64) float64 {
		ops := make([]Operand, len(args))
		for i, a := range args {
			ops[i] = Literal(a)
		}
		n, err := c.New(name, nil, ops, nil)
		require.NoError(t, err)
		require.True(t, n.IsKnown(), name)
		return n.Result()
	}
	assert.Equal(t, -1.0, eval("Difference", 3, 4))
	assert.Equal(t, 1.0, eval("Remainder", 7, 3))
	assert.Equal(t, 8.0, eval("Power", 2, 3))
	assert.Equal(t, -5.0, eval("Minus", 5))
	assert.InDelta(t, 1.0, eval("Sine", 90), 1e-9)
	assert.InDelta(t, 45.0, eval("ArcTangent", 1), 1e-9)
	assert.True(t, math.IsInf(eval("Quotient", 1, 0), 1))
	assert.Equal(t, 1.0, eval("LessThan", 1, 2))
	assert.Equal(t, 0.0, eval("And", 1, 0))
	assert.Equal(t, 1.0, eval("Not", 0))
	assert.Equal(t, math.Pi, eval("Pi"))
}

func TestRandom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.core")
	defer teardown()
	//
	m := newTestMachine()
	n, err := StandardCatalog().New("Random", nil, []Operand{Literal(10)}, nil)
	require.NoError(t, err)
	assert.False(t, n.IsKnown())
	for i := 0; i < 20; i++ {
		r := n.Execute(m)
		assert.True(t, r >= 0 && r < 10)
		assert.Equal(t, math.Trunc(r), r)
	}
}

func TestOperandStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slogo.core")
	defer teardown()
	//
	st := NewOperandStack()
	st.PushConstant(1).PushConstant(2).PushConstant(3)
	assert.Equal(t, 3, st.Size())
	assert.Equal(t, 3.0, st.Top().Value())
	ops, err := st.PopN(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, ops[0].Value())
	assert.Equal(t, 3.0, ops[1].Value())
	_, err = st.PopN(2)
	assert.Error(t, err)
	st.Dump()
}
