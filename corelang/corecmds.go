package corelang

import (
	"github.com/npillmayer/slogo"
)

// Turtle commands operate on every target turtle of a node. Their result is
// the result for the last target.
func each(n *Node, f func(t *slogo.Turtle) float64) float64 {
	var r float64
	for _, t := range n.targets {
		r = f(t)
	}
	return r
}

// first returns the turtle a query is answered for.
func first(n *Node) *slogo.Turtle {
	if len(n.targets) == 0 {
		return nil
	}
	return n.targets[0]
}

func boolean(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// --- Motion ----------------------------------------------------------------

var turtleKinds = []*Kind{
	{Name: "Forward", Numeric: 1, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			return each(n, func(t *slogo.Turtle) float64 { return t.Move(n.Arg(0)) })
		}},
	{Name: "Backward", Numeric: 1, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			d := n.Arg(0)
			each(n, func(t *slogo.Turtle) float64 { return t.Move(-d) })
			return d
		}},
	{Name: "Left", Numeric: 1, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			return each(n, func(t *slogo.Turtle) float64 { return t.Turn(n.Arg(0)) })
		}},
	{Name: "Right", Numeric: 1, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			deg := n.Arg(0)
			each(n, func(t *slogo.Turtle) float64 { return t.Turn(-deg) })
			return deg
		}},
	{Name: "SetHeading", Numeric: 1, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			return each(n, func(t *slogo.Turtle) float64 { return t.SetHeading(n.Arg(0)) })
		}},
	{Name: "SetTowards", Numeric: 2, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			return each(n, func(t *slogo.Turtle) float64 { return t.Towards(n.Arg(0), n.Arg(1)) })
		}},
	{Name: "SetPosition", Numeric: 2, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			return each(n, func(t *slogo.Turtle) float64 { return t.SetPosition(n.Arg(0), n.Arg(1)) })
		}},
	{Name: "Home", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			return each(n, (*slogo.Turtle).Home)
		}},
	{Name: "ClearScreen", Category: StateReset,
		Eval: func(m Machine, n *Node) float64 {
			return each(n, (*slogo.Turtle).Home)
		}},
}

// --- Queries ---------------------------------------------------------------

var queryKinds = []*Kind{
	{Name: "XCoordinate", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			if t := first(n); t != nil {
				return t.X()
			}
			return 0
		}},
	{Name: "YCoordinate", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			if t := first(n); t != nil {
				return t.Y()
			}
			return 0
		}},
	{Name: "Heading", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			if t := first(n); t != nil {
				return t.Heading()
			}
			return 0
		}},
	{Name: "IsPenDown", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			t := first(n)
			return boolean(t != nil && t.IsPenDown())
		}},
	{Name: "IsShowing", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			t := first(n)
			return boolean(t != nil && t.IsVisible())
		}},
	{Name: "ID", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			if t := first(n); t != nil {
				return float64(t.ID())
			}
			return 0
		}},
	{Name: "Turtles", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			return float64(m.Roster().Len())
		}},
}

// --- Pen and appearance ----------------------------------------------------

var penKinds = []*Kind{
	{Name: "PenDown", Category: PenToggle,
		Eval: func(m Machine, n *Node) float64 {
			each(n, func(t *slogo.Turtle) float64 { t.SetPen(true); return 1 })
			return 1
		}},
	{Name: "PenUp", Category: PenToggle,
		Eval: func(m Machine, n *Node) float64 {
			each(n, func(t *slogo.Turtle) float64 { t.SetPen(false); return 0 })
			return 0
		}},
	{Name: "ShowTurtle", Category: VisibilityToggle,
		Eval: func(m Machine, n *Node) float64 {
			each(n, func(t *slogo.Turtle) float64 { t.SetVisible(true); return 1 })
			return 1
		}},
	{Name: "HideTurtle", Category: VisibilityToggle,
		Eval: func(m Machine, n *Node) float64 {
			each(n, func(t *slogo.Turtle) float64 { t.SetVisible(false); return 0 })
			return 0
		}},
	{Name: "SetBackground", Numeric: 1, Category: BackgroundChange,
		Eval: func(m Machine, n *Node) float64 {
			m.Roster().SetBackground(int(n.Arg(0)))
			return n.Arg(0)
		}},
	{Name: "SetPenColor", Numeric: 1, Category: PenColorChange,
		Eval: func(m Machine, n *Node) float64 {
			inx := int(n.Arg(0))
			each(n, func(t *slogo.Turtle) float64 { t.SetPenColor(inx); return 0 })
			return n.Arg(0)
		}},
	{Name: "SetPenSize", Numeric: 1, Category: PenSizeChange,
		Eval: func(m Machine, n *Node) float64 {
			each(n, func(t *slogo.Turtle) float64 { t.SetPenSize(n.Arg(0)); return 0 })
			return n.Arg(0)
		}},
	{Name: "SetShape", Numeric: 1, Category: ShapeChange,
		Eval: func(m Machine, n *Node) float64 {
			inx := int(n.Arg(0))
			each(n, func(t *slogo.Turtle) float64 { t.SetShape(inx); return 0 })
			return n.Arg(0)
		}},
	{Name: "GetPenColor", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			if t := first(n); t != nil {
				return float64(t.State().Pen.Color)
			}
			return 0
		}},
	{Name: "GetShape", Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			if t := first(n); t != nil {
				return float64(t.State().Shape)
			}
			return 0
		}},
}

// --- Control ---------------------------------------------------------------

// Control commands return the result of the last command executed in their
// list argument, or 0 if no command was executed.
var controlKinds = []*Kind{
	{Name: "Repeat", Numeric: 1, Lists: 1, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			var r float64
			for i := 0; i < int(n.Arg(0)); i++ {
				r = m.Run(n.List(0))
			}
			return r
		}},
	{Name: "If", Numeric: 1, Lists: 1, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			if n.Arg(0) != 0 {
				return m.Run(n.List(0))
			}
			return 0
		}},
	{Name: "IfElse", Numeric: 1, Lists: 2, Category: TransformUpdate,
		Eval: func(m Machine, n *Node) float64 {
			if n.Arg(0) != 0 {
				return m.Run(n.List(0))
			}
			return m.Run(n.List(1))
		}},
}
