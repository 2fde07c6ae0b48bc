package corelang

import "math"

func degrees(rad float64) float64 { return rad * 180.0 / math.Pi }
func radians(deg float64) float64 { return deg * math.Pi / 180.0 }

// Arithmetic follows IEEE 754: a quotient by zero is an infinity, the
// logarithm of a negative number is NaN.
var mathKinds = []*Kind{
	{Name: "Sum", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return n.Arg(0) + n.Arg(1) }},
	{Name: "Difference", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return n.Arg(0) - n.Arg(1) }},
	{Name: "Product", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return n.Arg(0) * n.Arg(1) }},
	{Name: "Quotient", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return n.Arg(0) / n.Arg(1) }},
	{Name: "Remainder", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return math.Mod(n.Arg(0), n.Arg(1)) }},
	{Name: "Power", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return math.Pow(n.Arg(0), n.Arg(1)) }},
	{Name: "Minus", Numeric: 1, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return -n.Arg(0) }},
	{Name: "Sine", Numeric: 1, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return math.Sin(radians(n.Arg(0))) }},
	{Name: "Cosine", Numeric: 1, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return math.Cos(radians(n.Arg(0))) }},
	{Name: "Tangent", Numeric: 1, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return math.Tan(radians(n.Arg(0))) }},
	{Name: "ArcTangent", Numeric: 1, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return degrees(math.Atan(n.Arg(0))) }},
	{Name: "NaturalLog", Numeric: 1, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return math.Log(n.Arg(0)) }},
	{Name: "Pi", Pure: true,
		Eval: func(m Machine, n *Node) float64 { return math.Pi }},
	// RANDOM max returns a whole number in [0,max).
	{Name: "Random", Numeric: 1,
		Eval: func(m Machine, n *Node) float64 {
			max := int(n.Arg(0))
			if max <= 0 {
				return 0
			}
			return float64(m.Rand().Intn(max))
		}},
}

var logicKinds = []*Kind{
	{Name: "LessThan", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return boolean(n.Arg(0) < n.Arg(1)) }},
	{Name: "GreaterThan", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return boolean(n.Arg(0) > n.Arg(1)) }},
	{Name: "Equal", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return boolean(n.Arg(0) == n.Arg(1)) }},
	{Name: "NotEqual", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return boolean(n.Arg(0) != n.Arg(1)) }},
	{Name: "And", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return boolean(n.Arg(0) != 0 && n.Arg(1) != 0) }},
	{Name: "Or", Numeric: 2, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return boolean(n.Arg(0) != 0 || n.Arg(1) != 0) }},
	{Name: "Not", Numeric: 1, Pure: true,
		Eval: func(m Machine, n *Node) float64 { return boolean(n.Arg(0) == 0) }},
}
