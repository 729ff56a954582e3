package units

import "gonum.org/v1/gonum/unit"

// Equivalency is a bidirectional conversion rule between two units that are
// not dimensionally compatible, such as pixels and degrees.
//
// Forward maps a value expressed in From to a value expressed in To; Inverse
// maps it back. Both operate on plain numbers in the rule's own units.
type Equivalency struct {
	From    Unit
	To      Unit
	Forward func(float64) float64
	Inverse func(float64) float64

	dropAngles bool
}

// Linear returns the rule "one From equals factor To". The factor is copied
// into the closures, so later changes to whatever produced it do not leak in.
func Linear(from, to Unit, factor float64) Equivalency {
	return Equivalency{
		From:    from,
		To:      to,
		Forward: func(x float64) float64 { return x * factor },
		Inverse: func(x float64) float64 { return x / factor },
	}
}

// DimensionlessAngles returns the rule treating angles as dimensionless
// numbers of radians. Under it, deg*pc converts to pc and rad to a plain
// number.
func DimensionlessAngles() Equivalency {
	return Equivalency{dropAngles: true}
}

// converter returns the function taking a value in src to a value in dst
// using eq, or false if eq does not connect the two units.
func (eq Equivalency) converter(src, dst Unit) (func(float64) float64, bool) {
	if eq.dropAngles {
		if !unit.DimensionsMatch(stripAngles(src), stripAngles(dst)) {
			return nil, false
		}
		f := src.Scale() / dst.Scale()
		return func(x float64) float64 { return x * f }, true
	}

	if eq.Forward == nil || eq.Inverse == nil {
		return nil, false
	}

	switch {
	case src.IsEquivalent(eq.From) && dst.IsEquivalent(eq.To):
		in := src.Scale() / eq.From.Scale()
		out := eq.To.Scale() / dst.Scale()
		return func(x float64) float64 { return eq.Forward(x*in) * out }, true
	case src.IsEquivalent(eq.To) && dst.IsEquivalent(eq.From):
		in := src.Scale() / eq.To.Scale()
		out := eq.From.Scale() / dst.Scale()
		return func(x float64) float64 { return eq.Inverse(x*in) * out }, true
	}
	return nil, false
}

// stripAngles returns u with its angle dimension removed.
func stripAngles(u Unit) *unit.Unit {
	dims := u.Dimensions()
	delete(dims, unit.AngleDim)
	return unit.New(u.Scale(), dims)
}
