package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Quantity is a number, or an array of numbers, paired with a unit.
// Quantities are immutable; every operation returns a new value.
type Quantity struct {
	values []float64
	scalar bool
	unit   Unit
}

// New returns the scalar quantity v u.
func New(v float64, u Unit) Quantity {
	return Quantity{values: []float64{v}, scalar: true, unit: u}
}

// NewArray returns an array quantity holding a copy of vs.
func NewArray(vs []float64, u Unit) Quantity {
	values := make([]float64, len(vs))
	copy(values, vs)
	return Quantity{values: values, unit: u}
}

// Parse reads a scalar quantity written as "<number> <unit>", e.g. "250 pc"
// or "0.5 arcmin". A bare number is dimensionless.
func Parse(s string) (Quantity, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Quantity{}, errors.New("empty quantity")
	}

	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity value %q: %w", fields[0], err)
	}

	u, err := Lookup(strings.Join(fields[1:], " "))
	if err != nil {
		return Quantity{}, err
	}
	return New(v, u), nil
}

// Unit returns the unit of q.
func (q Quantity) Unit() Unit { return q.unit }

// IsScalar reports whether q holds a single number rather than an array.
func (q Quantity) IsScalar() bool { return q.scalar }

// Len returns the number of values held by q.
func (q Quantity) Len() int { return len(q.values) }

// Value returns the first value of q, which is the value of a scalar.
func (q Quantity) Value() float64 {
	if len(q.values) == 0 {
		return 0
	}
	return q.values[0]
}

// Values returns a copy of the values of q.
func (q Quantity) Values() []float64 {
	out := make([]float64, len(q.values))
	copy(out, q.values)
	return out
}

// Mul returns the product of q and a scalar quantity other, in the product
// unit of both.
func (q Quantity) Mul(other Quantity) Quantity {
	out := q.Values()
	floats.Scale(other.Value(), out)
	return Quantity{values: out, scalar: q.scalar, unit: q.unit.Mul(other.unit)}
}

// Scale returns q multiplied by the plain number f.
func (q Quantity) Scale(f float64) Quantity {
	out := q.Values()
	floats.Scale(f, out)
	return Quantity{values: out, scalar: q.scalar, unit: q.unit}
}

// To expresses q in target. Dimensionally equivalent units convert directly;
// otherwise the first equivalency connecting the two units is used.
func (q Quantity) To(target Unit, equivalencies ...Equivalency) (Quantity, error) {
	conv, err := converter(q.unit, target, equivalencies)
	if err != nil {
		return Quantity{}, err
	}

	out := make([]float64, len(q.values))
	for i, v := range q.values {
		out[i] = conv(v)
	}
	return Quantity{values: out, scalar: q.scalar, unit: target}, nil
}

func converter(src, dst Unit, equivalencies []Equivalency) (func(float64) float64, error) {
	if src.IsEquivalent(dst) {
		f := src.Scale() / dst.Scale()
		return func(x float64) float64 { return x * f }, nil
	}

	for _, eq := range equivalencies {
		if conv, ok := eq.converter(src, dst); ok {
			return conv, nil
		}
	}

	return nil, fmt.Errorf("%w: %s (%s) and %s (%s) are not convertible",
		ErrConversion, src, src.Dimensions(), dst, dst.Dimensions())
}

func (q Quantity) String() string {
	var num string
	if q.scalar {
		num = strconv.FormatFloat(q.Value(), 'g', -1, 64)
	} else {
		parts := make([]string, len(q.values))
		for i, v := range q.values {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		num = "[" + strings.Join(parts, " ") + "]"
	}

	if q.unit.name == "" {
		return num
	}
	return num + " " + q.unit.name
}
