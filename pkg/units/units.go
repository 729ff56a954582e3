// Package units provides named physical units, scalar and array quantities,
// and equivalency rules that let otherwise incompatible units (pixels and
// angles, pixels and distances) be converted into each other.
//
// Dimensional bookkeeping is delegated to gonum's unit package: every Unit
// carries a *unit.Unit whose value is the unit's size in SI base units
// (radians for angles, metres for lengths, seconds for time) and whose
// dimensions decide which conversions are legal.
package units

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/unit"
)

var (
	// ErrConversion is returned when a quantity cannot be expressed in the
	// requested unit, even with the supplied equivalencies.
	ErrConversion = errors.New("unit conversion error")

	// ErrUnknownUnit is returned when a unit name is not registered.
	ErrUnknownUnit = errors.New("unknown unit")
)

// PixelDim is the dimension of image pixels. It is orthogonal to every SI
// dimension, so pixels only convert to other units through an Equivalency.
var PixelDim = unit.NewDimension("pix")

// Unit is a named unit of measure.
type Unit struct {
	name string
	def  *unit.Unit
}

// Unit returns the SI definition of u and lets a Unit satisfy unit.Uniter.
func (u Unit) Unit() *unit.Unit {
	if u.def == nil {
		return unit.New(1, nil)
	}
	return u.def
}

// Name returns the symbol of the unit, e.g. "pc" or "deg pc".
func (u Unit) Name() string { return u.name }

func (u Unit) String() string {
	if u.name == "" {
		return "dimensionless"
	}
	return u.name
}

// Scale returns the size of one u in SI base units.
func (u Unit) Scale() float64 { return u.Unit().Value() }

// Dimensions returns a copy of the dimensions of u.
func (u Unit) Dimensions() unit.Dimensions {
	out := make(unit.Dimensions)
	for d, p := range u.Unit().Dimensions() {
		if p != 0 {
			out[d] = p
		}
	}
	return out
}

// IsEquivalent reports whether u and other measure the same dimension and
// can therefore be converted into each other by a plain scale factor.
func (u Unit) IsEquivalent(other Unit) bool {
	return unit.DimensionsMatch(u, other)
}

// IsDimensionless reports whether u has no dimensions at all.
func (u Unit) IsDimensionless() bool {
	return len(u.Dimensions()) == 0
}

// Mul returns the product unit u*other, e.g. deg*pc.
func (u Unit) Mul(other Unit) Unit {
	dims := u.Dimensions()
	for d, p := range other.Dimensions() {
		dims[d] += p
		if dims[d] == 0 {
			delete(dims, d)
		}
	}

	var name string
	switch {
	case u.name == "":
		name = other.name
	case other.name == "":
		name = u.name
	default:
		name = u.name + " " + other.name
	}

	return Unit{name: name, def: unit.New(u.Scale()*other.Scale(), dims)}
}

// Define returns a new unit named name equal to scale SI base units of the
// given dimensions. The unit is not added to the registry.
func Define(name string, scale float64, dims unit.Dimensions) Unit {
	return Unit{name: name, def: unit.New(scale, dims)}
}

var registry = make(map[string]Unit)

func register(u Unit, aliases ...string) Unit {
	registry[u.name] = u
	for _, a := range aliases {
		registry[a] = u
	}
	return u
}

var (
	angle  = unit.Dimensions{unit.AngleDim: 1}
	length = unit.Dimensions{unit.LengthDim: 1}
	period = unit.Dimensions{unit.TimeDim: 1}
)

// Registered units.
var (
	Dimensionless = register(Unit{name: "", def: unit.New(1, nil)}, "dimensionless")

	Pixel = register(Define("pix", 1, unit.Dimensions{PixelDim: 1}), "pixel")

	Radian    = register(Define("rad", 1, angle), "radian")
	Degree    = register(Define("deg", math.Pi/180, angle), "degree")
	Arcminute = register(Define("arcmin", math.Pi/(180*60), angle), "arcminute")
	Arcsecond = register(Define("arcsec", math.Pi/(180*3600), angle), "arcsecond")

	Metre            = register(Define("m", 1, length), "meter", "metre")
	Centimetre       = register(Define("cm", 1e-2, length))
	Kilometre        = register(Define("km", 1e3, length))
	AstronomicalUnit = register(Define("AU", 1.495978707e11, length), "au")
	LightYear        = register(Define("lyr", 9.4607304725808e15, length), "lightyear")
	Parsec           = register(Define("pc", 3.0856775814913673e16, length), "parsec")
	Kiloparsec       = register(Define("kpc", 3.0856775814913673e19, length))
	Megaparsec       = register(Define("Mpc", 3.0856775814913673e22, length))

	Second = register(Define("s", 1, period), "second")
	Minute = register(Define("min", 60, period), "minute")
	Hour   = register(Define("h", 3600, period), "hour")
	Year   = register(Define("yr", 3.15576e7, period), "year")
)

// Lookup returns the registered unit with the given name or alias.
func Lookup(name string) (Unit, error) {
	u, ok := registry[strings.TrimSpace(name)]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// Names returns the sorted list of registered unit names and aliases.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		if n != "" {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}
