package units

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-12

// TestLookup verifies registered names and aliases resolve to the same unit
func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Unit
	}{
		{"pc", Parsec},
		{"parsec", Parsec},
		{"deg", Degree},
		{"pixel", Pixel},
		{"arcsec", Arcsecond},
		{"", Dimensionless},
	}

	for _, tt := range tests {
		got, err := Lookup(tt.name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", tt.name, err)
		}
		if got.Name() != tt.want.Name() || got.Scale() != tt.want.Scale() {
			t.Errorf("Lookup(%q): expected %s, got %s", tt.name, tt.want, got)
		}
	}

	if _, err := Lookup("furlong"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Expected ErrUnknownUnit for unregistered unit, got %v", err)
	}

	if len(Names()) == 0 {
		t.Error("Expected registered unit names, got none")
	}
}

// TestIsEquivalent checks dimensional compatibility between units
func TestIsEquivalent(t *testing.T) {
	if !Parsec.IsEquivalent(Kilometre) {
		t.Error("Expected pc to be equivalent to km")
	}
	if !Degree.IsEquivalent(Arcsecond) {
		t.Error("Expected deg to be equivalent to arcsec")
	}
	if Parsec.IsEquivalent(Second) {
		t.Error("Expected pc not to be equivalent to s")
	}
	if Pixel.IsEquivalent(Degree) {
		t.Error("Expected pix not to be equivalent to deg")
	}
	if !Dimensionless.IsDimensionless() || Parsec.IsDimensionless() {
		t.Error("IsDimensionless reported the wrong result")
	}
}

// TestDirectConversion converts between units of the same dimension
func TestDirectConversion(t *testing.T) {
	q, err := New(1, Kiloparsec).To(Parsec)
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(q.Value(), 1000, tol, tol) {
		t.Errorf("Expected 1000 pc, got %s", q)
	}

	q, err = New(1, Degree).To(Arcsecond)
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(q.Value(), 3600, tol, tol) {
		t.Errorf("Expected 3600 arcsec, got %s", q)
	}

	if _, err := New(1, Parsec).To(Second); !errors.Is(err, ErrConversion) {
		t.Errorf("Expected ErrConversion for pc to s, got %v", err)
	}
}

// TestLinearEquivalency exercises both directions of a custom rule
func TestLinearEquivalency(t *testing.T) {
	eq := []Equivalency{Linear(Pixel, Degree, 0.01)}

	ang, err := New(10, Pixel).To(Degree, eq...)
	if err != nil {
		t.Fatalf("pix to deg failed: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(ang.Value(), 0.1, tol, tol) {
		t.Errorf("Expected 0.1 deg, got %s", ang)
	}

	// arcmin is reached through the deg side of the rule
	pix, err := New(36, Arcminute).To(Pixel, eq...)
	if err != nil {
		t.Fatalf("arcmin to pix failed: %v", err)
	}
	if !scalar.EqualWithinAbsOrRel(pix.Value(), 60, tol, tol) {
		t.Errorf("Expected 60 pix, got %s", pix)
	}

	if _, err := New(1, Parsec).To(Pixel, eq...); !errors.Is(err, ErrConversion) {
		t.Errorf("Expected ErrConversion for pc to pix, got %v", err)
	}

	if _, err := New(1, Pixel).To(Degree); !errors.Is(err, ErrConversion) {
		t.Errorf("Expected ErrConversion without equivalencies, got %v", err)
	}
}

// TestDimensionlessAngles collapses an angle times a length into a length
func TestDimensionlessAngles(t *testing.T) {
	prod := New(0.01, Degree).Mul(New(100, Parsec))
	if prod.Unit().Name() != "deg pc" {
		t.Errorf("Expected unit deg pc, got %q", prod.Unit().Name())
	}

	if _, err := prod.To(Parsec); !errors.Is(err, ErrConversion) {
		t.Errorf("Expected ErrConversion without the angle rule, got %v", err)
	}

	got, err := prod.To(Parsec, DimensionlessAngles())
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	want := 0.01 * math.Pi / 180 * 100
	if !scalar.EqualWithinAbsOrRel(got.Value(), want, tol, tol) {
		t.Errorf("Expected %g pc, got %s", want, got)
	}

	r, err := New(1, Radian).To(Dimensionless, DimensionlessAngles())
	if err != nil {
		t.Fatalf("rad to dimensionless failed: %v", err)
	}
	if r.Value() != 1 {
		t.Errorf("Expected 1, got %s", r)
	}
}

// TestArrayQuantity verifies array shape survives conversion
func TestArrayQuantity(t *testing.T) {
	src := []float64{1, 2}
	q := NewArray(src, Parsec)
	src[0] = 99

	if q.IsScalar() {
		t.Error("Expected array quantity, got scalar")
	}
	if q.Values()[0] != 1 {
		t.Errorf("Expected NewArray to copy its input, got %v", q.Values())
	}

	km, err := q.To(Kilometre)
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	if km.IsScalar() || km.Len() != 2 {
		t.Errorf("Expected a 2-element array, got %s", km)
	}
	if !scalar.EqualWithinAbsOrRel(km.Values()[1], 2*3.0856775814913673e13, tol, tol) {
		t.Errorf("Expected 2 pc in km, got %g", km.Values()[1])
	}
}

// TestParse reads quantities from text
func TestParse(t *testing.T) {
	q, err := Parse("250 pc")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if q.Value() != 250 || q.Unit().Name() != "pc" || !q.IsScalar() {
		t.Errorf("Expected 250 pc, got %s", q)
	}

	q, err = Parse("3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !q.Unit().IsDimensionless() || q.String() != "3" {
		t.Errorf("Expected dimensionless 3, got %s", q)
	}

	for _, s := range []string{"", "pc", "1 furlong"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Expected error parsing %q, got nil", s)
		}
	}
}

func TestString(t *testing.T) {
	if s := New(1.5, Degree).String(); s != "1.5 deg" {
		t.Errorf("Expected %q, got %q", "1.5 deg", s)
	}
	if s := NewArray([]float64{1, 2}, Parsec).String(); s != "[1 2] pc" {
		t.Errorf("Expected %q, got %q", "[1 2] pc", s)
	}
}
