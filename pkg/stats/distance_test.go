package stats

import (
	"errors"
	"testing"

	"mapstats/pkg/units"
)

func TestDistanceUnset(t *testing.T) {
	b := NewBase()
	if b.HasDistance() {
		t.Error("Expected no distance on a new Base")
	}
	if _, err := b.Distance(); !errors.Is(err, ErrAttribute) {
		t.Errorf("Expected ErrAttribute, got %v", err)
	}
	if _, err := b.DistanceSize(); !errors.Is(err, ErrAttribute) {
		t.Errorf("Expected ErrAttribute from DistanceSize, got %v", err)
	}
}

func TestSetDistance(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  error
	}{
		{"plain number", 250.0, ErrType},
		{"string", "250 pc", ErrType},
		{"nil pointer", (*units.Quantity)(nil), ErrType},
		{"time unit", units.New(3, units.Second), ErrUnit},
		{"angle unit", units.New(3, units.Degree), ErrUnit},
		{"array", units.NewArray([]float64{100, 200}, units.Parsec), ErrShape},
	}

	for _, tt := range tests {
		b := NewBase()
		if err := b.SetDistance(tt.value); !errors.Is(err, tt.want) {
			t.Errorf("%s: Expected %v, got %v", tt.name, tt.want, err)
		}
		if b.HasDistance() {
			t.Errorf("%s: Expected a rejected distance not to be stored", tt.name)
		}
	}
}

func TestSetDistanceKeepsValue(t *testing.T) {
	for _, q := range []units.Quantity{
		units.New(250, units.Parsec),
		units.New(8.2, units.Kiloparsec),
		units.New(1e5, units.AstronomicalUnit),
	} {
		b := NewBase()
		if err := b.SetDistance(q); err != nil {
			t.Fatalf("SetDistance(%s) failed: %v", q, err)
		}
		got, err := b.Distance()
		if err != nil {
			t.Fatalf("Distance failed: %v", err)
		}
		if got.Value() != q.Value() || got.Unit().Name() != q.Unit().Name() {
			t.Errorf("Expected %s unchanged, got %s", q, got)
		}
	}

	q := units.New(140, units.Parsec)
	b := NewBase()
	if err := b.SetDistance(&q); err != nil {
		t.Fatalf("SetDistance with pointer failed: %v", err)
	}
	if got, _ := b.Distance(); got.String() != "140 pc" {
		t.Errorf("Expected 140 pc, got %s", got)
	}
}
