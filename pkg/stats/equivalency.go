package stats

import (
	"fmt"
	"math"

	"mapstats/pkg/header"
	"mapstats/pkg/units"
)

// AngSize returns the angular size of one pixel, |CDELT2| in degrees.
func (b *Base) AngSize() (units.Quantity, error) {
	if b.header == nil {
		return units.Quantity{}, fmt.Errorf("%w: header has not been given", ErrAttribute)
	}

	cdelt, err := b.header.Float(header.PixelScaleKey)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.New(math.Abs(cdelt), units.Degree), nil
}

// AngularEquiv returns the rule converting pixels to degrees at the
// current plate scale.
func (b *Base) AngularEquiv() ([]units.Equivalency, error) {
	size, err := b.AngSize()
	if err != nil {
		return nil, err
	}
	return []units.Equivalency{units.Linear(units.Pixel, units.Degree, size.Value())}, nil
}

// ToPixel converts an angular quantity to pixels.
func (b *Base) ToPixel(value interface{}) (units.Quantity, error) {
	q, err := asQuantity(value)
	if err != nil {
		return units.Quantity{}, err
	}

	equiv, err := b.AngularEquiv()
	if err != nil {
		return units.Quantity{}, err
	}
	return q.To(units.Pixel, equiv...)
}

// DistanceSize returns the physical size of one pixel at the source
// distance, in the distance's unit.
func (b *Base) DistanceSize() (units.Quantity, error) {
	size, err := b.AngSize()
	if err != nil {
		return units.Quantity{}, err
	}

	dist, err := b.Distance()
	if err != nil {
		return units.Quantity{}, err
	}

	return size.Mul(dist).To(dist.Unit(), units.DimensionlessAngles())
}

// DistanceEquiv returns the rule converting pixels to the distance's unit.
func (b *Base) DistanceEquiv() ([]units.Equivalency, error) {
	size, err := b.DistanceSize()
	if err != nil {
		return nil, err
	}
	return []units.Equivalency{units.Linear(units.Pixel, size.Unit(), size.Value())}, nil
}

// FromPixel converts a pixel quantity to target, which may be an angular
// unit or, once a distance is set, a length.
func (b *Base) FromPixel(value interface{}, target units.Unit) (units.Quantity, error) {
	q, err := asQuantity(value)
	if err != nil {
		return units.Quantity{}, err
	}

	var equiv []units.Equivalency
	if target.IsEquivalent(units.Parsec) {
		equiv, err = b.DistanceEquiv()
	} else {
		equiv, err = b.AngularEquiv()
	}
	if err != nil {
		return units.Quantity{}, err
	}
	return q.To(target, equiv...)
}

func asQuantity(value interface{}) (units.Quantity, error) {
	switch v := value.(type) {
	case units.Quantity:
		return v, nil
	case *units.Quantity:
		if v != nil {
			return *v, nil
		}
	}
	return units.Quantity{}, fmt.Errorf("%w: value must be a quantity, got %T", ErrType, value)
}
