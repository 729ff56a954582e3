package stats

import (
	"fmt"

	"mapstats/pkg/units"
)

// Distance returns the source distance. It fails with ErrAttribute until
// SetDistance has succeeded.
func (b *Base) Distance() (units.Quantity, error) {
	if b.distance == nil {
		return units.Quantity{}, fmt.Errorf("%w: distance has not been given", ErrAttribute)
	}
	return *b.distance, nil
}

// HasDistance reports whether a distance has been set.
func (b *Base) HasDistance() bool { return b.distance != nil }

// SetDistance stores the distance to the source. value must be a scalar
// units.Quantity whose unit is a length; its unit is kept as given.
func (b *Base) SetDistance(value interface{}) error {
	var q units.Quantity
	switch v := value.(type) {
	case units.Quantity:
		q = v
	case *units.Quantity:
		if v == nil {
			return fmt.Errorf("%w: distance must be a quantity, got nil", ErrType)
		}
		q = *v
	default:
		return fmt.Errorf("%w: distance must be a quantity, got %T", ErrType, value)
	}

	if !q.Unit().IsEquivalent(units.Parsec) {
		return fmt.Errorf("%w: %s is not a valid unit of distance", ErrUnit, q.Unit())
	}

	if !q.IsScalar() {
		return fmt.Errorf("%w: distance must be a scalar quantity, got %d values", ErrShape, q.Len())
	}

	b.distance = &q
	return nil
}
