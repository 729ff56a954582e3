package stats

import (
	"errors"

	"mapstats/pkg/header"
	"mapstats/pkg/units"
)

// Error kinds raised by the statistic base. Every error returned by a Base
// method wraps one of these, or an error from the loader, so callers can
// branch with errors.Is.
var (
	ErrType      = errors.New("wrong type")
	ErrUnit      = units.ErrConversion
	ErrShape     = errors.New("wrong shape")
	ErrAttribute = errors.New("attribute not set")
	ErrLookup    = header.ErrKeyNotFound
)
