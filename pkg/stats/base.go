// Package stats provides the foundation shared by image statistics on 2D
// astronomical maps.
//
// A statistic embeds Base to get validated storage for its data array, its
// header and an optional source distance, together with the conversions
// between pixel, angular and physical scales derived from them:
//
//	type PowerSpectrum struct {
//		*stats.Base
//		...
//	}
//
//	b := stats.NewBase()
//	if err := b.InputDataHeader(hdu, nil); err != nil { ... }
//	if err := b.SetDistance(units.New(250, units.Parsec)); err != nil { ... }
//	lag, err := b.ToPixel(units.New(2, units.Arcminute))
//
// Derived values (AngSize, DistanceSize and the equivalencies) are computed
// from the current header and distance on every call.
package stats

import (
	"fmt"
	"io"
	"log"

	"gonum.org/v1/gonum/mat"

	"mapstats/pkg/header"
	"mapstats/pkg/loader"
	"mapstats/pkg/units"
)

// Loader reads a data source into an array and its header. With noHeader
// set, only the array is read and the header is nil.
type Loader interface {
	Load(source interface{}, noHeader bool) (mat.Matrix, *header.Header, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(source interface{}, noHeader bool) (mat.Matrix, *header.Header, error)

// Load calls f(source, noHeader).
func (f LoaderFunc) Load(source interface{}, noHeader bool) (mat.Matrix, *header.Header, error) {
	return f(source, noHeader)
}

// Option configures a Base at construction.
type Option func(*Base)

// WithoutHeader marks a statistic that does not use a header. Any header
// assigned to it is discarded.
func WithoutHeader() Option {
	return func(b *Base) { b.needHeader = false }
}

// WithoutData marks a statistic that does not use the data array. Any array
// assigned to it is discarded.
func WithoutData() Option {
	return func(b *Base) { b.noData = true }
}

// WithLoader replaces the loader used by InputDataHeader.
func WithLoader(l Loader) Option {
	return func(b *Base) { b.loader = l }
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(b *Base) { b.logger = l }
}

// Base holds the data, header and distance of one statistic instance.
// It is not safe for concurrent mutation.
type Base struct {
	needHeader bool
	noData     bool

	header   *header.Header
	data     mat.Matrix
	distance *units.Quantity

	loader Loader
	logger *log.Logger
}

// NewBase returns a Base that needs a header and uses its data array,
// unless opts say otherwise.
func NewBase(opts ...Option) *Base {
	b := &Base{
		needHeader: true,
		loader:     LoaderFunc(loader.Load),
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NeedsHeader reports whether the statistic keeps a header.
func (b *Base) NeedsHeader() bool { return b.needHeader }

// UsesData reports whether the statistic keeps a data array.
func (b *Base) UsesData() bool { return !b.noData }

// Header returns the stored header, which is nil when none was set or the
// statistic does not need one.
func (b *Base) Header() *header.Header { return b.header }

// SetHeader stores h. A statistic created WithoutHeader stores nil whatever
// h is; otherwise h must be a non-nil *header.Header.
func (b *Base) SetHeader(h interface{}) error {
	if !b.needHeader {
		b.header = nil
		return nil
	}

	hdr, ok := h.(*header.Header)
	if !ok || hdr == nil {
		return fmt.Errorf("%w: header must be a valid metadata header, got %T", ErrType, h)
	}

	b.header = hdr
	return nil
}

// Data returns the stored data array, which is nil when none was set or the
// statistic does not use one.
func (b *Base) Data() mat.Matrix { return b.data }

// SetData stores values. A statistic created WithoutData stores nil whatever
// values is; otherwise values must be a mat.Matrix.
func (b *Base) SetData(values interface{}) error {
	if b.noData {
		b.data = nil
		return nil
	}

	m, ok := values.(mat.Matrix)
	if !ok {
		return fmt.Errorf("%w: data is not a numeric array, got %T", ErrType, values)
	}

	b.data = m
	return nil
}
