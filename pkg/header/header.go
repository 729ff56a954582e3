// Package header holds the coordinate metadata that accompanies a 2D map.
//
// A Header is an ordered set of keyword/value cards in the style of a FITS
// header. Keys keep their insertion order; setting an existing key replaces
// its value in place.
package header

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// ErrKeyNotFound is returned when a required keyword is absent.
var ErrKeyNotFound = errors.New("header keyword not found")

// PixelScaleKey is the keyword holding the plate scale in degrees per pixel
// along the second image axis.
const PixelScaleKey = "CDELT2"

// Header is an ordered keyword/value mapping.
type Header struct {
	keys   []string
	values map[string]interface{}
}

// New returns an empty header.
func New() *Header {
	return &Header{values: make(map[string]interface{})}
}

// FromPairs builds a header from alternating key, value arguments.
func FromPairs(kv ...interface{}) (*Header, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("odd number of key/value arguments: %d", len(kv))
	}

	h := New()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("header key at position %d is %T, not string", i, kv[i])
		}
		h.Set(key, kv[i+1])
	}
	return h, nil
}

// Set stores value under key, appending key if it is new.
func (h *Header) Set(key string, value interface{}) {
	if h.values == nil {
		h.values = make(map[string]interface{})
	}
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value stored under key.
func (h *Header) Get(key string) (interface{}, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Has reports whether key is present.
func (h *Header) Has(key string) bool {
	_, ok := h.values[key]
	return ok
}

// Delete removes key. Deleting a missing key does nothing.
func (h *Header) Delete(key string) {
	if _, ok := h.values[key]; !ok {
		return
	}
	delete(h.values, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keywords in insertion order.
func (h *Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Len returns the number of keywords.
func (h *Header) Len() int { return len(h.keys) }

// Float returns the value under key as a float64. Integer and numeric string
// values are converted; a missing key wraps ErrKeyNotFound.
func (h *Header) Float(key string) (float64, error) {
	v, ok := h.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("header keyword %s is not numeric: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("header keyword %s has non-numeric type %T", key, v)
	}
}

// Text returns the value under key formatted as text.
func (h *Header) Text(key string) (string, error) {
	v, ok := h.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

// Clone returns an independent copy of h.
func (h *Header) Clone() *Header {
	c := New()
	for _, k := range h.keys {
		c.Set(k, h.values[k])
	}
	return c
}

// Equal reports whether h and other hold the same keys, in the same order,
// with equal values.
func (h *Header) Equal(other *Header) bool {
	if h == nil || other == nil {
		return h == other
	}
	if len(h.keys) != len(other.keys) {
		return false
	}
	for i, k := range h.keys {
		if other.keys[i] != k || !reflect.DeepEqual(other.values[k], h.values[k]) {
			return false
		}
	}
	return true
}
