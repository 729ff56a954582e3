// Package loader turns the inputs accepted by a statistic into a data array
// and its header.
//
// Supported sources:
//   - HDU or *HDU: a data array with its header attached
//   - mat.Matrix: a bare array
//   - [][]float64: bare array rows, which must all have the same length
//   - []byte, io.Reader or a string path: a YAML document with a "header"
//     mapping and "data" rows
//
// Every returned array and header is a fresh copy, so callers never share
// state with the source.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"mapstats/pkg/header"
)

var (
	// ErrUnsupportedSource is returned for source types Load cannot read.
	ErrUnsupportedSource = errors.New("unsupported data source")

	// ErrNoHeader is returned when a header is requested from a source that
	// does not carry one.
	ErrNoHeader = errors.New("source has no header")

	// ErrNoData is returned when a source carries no array values.
	ErrNoData = errors.New("source has no data")
)

// HDU is a data array paired with its header, the in-memory form of a FITS
// header/data unit.
type HDU struct {
	Data   mat.Matrix
	Header *header.Header
}

// document is the YAML layout of a map file.
type document struct {
	Header *header.Header `yaml:"header"`
	Data   [][]float64    `yaml:"data"`
}

// Load reads source. With noHeader set, only the array is extracted and the
// returned header is nil; otherwise both are required.
func Load(source interface{}, noHeader bool) (mat.Matrix, *header.Header, error) {
	var (
		data mat.Matrix
		hdr  *header.Header
		err  error
	)

	switch src := source.(type) {
	case HDU:
		data, hdr = src.Data, src.Header
	case *HDU:
		if src == nil {
			return nil, nil, fmt.Errorf("%w: nil HDU", ErrNoData)
		}
		data, hdr = src.Data, src.Header
	case mat.Matrix:
		data = src
	case [][]float64:
		data, err = fromRows(src)
	case []byte:
		data, hdr, err = decode(bytes.NewReader(src))
	case io.Reader:
		data, hdr, err = decode(src)
	case string:
		data, hdr, err = readFile(src)
	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, source)
	}
	if err != nil {
		return nil, nil, err
	}

	if data == nil {
		return nil, nil, ErrNoData
	}
	out := mat.DenseCopyOf(data)

	if noHeader {
		return out, nil, nil
	}
	if hdr == nil {
		return nil, nil, fmt.Errorf("%w: pass the header separately for %T sources", ErrNoHeader, source)
	}
	return out, hdr.Clone(), nil
}

func readFile(path string) (mat.Matrix, *header.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening map file: %w", err)
	}
	defer f.Close()

	return decode(f)
}

func decode(r io.Reader) (mat.Matrix, *header.Header, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("error parsing map document: %w", err)
	}

	data, err := fromRows(doc.Data)
	if err != nil {
		return nil, nil, err
	}
	return data, doc.Header, nil
}

func fromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNoData
	}

	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return mat.NewDense(len(rows), cols, flat), nil
}
