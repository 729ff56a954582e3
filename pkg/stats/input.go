package stats

import (
	"fmt"

	"mapstats/pkg/header"
)

// InputDataHeader sets the data array and header together.
//
// When hdr is nil, source must carry its own header (an HDU or a map
// document) and both are taken from it. Otherwise source is read as a bare
// array and hdr is stored as the header. Loader errors are returned as is.
func (b *Base) InputDataHeader(source interface{}, hdr interface{}) error {
	if !isNilHeader(hdr) {
		b.logger.Printf("loading %T as bare data with a separate header", source)

		data, _, err := b.loader.Load(source, true)
		if err != nil {
			return err
		}
		if err := b.SetData(data); err != nil {
			return err
		}
		return b.SetHeader(hdr)
	}

	b.logger.Printf("loading data and header from %T", source)

	data, h, err := b.loader.Load(source, false)
	if err != nil {
		return err
	}
	if err := b.SetData(data); err != nil {
		return err
	}
	if err := b.SetHeader(h); err != nil {
		return fmt.Errorf("loader returned an invalid header: %w", err)
	}
	return nil
}

func isNilHeader(hdr interface{}) bool {
	if hdr == nil {
		return true
	}
	h, ok := hdr.(*header.Header)
	return ok && h == nil
}
