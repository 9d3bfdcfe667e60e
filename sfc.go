// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package sfgeom

import (
	"gopkg.in/tomb.v2"

	"github.com/juju/errors"

	"github.com/juju/sfgeom/rdata"
)

// DecodeList converts an ordered sfc geometry list leniently: nil
// elements and elements that fail to decode become nil slots, so one bad
// geometry never poisons the collection. Skipped elements are logged at
// debug level. Output length and order match the input exactly.
func DecodeList(x rdata.List) []*Geom {
	out := make([]*Geom, len(x))
	for i, el := range x {
		g, err := decodeElement(el)
		if err != nil {
			logger.Debugf("skipping geometry %d: %v", i, err)
			continue
		}
		out[i] = g
	}
	return out
}

// DecodeListStrict is DecodeList with an all or nothing contract: the
// first element that fails to decode aborts the whole collection. Nil
// elements are not failures and still come through as nil slots.
func DecodeListStrict(x rdata.List) ([]*Geom, error) {
	out := make([]*Geom, len(x))
	for i, el := range x {
		g, err := decodeElement(el)
		if err != nil {
			return nil, errors.Annotatef(err, "geometry %d", i)
		}
		out[i] = g
	}
	return out, nil
}

// DecodeListParallel decodes like DecodeList, spreading elements over
// the given number of worker goroutines. Elements are independent, so
// only slot assignment is concurrent; output order always matches the
// input regardless of scheduling.
func DecodeListParallel(x rdata.List, workers int) []*Geom {
	if workers < 2 || len(x) < 2 {
		return DecodeList(x)
	}
	if workers > len(x) {
		workers = len(x)
	}
	out := make([]*Geom, len(x))
	indexes := make(chan int)
	var t tomb.Tomb
	for w := 0; w < workers; w++ {
		t.Go(func() error {
			for i := range indexes {
				g, err := decodeElement(x[i])
				if err != nil {
					logger.Debugf("skipping geometry %d: %v", i, err)
					continue
				}
				out[i] = g
			}
			return nil
		})
	}
	for i := range x {
		indexes <- i
	}
	close(indexes)
	// Workers only ever return nil, so this cannot fail.
	_ = t.Wait()
	return out
}

// EncodeList converts decoded geometries back into an sfc geometry list.
// Nil slots, and geometries with no sfg form, become nil elements; the
// output is positionally 1:1 with the input.
func EncodeList(geoms []*Geom) rdata.List {
	out := make(rdata.List, len(geoms))
	for i, g := range geoms {
		if g == nil {
			continue
		}
		if obj := Encode(*g); obj != nil {
			out[i] = obj
			statsEncoded(1)
		}
	}
	return out
}

func decodeElement(el interface{}) (*Geom, error) {
	if el == nil {
		statsNullGeometries(1)
		return nil, nil
	}
	obj, ok := el.(*rdata.Object)
	if !ok {
		statsDecodeFailures(1)
		return nil, errors.NotValidf("geometry element of type %T", el)
	}
	g, err := Decode(obj)
	if err != nil {
		statsDecodeFailures(1)
		return nil, errors.Trace(err)
	}
	statsDecoded(1)
	return &g, nil
}
