// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package sfgeom

import (
	"github.com/juju/errors"

	"github.com/juju/sfgeom/rdata"
)

// Decode converts one tagged sfg value into a Geom. Dispatch is on the
// second class element, the variant name; the leading dimensionality
// marker ("XY") is carried by every sfg but not validated here.
//
// Unknown variants, GEOMETRYCOLLECTION and untagged or nil values all
// return a NotSupported error. Payloads of the wrong shape return a
// NotValid error.
func Decode(x *rdata.Object) (Geom, error) {
	switch kind := x.Kind(); kind {
	case "POINT":
		d, err := rdata.AsDoubles(x.Value)
		if err != nil {
			return Geom{}, errors.Trace(err)
		}
		if len(d) != 2 {
			return Geom{}, errors.NotValidf("point payload of length %d", len(d))
		}
		return NewPoint(d[0], d[1]), nil

	case "MULTIPOINT":
		m, err := rdata.AsMatrix(x.Value)
		if err != nil {
			return Geom{}, errors.Trace(err)
		}
		return MultiPointFromMatrix(m)

	case "LINESTRING":
		m, err := rdata.AsMatrix(x.Value)
		if err != nil {
			return Geom{}, errors.Trace(err)
		}
		return LineStringFromMatrix(m)

	case "MULTILINESTRING":
		l, err := rdata.AsList(x.Value)
		if err != nil {
			return Geom{}, errors.Trace(err)
		}
		return MultiLineStringFromList(l)

	case "POLYGON":
		l, err := rdata.AsList(x.Value)
		if err != nil {
			return Geom{}, errors.Trace(err)
		}
		return PolygonFromList(l)

	case "MULTIPOLYGON":
		l, err := rdata.AsList(x.Value)
		if err != nil {
			return Geom{}, errors.Trace(err)
		}
		return MultiPolygonFromList(l)

	default:
		return Geom{}, errors.NotSupportedf("null or unsupported geometry class %q", kind)
	}
}

// DecodeDefault converts like Decode but never fails: anything that does
// not decode comes back as a point at the origin. Only use this where
// losing unrecognised input is acceptable.
func DecodeDefault(x *rdata.Object) Geom {
	g, err := Decode(x)
	if err != nil {
		logger.Tracef("decoding %q as origin point: %v", x.Kind(), err)
		return NewPoint(0, 0)
	}
	return g
}
