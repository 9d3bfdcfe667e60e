// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

// Package sfgeom converts between sf simple feature geometries, modelled
// as tagged R values by the rdata package, and go-geom geometries.
//
// The decoder accepts the six single geometry sfg variants (POINT,
// MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON and MULTIPOLYGON) and
// wraps the result in a Geom. The encoder inverts the mapping exactly,
// so a well formed sfg survives a decode/encode round trip unchanged.
// GEOMETRYCOLLECTION objects are not supported in either direction.
//
// Collections of geometries (sfc objects) are handled as lists with
// positional nulls: a nil list element decodes to a nil slot and a nil
// slot encodes back to a nil element.
package sfgeom

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Kind names for the six sf variants, as used by Geom.Kind, ClassOf and
// VectorClass.
const (
	Point           = "point"
	MultiPoint      = "multipoint"
	LineString      = "linestring"
	MultiLineString = "multilinestring"
	Polygon         = "polygon"
	MultiPolygon    = "multipolygon"

	// GeometryCollection is the sentinel kind reported for mixed or
	// empty geometry sequences. It is never decoded or encoded.
	GeometryCollection = "geometrycollection"
)

// Geom wraps a single go-geom geometry. It is the unit of exchange
// between the decoder and the encoder: the wrapped value is owned
// outright by whoever holds the Geom and is never shared between two of
// them. Handing a Geom to Encode gives up that ownership.
type Geom struct {
	T geom.T
}

// Kind returns the lowercase variant name of the wrapped geometry, or ""
// for geometries outside the six sf variants.
func (g Geom) Kind() string {
	switch g.T.(type) {
	case *geom.Point:
		return Point
	case *geom.MultiPoint:
		return MultiPoint
	case *geom.LineString:
		return LineString
	case *geom.MultiLineString:
		return MultiLineString
	case *geom.Polygon:
		return Polygon
	case *geom.MultiPolygon:
		return MultiPolygon
	}
	return ""
}

// String renders the geometry as WKT.
func (g Geom) String() string {
	if g.T == nil {
		return "<nil geometry>"
	}
	s, err := wkt.Marshal(g.T)
	if err != nil {
		return "<geometry>"
	}
	return s
}

// Bounds returns the axis aligned bounding box of the wrapped geometry,
// in the form spatial indexes consume.
func (g Geom) Bounds() *geom.Bounds {
	return g.T.Bounds()
}

// BoundingRect returns the lower left and upper right corners of the
// geometry's bounding box.
func (g Geom) BoundingRect() (min, max geom.Coord) {
	b := g.T.Bounds()
	return geom.Coord{b.Min(0), b.Min(1)}, geom.Coord{b.Max(0), b.Max(1)}
}
