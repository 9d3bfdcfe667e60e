// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package sfgeom

import (
	"github.com/twpayne/go-geom"

	"github.com/juju/sfgeom/rdata"
)

// Encode converts a Geom back into its tagged sfg representation, the
// exact inverse of Decode. The six sf variants round trip coordinate for
// coordinate; any other wrapped geometry has no sfg form and encodes to
// nil rather than an error.
func Encode(g Geom) *rdata.Object {
	switch t := g.T.(type) {
	case *geom.Point:
		return sfg(rdata.Doubles{t.X(), t.Y()}, "POINT")
	case *geom.MultiPoint:
		return sfg(coordsToMatrix(t.Coords()), "MULTIPOINT")
	case *geom.LineString:
		return sfg(coordsToMatrix(t.Coords()), "LINESTRING")
	case *geom.MultiLineString:
		return sfg(ringsToList(t.Coords()), "MULTILINESTRING")
	case *geom.Polygon:
		return sfg(ringsToList(t.Coords()), "POLYGON")
	case *geom.MultiPolygon:
		polys := t.Coords()
		out := make(rdata.List, len(polys))
		for i, rings := range polys {
			out[i] = ringsToList(rings)
		}
		return sfg(out, "MULTIPOLYGON")
	}
	return nil
}

func sfg(value interface{}, kind string) *rdata.Object {
	return rdata.NewObject(value, "XY", kind, "sfg")
}

func coordsToMatrix(coords []geom.Coord) *rdata.Matrix {
	rows := make([][2]float64, len(coords))
	for i, c := range coords {
		rows[i] = [2]float64{c[0], c[1]}
	}
	return rdata.CoordMatrix(rows)
}

// ringsToList lays a polygon or multilinestring out as a list of N by 2
// matrices. For polygons the exterior ring stays at index 0.
func ringsToList(rings [][]geom.Coord) rdata.List {
	out := make(rdata.List, len(rings))
	for i, ring := range rings {
		out[i] = coordsToMatrix(ring)
	}
	return out
}
