// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package sfgeom

import (
	"github.com/juju/errors"
	"github.com/twpayne/go-geom"

	"github.com/juju/sfgeom/rdata"
)

// MatrixToCoords reads an N by 2 matrix into coordinates, one per row,
// preserving row order. Matrices with any other column count are
// rejected; the values themselves pass through untouched, NaN and Inf
// included.
func MatrixToCoords(m *rdata.Matrix) ([]geom.Coord, error) {
	if m == nil {
		return nil, errors.NotValidf("nil coordinate matrix")
	}
	if m.Cols() != 2 {
		return nil, errors.NotValidf("coordinate matrix with %d columns", m.Cols())
	}
	coords := make([]geom.Coord, m.Rows())
	for i := range coords {
		coords[i] = geom.Coord{m.At(i, 0), m.At(i, 1)}
	}
	return coords, nil
}

// MatrixToPoints reads an N by 2 matrix into standalone points, one per
// row, under the same contract as MatrixToCoords.
func MatrixToPoints(m *rdata.Matrix) ([]*geom.Point, error) {
	coords, err := MatrixToCoords(m)
	if err != nil {
		return nil, errors.Trace(err)
	}
	points := make([]*geom.Point, len(coords))
	for i, c := range coords {
		points[i] = geom.NewPoint(geom.XY).MustSetCoords(c)
	}
	return points, nil
}

// NewPoint returns a point Geom at (x, y).
func NewPoint(x, y float64) Geom {
	return Geom{T: geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{x, y})}
}

// MultiPointFromMatrix builds a multipoint from the rows of an N by 2
// matrix.
func MultiPointFromMatrix(m *rdata.Matrix) (Geom, error) {
	points, err := MatrixToPoints(m)
	if err != nil {
		return Geom{}, errors.Trace(err)
	}
	mp := geom.NewMultiPoint(geom.XY)
	for _, p := range points {
		if err := mp.Push(p); err != nil {
			return Geom{}, errors.Trace(err)
		}
	}
	return Geom{T: mp}, nil
}

// LineStringFromMatrix builds a linestring from the rows of an N by 2
// matrix. No minimum coordinate count is enforced.
func LineStringFromMatrix(m *rdata.Matrix) (Geom, error) {
	ls, err := lineStringFromMatrix(m)
	if err != nil {
		return Geom{}, errors.Trace(err)
	}
	return Geom{T: ls}, nil
}

// MultiLineStringFromList builds a multilinestring from a list of N by 2
// matrices, one linestring per element, order preserved.
func MultiLineStringFromList(x rdata.List) (Geom, error) {
	mls := geom.NewMultiLineString(geom.XY)
	for i, el := range x {
		m, err := rdata.AsMatrix(el)
		if err != nil {
			return Geom{}, errors.Annotatef(err, "linestring %d", i)
		}
		ls, err := lineStringFromMatrix(m)
		if err != nil {
			return Geom{}, errors.Annotatef(err, "linestring %d", i)
		}
		if err := mls.Push(ls); err != nil {
			return Geom{}, errors.Trace(err)
		}
	}
	return Geom{T: mls}, nil
}

// PolygonFromList builds a polygon from a list of N by 2 ring matrices.
// Element 0 is always the exterior ring; any further elements are
// interior rings in their original order. Rings are not checked for
// closure or winding.
func PolygonFromList(x rdata.List) (Geom, error) {
	poly, err := polygonFromList(x)
	if err != nil {
		return Geom{}, errors.Trace(err)
	}
	return Geom{T: poly}, nil
}

// MultiPolygonFromList builds a multipolygon from a list of polygon
// payloads, each itself a list of ring matrices.
func MultiPolygonFromList(x rdata.List) (Geom, error) {
	mp := geom.NewMultiPolygon(geom.XY)
	for i, el := range x {
		rings, err := rdata.AsList(el)
		if err != nil {
			return Geom{}, errors.Annotatef(err, "polygon %d", i)
		}
		poly, err := polygonFromList(rings)
		if err != nil {
			return Geom{}, errors.Annotatef(err, "polygon %d", i)
		}
		if err := mp.Push(poly); err != nil {
			return Geom{}, errors.Trace(err)
		}
	}
	return Geom{T: mp}, nil
}

func lineStringFromMatrix(m *rdata.Matrix) (*geom.LineString, error) {
	coords, err := MatrixToCoords(m)
	if err != nil {
		return nil, errors.Trace(err)
	}
	ls := geom.NewLineString(geom.XY)
	if _, err := ls.SetCoords(coords); err != nil {
		return nil, errors.Trace(err)
	}
	return ls, nil
}

func polygonFromList(x rdata.List) (*geom.Polygon, error) {
	if len(x) == 0 {
		return nil, errors.NotValidf("polygon with no rings")
	}
	poly := geom.NewPolygon(geom.XY)
	for i, el := range x {
		m, err := rdata.AsMatrix(el)
		if err != nil {
			return nil, errors.Annotatef(err, "ring %d", i)
		}
		coords, err := MatrixToCoords(m)
		if err != nil {
			return nil, errors.Annotatef(err, "ring %d", i)
		}
		ring := geom.NewLinearRing(geom.XY)
		if _, err := ring.SetCoords(coords); err != nil {
			return nil, errors.Trace(err)
		}
		if err := poly.Push(ring); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return poly, nil
}
