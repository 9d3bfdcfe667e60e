// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package sfgeom_test

import (
	"math"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"github.com/twpayne/go-geom"
	gc "gopkg.in/check.v1"

	"github.com/juju/sfgeom"
	"github.com/juju/sfgeom/rdata"
)

type decodeSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&decodeSuite{})

func mustMatrix(c *gc.C, rows, cols int, data []float64) *rdata.Matrix {
	m, err := rdata.NewMatrix(rows, cols, data)
	c.Assert(err, jc.ErrorIsNil)
	return m
}

func sfg(value interface{}, kind string) *rdata.Object {
	return rdata.NewObject(value, "XY", kind, "sfg")
}

func (s *decodeSuite) TestMatrixToCoordsPreservesRowOrder(c *gc.C) {
	m := mustMatrix(c, 3, 2, []float64{1, 1, 2, 2, 3, 3})
	coords, err := sfgeom.MatrixToCoords(m)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(coords, jc.DeepEquals, []geom.Coord{{1, 1}, {2, 2}, {3, 3}})
}

func (s *decodeSuite) TestMatrixToCoordsRejectsColumnCount(c *gc.C) {
	for _, cols := range []int{1, 3} {
		m := mustMatrix(c, 2, cols, make([]float64, 2*cols))
		_, err := sfgeom.MatrixToCoords(m)
		c.Check(err, jc.Satisfies, errors.IsNotValid)
		_, err = sfgeom.MatrixToPoints(m)
		c.Check(err, jc.Satisfies, errors.IsNotValid)
	}
}

func (s *decodeSuite) TestMatrixToCoordsNilMatrix(c *gc.C) {
	_, err := sfgeom.MatrixToCoords(nil)
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
}

func (s *decodeSuite) TestMatrixToCoordsEmptyMatrix(c *gc.C) {
	m := mustMatrix(c, 0, 2, []float64{})
	coords, err := sfgeom.MatrixToCoords(m)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(coords, gc.HasLen, 0)
}

func (s *decodeSuite) TestMatrixToPoints(c *gc.C) {
	m := mustMatrix(c, 2, 2, []float64{0, 1, 2, 3})
	points, err := sfgeom.MatrixToPoints(m)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(points, gc.HasLen, 2)
	c.Check(points[0].Coords(), jc.DeepEquals, geom.Coord{0, 1})
	c.Check(points[1].Coords(), jc.DeepEquals, geom.Coord{2, 3})
}

func (s *decodeSuite) TestMatrixToCoordsPassesNaNThrough(c *gc.C) {
	m := mustMatrix(c, 1, 2, []float64{math.NaN(), math.Inf(1)})
	coords, err := sfgeom.MatrixToCoords(m)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(math.IsNaN(coords[0][0]), jc.IsTrue)
	c.Check(math.IsInf(coords[0][1], 1), jc.IsTrue)
}

func (s *decodeSuite) TestDecodePoint(c *gc.C) {
	g, err := sfgeom.Decode(sfg(rdata.Doubles{0, 10}, "POINT"))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(g.Kind(), gc.Equals, sfgeom.Point)
	p := g.T.(*geom.Point)
	c.Check(p.X(), gc.Equals, 0.0)
	c.Check(p.Y(), gc.Equals, 10.0)
}

func (s *decodeSuite) TestDecodePointBadLength(c *gc.C) {
	_, err := sfgeom.Decode(sfg(rdata.Doubles{0, 10, 20}, "POINT"))
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
}

func (s *decodeSuite) TestDecodeMultiPoint(c *gc.C) {
	m := mustMatrix(c, 3, 2, []float64{1, 1, 2, 2, 3, 3})
	g, err := sfgeom.Decode(sfg(m, "MULTIPOINT"))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(g.Kind(), gc.Equals, sfgeom.MultiPoint)
	mp := g.T.(*geom.MultiPoint)
	c.Assert(mp.NumPoints(), gc.Equals, 3)
	c.Check(mp.Coords(), jc.DeepEquals, []geom.Coord{{1, 1}, {2, 2}, {3, 3}})
}

func (s *decodeSuite) TestDecodeLineString(c *gc.C) {
	m := mustMatrix(c, 3, 2, []float64{0, 0, 1, 2, 2, 4})
	g, err := sfgeom.Decode(sfg(m, "LINESTRING"))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(g.Kind(), gc.Equals, sfgeom.LineString)
	ls := g.T.(*geom.LineString)
	c.Check(ls.Coords(), jc.DeepEquals, []geom.Coord{{0, 0}, {1, 2}, {2, 4}})
}

func (s *decodeSuite) TestDecodeMultiLineString(c *gc.C) {
	payload := rdata.List{
		mustMatrix(c, 2, 2, []float64{0, 0, 1, 1}),
		mustMatrix(c, 3, 2, []float64{2, 2, 3, 3, 4, 4}),
	}
	g, err := sfgeom.Decode(sfg(payload, "MULTILINESTRING"))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(g.Kind(), gc.Equals, sfgeom.MultiLineString)
	mls := g.T.(*geom.MultiLineString)
	c.Assert(mls.NumLineStrings(), gc.Equals, 2)
	c.Check(mls.Coords(), jc.DeepEquals, [][]geom.Coord{
		{{0, 0}, {1, 1}},
		{{2, 2}, {3, 3}, {4, 4}},
	})
}

func (s *decodeSuite) TestDecodePolygonWithHole(c *gc.C) {
	payload := rdata.List{
		mustMatrix(c, 4, 2, []float64{0, 0, 4, 0, 4, 4, 0, 0}),
		mustMatrix(c, 4, 2, []float64{1, 1, 2, 1, 2, 2, 1, 1}),
	}
	g, err := sfgeom.Decode(sfg(payload, "POLYGON"))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(g.Kind(), gc.Equals, sfgeom.Polygon)
	poly := g.T.(*geom.Polygon)
	c.Assert(poly.NumLinearRings(), gc.Equals, 2)
	c.Check(poly.Coords(), jc.DeepEquals, [][]geom.Coord{
		{{0, 0}, {4, 0}, {4, 4}, {0, 0}},
		{{1, 1}, {2, 1}, {2, 2}, {1, 1}},
	})
}

func (s *decodeSuite) TestDecodePolygonSingleRing(c *gc.C) {
	payload := rdata.List{mustMatrix(c, 4, 2, []float64{0, 0, 4, 0, 4, 4, 0, 0})}
	g, err := sfgeom.Decode(sfg(payload, "POLYGON"))
	c.Assert(err, jc.ErrorIsNil)
	poly := g.T.(*geom.Polygon)
	c.Check(poly.NumLinearRings(), gc.Equals, 1)
}

func (s *decodeSuite) TestDecodePolygonNoRings(c *gc.C) {
	_, err := sfgeom.Decode(sfg(rdata.List{}, "POLYGON"))
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
}

func (s *decodeSuite) TestDecodePolygonBadRingColumns(c *gc.C) {
	payload := rdata.List{mustMatrix(c, 2, 3, make([]float64, 6))}
	_, err := sfgeom.Decode(sfg(payload, "POLYGON"))
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
	c.Assert(err, gc.ErrorMatches, "ring 0: .* not valid")
}

func (s *decodeSuite) TestDecodeMultiPolygon(c *gc.C) {
	payload := rdata.List{
		rdata.List{
			mustMatrix(c, 4, 2, []float64{0, 0, 4, 0, 4, 4, 0, 0}),
			mustMatrix(c, 4, 2, []float64{1, 1, 2, 1, 2, 2, 1, 1}),
		},
		rdata.List{
			mustMatrix(c, 4, 2, []float64{10, 10, 12, 10, 12, 12, 10, 10}),
		},
	}
	g, err := sfgeom.Decode(sfg(payload, "MULTIPOLYGON"))
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(g.Kind(), gc.Equals, sfgeom.MultiPolygon)
	mp := g.T.(*geom.MultiPolygon)
	c.Assert(mp.NumPolygons(), gc.Equals, 2)
	c.Check(mp.Polygon(0).NumLinearRings(), gc.Equals, 2)
	c.Check(mp.Polygon(1).NumLinearRings(), gc.Equals, 1)
}

func (s *decodeSuite) TestDecodeUnsupportedClass(c *gc.C) {
	for _, obj := range []*rdata.Object{
		nil,
		rdata.NewObject(rdata.List{}),
		rdata.NewObject(rdata.List{}, "XY"),
		sfg(rdata.List{}, "GEOMETRYCOLLECTION"),
		sfg(rdata.Doubles{0, 0}, "CIRCULARSTRING"),
	} {
		_, err := sfgeom.Decode(obj)
		c.Check(err, jc.Satisfies, errors.IsNotSupported)
	}
}

func (s *decodeSuite) TestDecodeWrongPayloadShape(c *gc.C) {
	// A POINT carrying a matrix payload is malformed, not unsupported.
	m := mustMatrix(c, 1, 2, []float64{0, 0})
	_, err := sfgeom.Decode(sfg(m, "POINT"))
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
}

func (s *decodeSuite) TestDecodeDefaultFallsBackToOrigin(c *gc.C) {
	g := sfgeom.DecodeDefault(sfg(rdata.List{}, "GEOMETRYCOLLECTION"))
	c.Assert(g.Kind(), gc.Equals, sfgeom.Point)
	p := g.T.(*geom.Point)
	c.Check(p.X(), gc.Equals, 0.0)
	c.Check(p.Y(), gc.Equals, 0.0)
}

func (s *decodeSuite) TestDecodeDefaultPassesThrough(c *gc.C) {
	g := sfgeom.DecodeDefault(sfg(rdata.Doubles{3, 4}, "POINT"))
	p := g.T.(*geom.Point)
	c.Check(p.X(), gc.Equals, 3.0)
	c.Check(p.Y(), gc.Equals, 4.0)
}
