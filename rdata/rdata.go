// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

// Package rdata models the R object shapes that sf geometries are built
// from: class tagged values, numeric vectors, two column coordinate
// matrices and heterogeneous lists. A nil element stands in for the R
// NULL marker wherever a geometry may be absent.
package rdata

import (
	"github.com/juju/errors"
)

// Doubles is a plain numeric vector, the payload of a POINT sfg.
type Doubles []float64

// Matrix is a rectangular numeric table with row major storage, standing
// in for an R matrix of doubles.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix wraps data, laid out row by row, as a rows by cols matrix.
func NewMatrix(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.NotValidf("%dx%d matrix", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, errors.NotValidf("%d values for a %dx%d matrix", len(data), rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// CoordMatrix builds the N by 2 matrix used for coordinate payloads, one
// xy pair per row.
func CoordMatrix(rows [][2]float64) *Matrix {
	data := make([]float64, 0, len(rows)*2)
	for _, r := range rows {
		data = append(data, r[0], r[1])
	}
	return &Matrix{rows: len(rows), cols: 2, data: data}
}

// Rows returns the number of rows in the matrix.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns in the matrix.
func (m *Matrix) Cols() int { return m.cols }

// At returns the value at row r, column c. Indexes are not range checked
// beyond what the backing slice enforces.
func (m *Matrix) At(r, c int) float64 { return m.data[r*m.cols+c] }

// Row returns row r as a slice into the matrix storage.
func (m *Matrix) Row(r int) []float64 {
	return m.data[r*m.cols : (r+1)*m.cols]
}

// List is an ordered heterogeneous container. Elements may be Doubles,
// *Matrix, List, *Object or nil, the null marker.
type List []interface{}

// Object is a value carrying an ordered class attribute. For sf
// geometries the attribute has the shape ["XY", "POINT", "sfg"]: a
// dimensionality marker, the geometry variant, and the base class.
type Object struct {
	Class []string
	Value interface{}
}

// NewObject wraps value with the given class attribute.
func NewObject(value interface{}, class ...string) *Object {
	return &Object{Class: class, Value: value}
}

// Kind returns the variant element of the class attribute, the second
// entry, or "" when the object carries no usable class. A nil object has
// kind "".
func (o *Object) Kind() string {
	if o == nil || len(o.Class) < 2 {
		return ""
	}
	return o.Class[1]
}

// Is reports whether the object's variant tag equals kind.
func (o *Object) Is(kind string) bool {
	return o.Kind() == kind
}

// AsDoubles coerces v to a numeric vector, looking through a class
// attribute if one is present.
func AsDoubles(v interface{}) (Doubles, error) {
	switch d := v.(type) {
	case Doubles:
		return d, nil
	case []float64:
		return Doubles(d), nil
	case *Object:
		if d == nil {
			break
		}
		return AsDoubles(d.Value)
	}
	return nil, errors.NotValidf("%T as numeric vector", v)
}

// AsMatrix coerces v to a matrix, looking through a class attribute if
// one is present.
func AsMatrix(v interface{}) (*Matrix, error) {
	switch m := v.(type) {
	case *Matrix:
		if m == nil {
			break
		}
		return m, nil
	case *Object:
		if m == nil {
			break
		}
		return AsMatrix(m.Value)
	}
	return nil, errors.NotValidf("%T as matrix", v)
}

// AsList coerces v to a list, looking through a class attribute if one
// is present.
func AsList(v interface{}) (List, error) {
	switch l := v.(type) {
	case List:
		return l, nil
	case []interface{}:
		return List(l), nil
	case *Object:
		if l == nil {
			break
		}
		return AsList(l.Value)
	}
	return nil, errors.NotValidf("%T as list", v)
}
