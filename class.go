// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package sfgeom

import (
	"strings"

	"github.com/juju/collections/set"
	"github.com/juju/errors"

	"github.com/juju/sfgeom/rdata"
)

// ClassOf reports the collective kind of a decoded geometry sequence:
// the shared variant name when every present geometry agrees, and the
// geometrycollection sentinel otherwise. Agreement is over the whole
// sequence, not just until the first mismatch. Nil slots neither confirm
// nor break homogeneity, so an empty or all nil sequence also reports
// the sentinel.
func ClassOf(geoms []*Geom) string {
	kinds := set.NewStrings()
	for _, g := range geoms {
		if g == nil {
			continue
		}
		kinds.Add(g.Kind())
	}
	if kinds.Size() != 1 {
		return GeometryCollection
	}
	kind := kinds.Values()[0]
	if kind == "" {
		return GeometryCollection
	}
	return kind
}

// VectorClass returns the four element class attribute attached to a
// geometry vector of the given kind, for example ["rs_POINT", "rsgeo",
// "vctrs_vctr", "list"]. The strings match what the R side attaches, so
// vectors built here are interchangeable with ones built there.
func VectorClass(kind string) []string {
	return []string{"rs_" + strings.ToUpper(kind), "rsgeo", "vctrs_vctr", "list"}
}

// AsGeomVector wraps an encoded geometry list with the vector class for
// kind.
func AsGeomVector(x rdata.List, kind string) *rdata.Object {
	return rdata.NewObject(x, VectorClass(kind)...)
}

// NewGeomVector encodes geoms and wraps the result with the class
// derived by ClassOf, producing a complete geometry vector in one step.
func NewGeomVector(geoms []*Geom) *rdata.Object {
	return AsGeomVector(EncodeList(geoms), ClassOf(geoms))
}

// IsGeomVector reports whether x carries a geometry vector class.
func IsGeomVector(x *rdata.Object) bool {
	return x != nil && len(x.Class) > 0 && strings.HasPrefix(x.Class[0], "rs_")
}

// VectorKind extracts the lowercase kind from a geometry vector's class
// attribute.
func VectorKind(x *rdata.Object) (string, error) {
	if !IsGeomVector(x) {
		return "", errors.NotValidf("geometry vector class %v", classOf(x))
	}
	return strings.ToLower(strings.TrimPrefix(x.Class[0], "rs_")), nil
}

func classOf(x *rdata.Object) []string {
	if x == nil {
		return nil
	}
	return x.Class
}
