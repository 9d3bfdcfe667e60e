// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package sfgeom

import (
	"encoding/binary"

	"github.com/juju/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// MarshalJSON encodes the wrapped geometry as GeoJSON.
func (g Geom) MarshalJSON() ([]byte, error) {
	if g.T == nil {
		return nil, errors.NotValidf("marshalling nil geometry")
	}
	return geojson.Marshal(g.T)
}

// UnmarshalJSON decodes a GeoJSON geometry.
func (g *Geom) UnmarshalJSON(data []byte) error {
	var t geom.T
	if err := geojson.Unmarshal(data, &t); err != nil {
		return errors.Trace(err)
	}
	g.T = t
	return nil
}

// MarshalBinary encodes the wrapped geometry as little endian WKB.
func (g Geom) MarshalBinary() ([]byte, error) {
	if g.T == nil {
		return nil, errors.NotValidf("marshalling nil geometry")
	}
	return wkb.Marshal(g.T, binary.LittleEndian)
}

// UnmarshalBinary decodes a WKB geometry.
func (g *Geom) UnmarshalBinary(data []byte) error {
	t, err := wkb.Unmarshal(data)
	if err != nil {
		return errors.Trace(err)
	}
	g.T = t
	return nil
}
