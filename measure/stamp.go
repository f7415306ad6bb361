// planmark.dev/takeoff - drawing scale and markup geometry for construction plans
// Copyright (C) 2025  The takeoff Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package measure

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/scale"
)

// Stamp is a fingerprint of the inputs a derived display value was computed
// from: the view, the scale and the geometry.  The zero Stamp marks a value
// which has not been computed or has been invalidated.
type Stamp uint64

// NewStamp returns the stamp for a value computed from the given view, scale
// and points.  The result is never zero.
func NewStamp(v coord.View, s *scale.Scale, points ...coord.Point) Stamp {
	h := xxhash.New()
	var buf [8]byte
	putFloat := func(x float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		h.Write(buf[:])
	}

	putFloat(v.Width)
	putFloat(v.Height)
	putFloat(v.Zoom)
	putFloat(v.Resolution())

	if s == nil {
		h.Write([]byte{0})
	} else {
		h.Write([]byte{1, byte(s.Unit)})
		putFloat(s.Ratio)
		h.WriteString(s.Display)
	}

	binary.LittleEndian.PutUint64(buf[:], uint64(len(points)))
	h.Write(buf[:])
	for _, p := range points {
		putFloat(p.X)
		putFloat(p.Y)
	}

	st := Stamp(h.Sum64())
	if st == 0 {
		st = 1
	}
	return st
}

// MarshalText encodes the stamp as a hexadecimal string.
func (st Stamp) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(st), 16), nil
}

// UnmarshalText decodes a stamp written by [Stamp.MarshalText].
func (st *Stamp) UnmarshalText(text []byte) error {
	x, err := strconv.ParseUint(string(text), 16, 64)
	if err != nil {
		return err
	}
	*st = Stamp(x)
	return nil
}
