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
	"testing"

	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/scale"
)

func TestStamp(t *testing.T) {
	v := coord.View{Width: 612, Height: 792, Zoom: 1}
	s := scale.Parse(`1/4" = 1'-0"`)
	a := coord.Point{X: 0.1, Y: 0.2}
	b := coord.Point{X: 0.3, Y: 0.4}

	base := NewStamp(v, s, a, b)
	if base == 0 {
		t.Fatal("zero stamp")
	}
	if again := NewStamp(v, s, a, b); again != base {
		t.Errorf("stamp not deterministic: %x != %x", base, again)
	}

	zoomed := v
	zoomed.Zoom = 2
	changes := map[string]Stamp{
		"zoom":       NewStamp(zoomed, s, a, b),
		"dpi":        NewStamp(coord.View{Width: 612, Height: 792, Zoom: 1, DPI: 96}, s, a, b),
		"page size":  NewStamp(coord.View{Width: 792, Height: 612, Zoom: 1}, s, a, b),
		"scale":      NewStamp(v, scale.Parse(`1/8" = 1'-0"`), a, b),
		"no scale":   NewStamp(v, nil, a, b),
		"geometry":   NewStamp(v, s, a, coord.Point{X: 0.3, Y: 0.41}),
		"order":      NewStamp(v, s, b, a),
		"more point": NewStamp(v, s, a, b, b),
	}
	for name, st := range changes {
		if st == base {
			t.Errorf("changing the %s does not change the stamp", name)
		}
	}

	// the default DPI is the same as an explicit 72
	explicit := v
	explicit.DPI = 72
	if NewStamp(explicit, s, a, b) != base {
		t.Error("explicit default DPI changes the stamp")
	}
}

func TestStampText(t *testing.T) {
	for _, st := range []Stamp{0, 1, 0xdeadbeef, 1<<64 - 1} {
		text, err := st.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Stamp
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != st {
			t.Errorf("%x: got %x", uint64(st), uint64(got))
		}
	}

	var st Stamp
	if err := st.UnmarshalText([]byte("xyz")); err == nil {
		t.Error("invalid stamp accepted")
	}
}
