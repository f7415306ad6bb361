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

package annotation

import (
	"testing"

	"seehuhn.de/go/geom/vec"

	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/scale"
)

var letter = coord.View{Width: 612, Height: 792, Zoom: 1}

func TestMeasurementRefresh(t *testing.T) {
	m := &Measurement{
		Common:   testCommon(0, 0),
		EndPoint: coord.Point{X: 0.5, Y: 0},
	}
	if m.Fresh(letter) {
		t.Error("new measurement is fresh")
	}

	if err := m.Refresh(letter, nil); err != nil {
		t.Fatal(err)
	}
	if m.DisplayValue != "306px" || m.RawPixelDistance != 306 {
		t.Errorf("got %q, %g", m.DisplayValue, m.RawPixelDistance)
	}
	if !m.Fresh(letter) {
		t.Error("measurement not fresh after refresh")
	}

	quarter := scale.Parse(`1/4" = 1'-0"`)
	if err := m.Refresh(letter, quarter); err != nil {
		t.Fatal(err)
	}
	if m.DisplayValue != `17'-0"` {
		t.Errorf("got %q", m.DisplayValue)
	}
	if m.Scale != quarter {
		t.Error("scale not stored")
	}

	zoomed := letter
	zoomed.Zoom = 2
	if m.Fresh(zoomed) {
		t.Error("fresh after zoom change")
	}
	display, err := m.Display(zoomed)
	if err != nil {
		t.Fatal(err)
	}
	if display != `17'-0"` {
		t.Errorf("zoomed display %q", display)
	}
	if m.RawPixelDistance != 306 {
		t.Error("Display modified the measurement")
	}

	m.SetEndPoint(coord.Point{X: 0.25, Y: 0})
	if m.Stamp != 0 || m.Fresh(letter) {
		t.Error("fresh after end point change")
	}
	display, err = m.Display(letter)
	if err != nil {
		t.Fatal(err)
	}
	if display != `8'-6"` {
		t.Errorf("got %q", display)
	}
	if m.DisplayValue != `17'-0"` {
		t.Error("Display modified the cached value")
	}

	if err := m.Refresh(letter, quarter); err != nil {
		t.Fatal(err)
	}
	m.SetScale(scale.Parse("1:100"))
	if m.Fresh(letter) {
		t.Error("fresh after scale change")
	}

	if err := m.Refresh(coord.View{}, nil); err == nil {
		t.Error("invalid view accepted")
	}
}

func TestMeasurementStaleAfterDecode(t *testing.T) {
	m := &Measurement{
		Common:   testCommon(0, 0),
		EndPoint: coord.Point{X: 0.5, Y: 0},
	}
	if err := m.Refresh(letter, nil); err != nil {
		t.Fatal(err)
	}
	payload, err := Serialize(m)
	if err != nil {
		t.Fatal(err)
	}
	a, err := ParseIdentity(m.Identity(), payload)
	if err != nil {
		t.Fatal(err)
	}
	if !a.(*Measurement).Fresh(letter) {
		t.Error("decoded measurement is not fresh")
	}
}

func TestAreaRefresh(t *testing.T) {
	a := &Area{
		Common: testCommon(0, 0),
		Points: []coord.Point{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 0.5}},
	}
	if a.Fresh(letter) {
		t.Error("new area is fresh")
	}

	if err := a.Refresh(letter, nil); err != nil {
		t.Fatal(err)
	}
	if a.DisplayArea != "121176 sq px" || a.RawPixelArea != 121176 {
		t.Errorf("got %q, %g", a.DisplayArea, a.RawPixelArea)
	}
	if !a.Fresh(letter) {
		t.Error("area not fresh after refresh")
	}

	points := []coord.Point{{X: 0, Y: 0}, {X: 0.25, Y: 0}, {X: 0.25, Y: 0.25}}
	a.SetPoints(points)
	if a.Fresh(letter) {
		t.Error("fresh after vertex change")
	}
	points[0].X = 0.125
	if a.Points[0].X != 0 {
		t.Error("SetPoints did not copy")
	}

	if err := a.Refresh(letter, nil); err != nil {
		t.Fatal(err)
	}
	a.SetScale(scale.Parse(`1/8" = 1'-0"`))
	if a.Fresh(letter) {
		t.Error("fresh after scale change")
	}

	if err := a.Refresh(letter, nil); err != nil {
		t.Fatal(err)
	}
	a.Move(vec.Vec2{X: 0.1})
	if a.Fresh(letter) {
		t.Error("fresh after move")
	}

	zoomed := letter
	zoomed.Zoom = 3
	if err := a.Refresh(letter, nil); err != nil {
		t.Fatal(err)
	}
	if a.Fresh(zoomed) {
		t.Error("fresh at a different zoom")
	}
}
