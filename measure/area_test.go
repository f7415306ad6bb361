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
	"errors"
	"math"
	"testing"

	"planmark.dev/takeoff"
	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/scale"
)

// square returns the vertices of an axis-aligned square with the given
// upper-left corner and side length, in normalized coordinates.
func square(x, y, side float64) []coord.Point {
	return []coord.Point{
		{X: x, Y: y},
		{X: x + side, Y: y},
		{X: x + side, Y: y + side},
		{X: x, Y: y + side},
	}
}

func TestAreaDegenerate(t *testing.T) {
	v := coord.View{Width: 612, Height: 792, Zoom: 1}
	inputs := [][]coord.Point{
		nil,
		{},
		{{X: 0.5, Y: 0.5}},
		{{X: 0.1, Y: 0.1}, {X: 0.9, Y: 0.9}},
	}
	scales := []*scale.Scale{nil, quarter, scale.Parse("1:100")}
	for _, points := range inputs {
		for _, s := range scales {
			got, err := Area(points, v, s)
			if err != nil {
				t.Fatal(err)
			}
			if got != "0 sq ft" {
				t.Errorf("Area(%v, %v) = %q, want \"0 sq ft\"", points, s, got)
			}
		}
	}
}

func TestArea(t *testing.T) {
	v := coord.View{Width: 720, Height: 720, Zoom: 1}

	tests := []struct {
		name   string
		points []coord.Point
		view   coord.View
		s      *scale.Scale
		want   string
	}{
		{"square pixels", square(0.25, 0.25, 0.5), v, nil, "129600 sq px"},
		{"square feet", square(0.25, 0.25, 0.5), v, quarter, "3 sq ft"},
		{"square inches", square(0, 0, 0.125), v, quarter, "25 sq in"},
		{"zoomed", square(0.25, 0.25, 0.5), coord.View{Width: 720, Height: 720, Zoom: 3}, quarter, "3 sq ft"},
		{"square metres", square(0.25, 0.25, 0.5), v, scale.Parse("1:100"), "161.29 sq m"},
		{"square centimetres", square(0, 0, 0.125), v, scale.Parse("1:1"), "10.1 sq cm"},
		{"triangle", []coord.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, v, nil, "259200 sq px"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Area(tc.points, tc.view, tc.s)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAreaInvalidView(t *testing.T) {
	bad := []coord.View{
		{Width: 720, Height: 720, Zoom: 0},
		{Width: 0, Height: 720, Zoom: 1},
		{Width: 720, Height: 720, Zoom: 1, DPI: -1},
	}
	for _, v := range bad {
		_, err := Area(square(0, 0, 0.5), v, quarter)
		var valueErr *takeoff.ValueError
		if !errors.As(err, &valueErr) {
			t.Errorf("%v: got %v, want *ValueError", v, err)
		}
	}
}

func TestPixelAreaSquare(t *testing.T) {
	for _, P := range []float64{100, 612, 1000, 2592} {
		for _, s := range []float64{0.01, 0.1, 0.3, 0.5, 0.99} {
			v := coord.View{Width: P, Height: P, Zoom: 1}
			got := PixelArea(square(0, 0, s), v)
			want := (s * P) * (s * P)
			if math.Abs(got-want) > 1e-6*want {
				t.Errorf("side %g on %g page: got %g, want %g", s, P, got, want)
			}
		}
	}
}

// The orientation of the polygon must not change the sign of the area.
func TestPixelAreaOrientation(t *testing.T) {
	v := coord.View{Width: 500, Height: 400, Zoom: 1.5}
	ccw := square(0.1, 0.2, 0.3)
	cw := make([]coord.Point, len(ccw))
	for i, p := range ccw {
		cw[len(ccw)-1-i] = p
	}
	a, b := PixelArea(ccw, v), PixelArea(cw, v)
	if a <= 0 || math.Abs(a-b) > 1e-9*a {
		t.Errorf("got %g and %g", a, b)
	}
}

func TestRealAreaMonotone(t *testing.T) {
	v := coord.View{Width: 1000, Height: 1000, Zoom: 1.25}
	for _, s := range []*scale.Scale{nil, quarter, scale.Parse(`1" = 50'`), scale.Parse("1:200")} {
		prev := -1.0
		for side := 0.0; side <= 1; side += 0.01 {
			pixelArea := PixelArea(square(0, 0, side), v)
			area, err := RealArea(pixelArea, v.Zoom, s, v.Resolution())
			if err != nil {
				t.Fatal(err)
			}
			if area < prev {
				t.Fatalf("%v: area decreased from %g to %g", s, prev, area)
			}
			prev = area
		}
	}
}

func TestAreaFromPixelsInvalid(t *testing.T) {
	if _, err := AreaFromPixels(-5, 1, nil, 72); err == nil {
		t.Error("negative area accepted")
	}
	if _, err := AreaFromPixels(5, math.Inf(1), quarter, 72); err == nil {
		t.Error("infinite zoom accepted")
	}
}

func TestAreaBadScale(t *testing.T) {
	v := coord.View{Width: 720, Height: 720, Zoom: 1}
	triangle := []coord.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	tests := []struct {
		name  string
		s     *scale.Scale
		field string
	}{
		{"zero ratio", &scale.Scale{Ratio: 0, Unit: scale.Metric}, "scale ratio"},
		{"NaN ratio", &scale.Scale{Ratio: math.NaN()}, "scale ratio"},
		{"tiny ratio", &scale.Scale{Ratio: 1e-200, Unit: scale.Metric}, "real area"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Area(triangle, v, tc.s)
			var valueErr *takeoff.ValueError
			if !errors.As(err, &valueErr) {
				t.Fatalf("got %q, %v, want *ValueError", got, err)
			}
			if valueErr.Field != tc.field {
				t.Errorf("field = %q, want %q", valueErr.Field, tc.field)
			}
		})
	}
}
