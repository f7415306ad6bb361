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

	"seehuhn.de/go/geom/rect"

	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/scale"
)

func TestViewportContains(t *testing.T) {
	vp := &Viewport{BBox: rect.Rect{LLx: 0.1, LLy: 0.2, URx: 0.5, URy: 0.6}}

	tests := []struct {
		name     string
		point    coord.Point
		expected bool
	}{
		{"point inside", coord.Point{X: 0.3, Y: 0.4}, true},
		{"point on left edge", coord.Point{X: 0.1, Y: 0.4}, true},
		{"point on right edge", coord.Point{X: 0.5, Y: 0.4}, true},
		{"point on top edge", coord.Point{X: 0.3, Y: 0.2}, true},
		{"point at far corner", coord.Point{X: 0.5, Y: 0.6}, true},
		{"point left of region", coord.Point{X: 0.05, Y: 0.4}, false},
		{"point below region", coord.Point{X: 0.3, Y: 0.7}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vp.Contains(tt.point); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestSelectViewport(t *testing.T) {
	viewports := Viewports{
		{
			BBox: rect.Rect{LLx: 0, LLy: 0, URx: 0.5, URy: 0.5},
			Name: "First",
		},
		{
			BBox: rect.Rect{LLx: 0.25, LLy: 0.25, URx: 0.75, URy: 0.75},
			Name: "Second",
		},
		{
			BBox: rect.Rect{LLx: 0.125, LLy: 0.125, URx: 0.375, URy: 0.375},
			Name: "Third",
		},
	}

	tests := []struct {
		name     string
		point    coord.Point
		expected *Viewport
	}{
		{
			name:     "point in first viewport only",
			point:    coord.Point{X: 0.05, Y: 0.05},
			expected: viewports[0],
		},
		{
			name:     "point in all three - should return last",
			point:    coord.Point{X: 0.3, Y: 0.3},
			expected: viewports[2],
		},
		{
			name:     "point in first and second - should return second",
			point:    coord.Point{X: 0.45, Y: 0.45},
			expected: viewports[1],
		},
		{
			name:     "point not in any viewport",
			point:    coord.Point{X: 0.9, Y: 0.9},
			expected: nil,
		},
		{
			name:     "point on boundary",
			point:    coord.Point{X: 0.375, Y: 0.375},
			expected: viewports[2],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := viewports.Select(tt.point)
			if result != tt.expected {
				var resultName, expectedName string
				if result != nil {
					resultName = result.Name
				}
				if tt.expected != nil {
					expectedName = tt.expected.Name
				}
				t.Errorf("Select(%v) = %q, want %q", tt.point, resultName, expectedName)
			}
		})
	}
}

func TestSelectViewportEmpty(t *testing.T) {
	var viewports Viewports
	if result := viewports.Select(coord.Point{X: 0.5, Y: 0.5}); result != nil {
		t.Error("Select with no viewports should return nil")
	}
}

func TestScaleAt(t *testing.T) {
	page := scale.Parse(`1/8" = 1'-0"`)
	detail := scale.Parse(`1/2" = 1'-0"`)
	viewports := Viewports{
		{BBox: rect.Rect{LLx: 0.6, LLy: 0.6, URx: 0.9, URy: 0.9}, Name: "Detail 3", Scale: detail},
		{BBox: rect.Rect{LLx: 0.05, LLy: 0.05, URx: 0.2, URy: 0.2}, Name: "Key plan"},
	}

	if s := viewports.ScaleAt(coord.Point{X: 0.7, Y: 0.7}, page); s != detail {
		t.Errorf("inside detail: got %v", s)
	}
	if s := viewports.ScaleAt(coord.Point{X: 0.4, Y: 0.4}, page); s != page {
		t.Errorf("outside viewports: got %v", s)
	}
	if s := viewports.ScaleAt(coord.Point{X: 0.1, Y: 0.1}, page); s != nil {
		t.Errorf("inside unscaled viewport: got %v", s)
	}
}
