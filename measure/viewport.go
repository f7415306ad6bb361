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
	"seehuhn.de/go/geom/rect"

	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/scale"
)

// Viewport is a rectangular region of a page with its own drawing scale,
// for example an enlarged detail on a floor plan sheet.
type Viewport struct {
	// BBox gives the region in normalized page coordinates.
	// LLx and LLy hold the smaller, URx and URy the larger coordinates.
	BBox rect.Rect

	// Name is a descriptive title of the viewport (optional).
	Name string

	// Scale is the drawing scale inside the viewport.
	// A nil scale marks the region as not to scale.
	Scale *scale.Scale
}

// Contains reports whether p lies inside the viewport, boundary included.
func (vp *Viewport) Contains(p coord.Point) bool {
	b := vp.BBox
	return p.X >= b.LLx && p.X <= b.URx && p.Y >= b.LLy && p.Y <= b.URy
}

// Viewports is the list of scale regions on a page.  Later entries are drawn
// on top of earlier ones.
type Viewports []*Viewport

// Select finds the viewport which applies at p.
// The viewports are examined in reverse order and the first one containing
// p is returned.  If no viewport contains p, nil is returned.
func (va Viewports) Select(p coord.Point) *Viewport {
	for i := len(va) - 1; i >= 0; i-- {
		if va[i].Contains(p) {
			return va[i]
		}
	}
	return nil
}

// ScaleAt returns the scale which applies at p: the scale of the selected
// viewport, or pageScale if p is outside all viewports.
func (va Viewports) ScaleAt(p coord.Point, pageScale *scale.Scale) *scale.Scale {
	if vp := va.Select(p); vp != nil {
		return vp.Scale
	}
	return pageScale
}
