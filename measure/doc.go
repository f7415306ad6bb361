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

// Package measure converts on-screen geometry into real-world lengths and
// areas.
//
// Pixel values are first converted into screen inches using the page DPI and
// zoom factor, then into real inches using the ratio of a drawing
// [scale.Scale]:
//
//	screenInches := px / (dpi * zoom)
//	realInches := screenInches / s.Ratio
//
// Areas scale with the square of both factors.  The result is formatted in
// the style used on construction sites:
//
//	5.5"            lengths below one foot
//	2'-8"           longer imperial lengths
//	45.7 cm, 3.25 m metric lengths
//	96 sq in, 12 sq ft, 1.2 sq cm, 3.75 sq m
//
// Without a scale, values are shown in pixels, e.g. 120px or 4500 sq px.
//
// # Derived values
//
// Display strings stored with an annotation depend on the geometry, the scale
// and the view they were computed for.  A [Stamp] records these inputs, so
// that a stored value can be checked before it is shown.
//
// # Viewports
//
// A drawing sheet may contain details drawn at a different scale than the
// main plan.  [Viewports] records such regions and selects the scale which
// applies at a given page position.
package measure
