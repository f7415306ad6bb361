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

// Package coord implements resolution-independent page coordinates.
//
// A [Point] stores a position as a fraction of the page width and height.
// Such points are computed once, when a markup is placed, and stay valid at
// every zoom level and render resolution.  A [View] describes how a page is
// currently shown and converts between points and screen pixels.
package coord

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"planmark.dev/takeoff"
)

// DefaultDPI is the resolution of a page rendered at zoom 1.
// PDF user space has 72 units per inch.
const DefaultDPI = 72

// Point is a position on a page.  X and Y are fractions of the page width
// and height and lie in the range [0, 1].
type Point struct {
	X float64 `json:"x" validate:"gte=0,lte=1"`
	Y float64 `json:"y" validate:"gte=0,lte=1"`
}

// Valid reports whether both coordinates lie in [0, 1].
func (p Point) Valid() bool {
	return p.X >= 0 && p.X <= 1 && p.Y >= 0 && p.Y <= 1
}

// Add returns p shifted by d, clamped to the page.
func (p Point) Add(d vec.Vec2) Point {
	return Point{X: clamp(p.X + d.X), Y: clamp(p.Y + d.Y)}
}

// ClampShift limits the shift d so that all of the given points stay on the
// page when moved by it.  Moving a group of points by the result keeps their
// relative positions.
func ClampShift(d vec.Vec2, points ...Point) vec.Vec2 {
	if len(points) == 0 {
		return d
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return vec.Vec2{
		X: max(-minX, min(d.X, 1-maxX)),
		Y: max(-minY, min(d.Y, 1-maxY)),
	}
}

// View describes how a page is displayed at the moment a markup is placed or
// edited.
type View struct {
	// Width and Height give the page size in pixels at zoom 1.
	Width, Height float64

	// Zoom is the current zoom factor.
	Zoom float64

	// DPI is the number of pixels per inch at zoom 1.
	// The value 0 selects DefaultDPI.
	DPI float64
}

// Resolution returns the effective DPI of the view.
func (v View) Resolution() float64 {
	if v.DPI == 0 {
		return DefaultDPI
	}
	return v.DPI
}

// Check verifies that the view can be used for coordinate conversion.
// The op argument names the calling operation in error messages.
func (v View) Check(op string) error {
	if err := takeoff.CheckPositive(op, "page width", v.Width); err != nil {
		return err
	}
	if err := takeoff.CheckPositive(op, "page height", v.Height); err != nil {
		return err
	}
	if err := takeoff.CheckPositive(op, "zoom", v.Zoom); err != nil {
		return err
	}
	return takeoff.CheckPositive(op, "dpi", v.Resolution())
}

// Normalize converts a pixel position on the zoomed page into a Point.
// Positions outside the page are moved to the nearest page edge.
func (v View) Normalize(px vec.Vec2) (Point, error) {
	if err := v.Check("coord.Normalize"); err != nil {
		return Point{}, err
	}
	if math.IsNaN(px.X) || math.IsNaN(px.Y) {
		return Point{}, &takeoff.ValueError{Op: "coord.Normalize", Field: "pixel", Value: math.NaN()}
	}
	return Point{
		X: clamp(px.X / (v.Width * v.Zoom)),
		Y: clamp(px.Y / (v.Height * v.Zoom)),
	}, nil
}

// Pixel converts p into a pixel position on the zoomed page.
// The view is not checked.
func (v View) Pixel(p Point) vec.Vec2 {
	return vec.Vec2{
		X: p.X * v.Width * v.Zoom,
		Y: p.Y * v.Height * v.Zoom,
	}
}

func clamp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
