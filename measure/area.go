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
	"math"

	"planmark.dev/takeoff"
	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/scale"
)

// Area computes the real-world area of the polygon with the given vertices
// and formats it for display.
//
// The polygon is implicitly closed.  Fewer than three vertices describe no
// area and give "0 sq ft", whatever the scale.  If s is nil, the area is
// shown in square pixels.
func Area(points []coord.Point, v coord.View, s *scale.Scale) (string, error) {
	if len(points) < 3 {
		return "0 sq ft", nil
	}
	if err := v.Check("measure.Area"); err != nil {
		return "", err
	}
	return AreaFromPixels(PixelArea(points, v), v.Zoom, s, v.Resolution())
}

// AreaFromPixels formats an area given in square screen pixels.
func AreaFromPixels(pixelArea, zoom float64, s *scale.Scale, dpi float64) (string, error) {
	realSqInches, err := realArea("measure.AreaFromPixels", pixelArea, zoom, s, dpi)
	if err != nil {
		return "", err
	}
	if s == nil {
		return formatInt(pixelArea) + " sq px", nil
	}
	return formatArea(realSqInches, s.Unit), nil
}

// RealArea returns the real-world area in square inches which corresponds to
// pixelArea square screen pixels.  If s is nil, pixelArea is returned
// unchanged.
func RealArea(pixelArea, zoom float64, s *scale.Scale, dpi float64) (float64, error) {
	return realArea("measure.RealArea", pixelArea, zoom, s, dpi)
}

func realArea(op string, pixelArea, zoom float64, s *scale.Scale, dpi float64) (float64, error) {
	if err := takeoff.CheckNonNegative(op, "pixel area", pixelArea); err != nil {
		return 0, err
	}
	if err := takeoff.CheckPositive(op, "zoom", zoom); err != nil {
		return 0, err
	}
	if err := takeoff.CheckPositive(op, "dpi", dpi); err != nil {
		return 0, err
	}
	if s == nil {
		return pixelArea, nil
	}
	if err := takeoff.CheckPositive(op, "scale ratio", s.Ratio); err != nil {
		return 0, err
	}
	pxPerInch := dpi * zoom
	screenSqInches := pixelArea / pxPerInch / pxPerInch
	realSqInches := screenSqInches / s.Ratio / s.Ratio
	if err := takeoff.CheckNonNegative(op, "real area", realSqInches); err != nil {
		return 0, err
	}
	return realSqInches, nil
}

// PixelArea returns the area in square pixels of the polygon with the given
// vertices, as seen in view v.  The polygon is implicitly closed; the
// orientation of the vertices does not matter.  The view is not checked.
func PixelArea(points []coord.Point, v coord.View) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	var twice float64
	prev := v.Pixel(points[n-1])
	for _, p := range points {
		cur := v.Pixel(p)
		twice += prev.X*cur.Y - cur.X*prev.Y
		prev = cur
	}
	return math.Abs(twice) / 2
}
