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

// DefaultDPI is the page resolution assumed by callers which do not know
// better.
const DefaultDPI = coord.DefaultDPI

// Distance converts a distance measured in screen pixels into a formatted
// real-world length.
//
// The pixel distance must be finite and not negative, zoom and dpi must be
// finite and positive.  If s is nil, the distance is shown in pixels.
func Distance(px, zoom float64, s *scale.Scale, dpi float64) (string, error) {
	realInches, err := realLength("measure.Distance", px, zoom, s, dpi)
	if err != nil {
		return "", err
	}
	if s == nil {
		return formatInt(px) + "px", nil
	}
	return formatLength(realInches, s.Unit), nil
}

// RealLength returns the real-world length in inches which corresponds to a
// distance of px screen pixels.  If s is nil, px is returned unchanged.
func RealLength(px, zoom float64, s *scale.Scale, dpi float64) (float64, error) {
	return realLength("measure.RealLength", px, zoom, s, dpi)
}

func realLength(op string, px, zoom float64, s *scale.Scale, dpi float64) (float64, error) {
	if err := takeoff.CheckNonNegative(op, "pixel distance", px); err != nil {
		return 0, err
	}
	if err := takeoff.CheckPositive(op, "zoom", zoom); err != nil {
		return 0, err
	}
	if err := takeoff.CheckPositive(op, "dpi", dpi); err != nil {
		return 0, err
	}
	if s == nil {
		return px, nil
	}
	if err := takeoff.CheckPositive(op, "scale ratio", s.Ratio); err != nil {
		return 0, err
	}
	screenInches := px / (dpi * zoom)
	realInches := screenInches / s.Ratio
	if err := takeoff.CheckNonNegative(op, "real length", realInches); err != nil {
		return 0, err
	}
	return realInches, nil
}

// PixelDistance returns the distance in pixels between two page positions,
// as seen in view v.  The view is not checked.
func PixelDistance(a, b coord.Point, v coord.View) float64 {
	d := v.Pixel(b).Sub(v.Pixel(a))
	return math.Hypot(d.X, d.Y)
}
