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
	"strconv"

	"planmark.dev/takeoff/scale"
)

const (
	inchesPerFoot      = 12
	squareInchesPerFt2 = 144
	metersPerInch      = 0.0254
	sqMetersPerSqInch  = 0.00064516
)

// roundHalfUp rounds x to the nearest integer, with halves rounded towards
// positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func formatInt(x float64) string {
	return strconv.FormatFloat(roundHalfUp(x), 'f', 0, 64)
}

func formatFixed(x float64, digits int) string {
	return strconv.FormatFloat(x, 'f', digits, 64)
}

// formatLength formats a real-world length given in inches.
func formatLength(realInches float64, unit scale.Unit) string {
	if unit == scale.Metric {
		meters := realInches * metersPerInch
		if meters < 1 {
			return formatFixed(meters*100, 1) + " cm"
		}
		return formatFixed(meters, 2) + " m"
	}

	feet := math.Floor(realInches / inchesPerFoot)
	inches := realInches - feet*inchesPerFoot
	if feet == 0 {
		return formatFixed(inches, 1) + `"`
	}

	inches = roundHalfUp(inches)
	if inches >= inchesPerFoot {
		feet++
		inches -= inchesPerFoot
	}
	return formatFixed(feet, 0) + "'-" + formatFixed(inches, 0) + `"`
}

// formatArea formats a real-world area given in square inches.
func formatArea(realSqInches float64, unit scale.Unit) string {
	if unit == scale.Metric {
		sqMeters := realSqInches * sqMetersPerSqInch
		if sqMeters < 1 {
			return formatFixed(sqMeters*10000, 1) + " sq cm"
		}
		return formatFixed(sqMeters, 2) + " sq m"
	}

	sqFeet := realSqInches / squareInchesPerFt2
	if sqFeet < 1 {
		return formatInt(realSqInches) + " sq in"
	}
	return formatInt(sqFeet) + " sq ft"
}
