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

package takeoff

import (
	"math"
	"strconv"
)

// ValueError indicates that a numeric argument is outside the range
// accepted by an operation, for example a zoom factor of zero.
type ValueError struct {
	Op    string
	Field string
	Value float64
}

func (err *ValueError) Error() string {
	return err.Op + ": invalid " + err.Field + " " +
		strconv.FormatFloat(err.Value, 'g', -1, 64)
}

// CheckPositive returns a [*ValueError] unless x is finite and greater than
// zero.
func CheckPositive(op, field string, x float64) error {
	if !(x > 0) || math.IsInf(x, 0) {
		return &ValueError{Op: op, Field: field, Value: x}
	}
	return nil
}

// CheckNonNegative returns a [*ValueError] unless x is finite and not
// negative.
func CheckNonNegative(op, field string, x float64) error {
	if !(x >= 0) || math.IsInf(x, 0) {
		return &ValueError{Op: op, Field: field, Value: x}
	}
	return nil
}
