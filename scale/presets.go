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

package scale

// Preset is a commonly used drawing scale, as offered in scale pickers.
type Preset struct {
	Notation Notation
	Text     string
}

// Presets lists the standard scales, grouped by notation and ordered from
// small to large drawn size within each group.
var Presets = []Preset{
	{Architectural, `1/16" = 1'-0"`},
	{Architectural, `3/32" = 1'-0"`},
	{Architectural, `1/8" = 1'-0"`},
	{Architectural, `3/16" = 1'-0"`},
	{Architectural, `1/4" = 1'-0"`},
	{Architectural, `3/8" = 1'-0"`},
	{Architectural, `1/2" = 1'-0"`},
	{Architectural, `3/4" = 1'-0"`},
	{Architectural, `1" = 1'-0"`},
	{Architectural, `1-1/2" = 1'-0"`},
	{Architectural, `3" = 1'-0"`},

	{Civil, `1" = 200'`},
	{Civil, `1" = 100'`},
	{Civil, `1" = 60'`},
	{Civil, `1" = 50'`},
	{Civil, `1" = 40'`},
	{Civil, `1" = 30'`},
	{Civil, `1" = 20'`},
	{Civil, `1" = 10'`},

	{MetricRatio, "1:1000"},
	{MetricRatio, "1:500"},
	{MetricRatio, "1:200"},
	{MetricRatio, "1:100"},
	{MetricRatio, "1:50"},
	{MetricRatio, "1:20"},
	{MetricRatio, "1:10"},
	{MetricRatio, "1:5"},
	{MetricRatio, "1:1"},
}
