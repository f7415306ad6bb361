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

// Package takeoff converts on-screen markup geometry on construction drawings
// into real-world measurements.
//
// The work is split over a few small packages:
//
//   - [planmark.dev/takeoff/coord] holds resolution-independent page
//     coordinates and the page view (size, zoom, DPI) used to convert from and
//     to pixels.
//   - [planmark.dev/takeoff/scale] parses drawing-scale notation such as
//     1/4" = 1'-0", 1" = 20' or 1:100.
//   - [planmark.dev/takeoff/measure] turns pixel distances and polygons into
//     formatted lengths and areas.
//   - [planmark.dev/takeoff/annotation] models the markup annotations placed
//     on a drawing page and their stored payloads.
//
// All operations are pure functions of their arguments and may be called
// concurrently.  Invalid numeric input is reported as a [*ValueError];
// unreadable scale text is not an error and yields a nil scale instead.
package takeoff
