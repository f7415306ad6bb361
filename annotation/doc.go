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

// Package annotation models the markup annotations placed on drawing pages.
//
// There are eleven annotation types, represented by eight Go types:
//
//   - [Pin] marks a position and may link to a project entity such as an RFI
//     or a punch list item.
//   - [Comment] attaches a note to a position.
//   - [Shape] draws a rectangle, a circle or a revision cloud.
//   - [Line] draws a line or an arrow.
//   - [Callout] is a numbered bubble with a leader line.
//   - [Measurement] shows the real-world length between two points.
//   - [Area] shows the real-world area of a polygon.
//   - [Freehand] is a free pen stroke.
//
// All types embed [Common], which holds identity, audit and style fields,
// and implement the sealed [Annotation] interface.  Code which needs to
// handle every type should implement [Visitor]; adding a new type then fails
// to compile until all visitors handle it.
//
// Geometry is stored in normalized page coordinates, see
// [planmark.dev/takeoff/coord].
//
// # Storage
//
// [Serialize] encodes the type specific content of an annotation as a JSON
// payload, leaving out the identity and audit fields which the storage layer
// keeps separately.  [Parse] reassembles the annotation from a payload and
// these fields.  Both functions validate the annotation; invalid values
// never enter or leave the package.
//
// # Derived values
//
// The DisplayValue of a [Measurement] and the DisplayArea of an [Area] are
// caches, computed from geometry, scale and view.  They are marked with a
// [measure.Stamp] and must be refreshed whenever one of these inputs
// changes; see [Measurement.Refresh] and [Measurement.Display].
package annotation
