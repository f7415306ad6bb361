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

package annotation

import (
	"encoding/json"

	"planmark.dev/takeoff/coord"
)

// Freehand is a pen stroke through the points of Path.
type Freehand struct {
	Common

	Path []coord.Point `json:"path" validate:"min=2,dive"`
}

// AnnotationType returns "freehand".
// This implements the [Annotation] interface.
func (f *Freehand) AnnotationType() Type {
	return TypeFreehand
}

// Accept implements the [Annotation] interface.
func (f *Freehand) Accept(v Visitor) error {
	return v.VisitFreehand(f)
}

func (f *Freehand) isAnnotation() {}

// MarshalJSON encodes the stroke payload, including the type tag.
func (f *Freehand) MarshalJSON() ([]byte, error) {
	type plain Freehand
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{f.AnnotationType(), (*plain)(f)})
}
