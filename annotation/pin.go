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

import "encoding/json"

// Pin marks a position on the page.  A pin may be linked to a project
// entity, so that the entity can be located on the drawings.
type Pin struct {
	Common

	// Label (optional) is a short text shown next to the pin.
	Label string `json:"label,omitempty"`

	// LinkedEntity (optional) refers to the project entity marked by the pin.
	LinkedEntity *EntityLink `json:"linkedEntity,omitempty"`
}

// EntityLink refers to a project entity, such as an RFI, a punch list item
// or a safety observation.
type EntityLink struct {
	Type string `json:"type" validate:"required"`
	ID   string `json:"id" validate:"required"`

	// Title and Status (optional) are copies of the entity fields at the
	// time the link was made, for display without a lookup.
	Title  string `json:"title,omitempty"`
	Status string `json:"status,omitempty"`
}

// AnnotationType returns "pin".
// This implements the [Annotation] interface.
func (p *Pin) AnnotationType() Type {
	return TypePin
}

// Accept implements the [Annotation] interface.
func (p *Pin) Accept(v Visitor) error {
	return v.VisitPin(p)
}

func (p *Pin) isAnnotation() {}

// MarshalJSON encodes the pin payload, including the type tag.
func (p *Pin) MarshalJSON() ([]byte, error) {
	type plain Pin
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{p.AnnotationType(), (*plain)(p)})
}
