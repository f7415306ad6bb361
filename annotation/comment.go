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

// Comment attaches a text note to a position on the page.
type Comment struct {
	Common

	Text string `json:"text" validate:"required"`
}

// AnnotationType returns "comment".
// This implements the [Annotation] interface.
func (c *Comment) AnnotationType() Type {
	return TypeComment
}

// Accept implements the [Annotation] interface.
func (c *Comment) Accept(v Visitor) error {
	return v.VisitComment(c)
}

func (c *Comment) isAnnotation() {}

// MarshalJSON encodes the comment payload, including the type tag.
func (c *Comment) MarshalJSON() ([]byte, error) {
	type plain Comment
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{c.AnnotationType(), (*plain)(c)})
}
