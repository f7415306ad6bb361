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

// Shape represents a rectangle, a circle or a revision cloud.
//
// The shape occupies the box with upper-left corner Common.Position and
// the given Width and Height, before rotation.  Circles are drawn as the
// ellipse inscribed in this box.
type Shape struct {
	Common

	// Kind is one of TypeRectangle, TypeCircle or TypeCloud.
	Kind Type `json:"-" validate:"oneof=rectangle circle cloud"`

	// Width and Height give the size of the shape, as fractions of the page
	// width and height.
	Width  float64 `json:"width" validate:"gte=0,lte=1"`
	Height float64 `json:"height" validate:"gte=0,lte=1"`

	// Rotation (optional) is the clockwise rotation in degrees about the
	// center of the shape.
	Rotation *float64 `json:"rotation,omitempty" validate:"omitempty,finite"`

	// FillColor (optional) is the interior color as a hex string.
	FillColor string `json:"fillColor,omitempty" validate:"omitempty,hexcolor"`

	// FillOpacity (optional) is the opacity of the interior, between 0
	// (transparent) and 1 (opaque).
	FillOpacity *float64 `json:"fillOpacity,omitempty" validate:"omitempty,gte=0,lte=1"`

	// StrokeWidth (optional) is the outline width in pixels at zoom 1.
	StrokeWidth *float64 `json:"strokeWidth,omitempty" validate:"omitempty,gt=0,finite"`
}

// AnnotationType returns the kind of the shape.
// This implements the [Annotation] interface.
func (s *Shape) AnnotationType() Type {
	return s.Kind
}

// Accept implements the [Annotation] interface.
func (s *Shape) Accept(v Visitor) error {
	return v.VisitShape(s)
}

func (s *Shape) isAnnotation() {}

// MarshalJSON encodes the shape payload, including the type tag.
func (s *Shape) MarshalJSON() ([]byte, error) {
	type plain Shape
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{s.AnnotationType(), (*plain)(s)})
}
