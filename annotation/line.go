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

// Line represents a straight line or an arrow from Common.Position to
// EndPoint.  Arrows have the arrow head at EndPoint.
type Line struct {
	Common

	// Kind is either TypeLine or TypeArrow.
	Kind Type `json:"-" validate:"oneof=arrow line"`

	EndPoint coord.Point `json:"endPoint"`

	// StrokeWidth is the line width in pixels at zoom 1.
	StrokeWidth float64 `json:"strokeWidth" validate:"gt=0,finite"`
}

// AnnotationType returns the kind of the line.
// This implements the [Annotation] interface.
func (l *Line) AnnotationType() Type {
	return l.Kind
}

// Accept implements the [Annotation] interface.
func (l *Line) Accept(v Visitor) error {
	return v.VisitLine(l)
}

func (l *Line) isAnnotation() {}

// MarshalJSON encodes the line payload, including the type tag.
func (l *Line) MarshalJSON() ([]byte, error) {
	type plain Line
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{l.AnnotationType(), (*plain)(l)})
}
