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

// Type identifies the kind of an annotation.  The values are used as type
// tags in stored payloads.
type Type string

// These are the annotation types.
const (
	TypePin         Type = "pin"
	TypeComment     Type = "comment"
	TypeRectangle   Type = "rectangle"
	TypeCircle      Type = "circle"
	TypeCloud       Type = "cloud"
	TypeArrow       Type = "arrow"
	TypeLine        Type = "line"
	TypeCallout     Type = "callout"
	TypeMeasurement Type = "measurement"
	TypeArea        Type = "area"
	TypeFreehand    Type = "freehand"
)

// AllTypes lists the annotation types in toolbar order.
var AllTypes = []Type{
	TypePin,
	TypeComment,
	TypeRectangle,
	TypeCircle,
	TypeCloud,
	TypeArrow,
	TypeLine,
	TypeCallout,
	TypeMeasurement,
	TypeArea,
	TypeFreehand,
}

// Annotation is a markup annotation on a drawing page.
//
// The interface is sealed: all implementations are defined in this package.
type Annotation interface {
	// AnnotationType returns the type tag of the annotation.
	AnnotationType() Type

	// GetCommon returns the fields shared by all annotation types.
	GetCommon() *Common

	// Accept calls the method of v which corresponds to the concrete type
	// of the annotation.
	Accept(v Visitor) error

	isAnnotation()
}

var (
	_ Annotation = (*Pin)(nil)
	_ Annotation = (*Comment)(nil)
	_ Annotation = (*Shape)(nil) // rectangle, circle, cloud
	_ Annotation = (*Line)(nil)  // arrow, line
	_ Annotation = (*Callout)(nil)
	_ Annotation = (*Measurement)(nil)
	_ Annotation = (*Area)(nil)
	_ Annotation = (*Freehand)(nil)
)

// Visitor has one method per annotation type.
type Visitor interface {
	VisitPin(*Pin) error
	VisitComment(*Comment) error
	VisitShape(*Shape) error
	VisitLine(*Line) error
	VisitCallout(*Callout) error
	VisitMeasurement(*Measurement) error
	VisitArea(*Area) error
	VisitFreehand(*Freehand) error
}

// newAnnotation allocates an empty annotation of the given type.
func newAnnotation(tp Type) (Annotation, error) {
	switch tp {
	case TypePin:
		return &Pin{}, nil
	case TypeComment:
		return &Comment{}, nil
	case TypeRectangle, TypeCircle, TypeCloud:
		return &Shape{Kind: tp}, nil
	case TypeArrow, TypeLine:
		return &Line{Kind: tp}, nil
	case TypeCallout:
		return &Callout{}, nil
	case TypeMeasurement:
		return &Measurement{}, nil
	case TypeArea:
		return &Area{}, nil
	case TypeFreehand:
		return &Freehand{}, nil
	default:
		return nil, &UnknownTypeError{Type: tp}
	}
}
