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
	"slices"

	"seehuhn.de/go/geom/vec"

	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/measure"
	"planmark.dev/takeoff/scale"
)

// Area is a closed polygon labelled with its real-world area.  The polygon
// is implicitly closed: the last vertex connects back to the first.
//
// DisplayArea and RawPixelArea are derived values, see [Area.Fresh].
type Area struct {
	Common

	Points []coord.Point `json:"points" validate:"min=3,dive"`

	DisplayArea  string  `json:"displayArea"`
	RawPixelArea float64 `json:"rawPixelArea" validate:"gte=0,finite"`

	// Scale (optional) is the drawing scale used to compute DisplayArea.
	Scale *scale.Scale `json:"scale,omitempty"`

	// FillOpacity (optional) is the opacity of the interior, between 0
	// and 1.
	FillOpacity *float64 `json:"fillOpacity,omitempty" validate:"omitempty,gte=0,lte=1"`

	Stamp measure.Stamp `json:"stamp,omitempty"`
}

// AnnotationType returns "area".
// This implements the [Annotation] interface.
func (a *Area) AnnotationType() Type {
	return TypeArea
}

// Accept implements the [Annotation] interface.
func (a *Area) Accept(v Visitor) error {
	return v.VisitArea(a)
}

func (a *Area) isAnnotation() {}

// MarshalJSON encodes the area payload, including the type tag.
func (a *Area) MarshalJSON() ([]byte, error) {
	type plain Area
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{a.AnnotationType(), (*plain)(a)})
}

// SetPoints replaces the vertices of the polygon.  The slice is copied.
// This invalidates the derived values.
func (a *Area) SetPoints(points []coord.Point) {
	a.Points = slices.Clone(points)
	a.Stamp = 0
}

// SetScale changes the drawing scale.
// This invalidates the derived values.
func (a *Area) SetScale(s *scale.Scale) {
	a.Scale = s
	a.Stamp = 0
}

// Move shifts all vertices, and the position, by d.  The shift is shortened
// where needed to keep the polygon on the page.
// This invalidates the derived values.
func (a *Area) Move(d vec.Vec2) {
	d = coord.ClampShift(d, append([]coord.Point{a.Position}, a.Points...)...)
	a.Position = a.Position.Add(d)
	for i, p := range a.Points {
		a.Points[i] = p.Add(d)
	}
	a.Stamp = 0
}

// Refresh sets the scale to s and recomputes the derived values for view v.
func (a *Area) Refresh(v coord.View, s *scale.Scale) error {
	raw, display, err := a.compute(v, s)
	if err != nil {
		return err
	}
	a.Scale = s
	a.RawPixelArea = raw
	a.DisplayArea = display
	a.Stamp = measure.NewStamp(v, s, a.Points...)
	return nil
}

// Fresh reports whether the derived values were computed for the current
// vertices and scale, at view v.
func (a *Area) Fresh(v coord.View) bool {
	return a.Stamp != 0 && a.Stamp == measure.NewStamp(v, a.Scale, a.Points...)
}

// Display returns the formatted area for view v.  If the cached value is
// fresh it is returned, otherwise the value is recomputed without modifying
// the annotation.
func (a *Area) Display(v coord.View) (string, error) {
	if a.Fresh(v) {
		return a.DisplayArea, nil
	}
	_, display, err := a.compute(v, a.Scale)
	return display, err
}

func (a *Area) compute(v coord.View, s *scale.Scale) (float64, string, error) {
	display, err := measure.Area(a.Points, v, s)
	if err != nil {
		return 0, "", err
	}
	var raw float64
	if len(a.Points) >= 3 {
		raw = measure.PixelArea(a.Points, v)
	}
	return raw, display, nil
}
