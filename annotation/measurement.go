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

	"seehuhn.de/go/geom/vec"

	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/measure"
	"planmark.dev/takeoff/scale"
)

// Measurement is a dimension line from Common.Position to EndPoint,
// labelled with the real-world length.
//
// DisplayValue and RawPixelDistance are derived from the geometry, the scale
// and the view the measurement was last refreshed for.  Stamp records these
// inputs, so that stale values can be detected; see [Measurement.Fresh].
type Measurement struct {
	Common

	EndPoint coord.Point `json:"endPoint"`

	DisplayValue     string  `json:"displayValue"`
	RawPixelDistance float64 `json:"rawPixelDistance" validate:"gte=0,finite"`

	// Scale (optional) is the drawing scale used to compute DisplayValue.
	// If this is nil, the distance is shown in pixels.
	Scale *scale.Scale `json:"scale,omitempty"`

	Stamp measure.Stamp `json:"stamp,omitempty"`
}

// AnnotationType returns "measurement".
// This implements the [Annotation] interface.
func (m *Measurement) AnnotationType() Type {
	return TypeMeasurement
}

// Accept implements the [Annotation] interface.
func (m *Measurement) Accept(v Visitor) error {
	return v.VisitMeasurement(m)
}

func (m *Measurement) isAnnotation() {}

// MarshalJSON encodes the measurement payload, including the type tag.
func (m *Measurement) MarshalJSON() ([]byte, error) {
	type plain Measurement
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{m.AnnotationType(), (*plain)(m)})
}

// SetEndPoint moves the end point of the measurement.
// This invalidates the derived values.
func (m *Measurement) SetEndPoint(p coord.Point) {
	m.EndPoint = p
	m.Stamp = 0
}

// SetScale changes the drawing scale.
// This invalidates the derived values.
func (m *Measurement) SetScale(s *scale.Scale) {
	m.Scale = s
	m.Stamp = 0
}

// Move shifts both end points by d, given in normalized page coordinates.
// This invalidates the derived values.
func (m *Measurement) Move(d vec.Vec2) {
	d = coord.ClampShift(d, m.Position, m.EndPoint)
	m.Position = m.Position.Add(d)
	m.EndPoint = m.EndPoint.Add(d)
	m.Stamp = 0
}

// Refresh sets the scale to s and recomputes the derived values for view v.
func (m *Measurement) Refresh(v coord.View, s *scale.Scale) error {
	raw, display, err := m.compute(v, s)
	if err != nil {
		return err
	}
	m.Scale = s
	m.RawPixelDistance = raw
	m.DisplayValue = display
	m.Stamp = measure.NewStamp(v, s, m.Position, m.EndPoint)
	return nil
}

// Fresh reports whether the derived values were computed for the current
// geometry and scale, at view v.
func (m *Measurement) Fresh(v coord.View) bool {
	return m.Stamp != 0 && m.Stamp == measure.NewStamp(v, m.Scale, m.Position, m.EndPoint)
}

// Display returns the formatted length for view v.  If the cached value is
// fresh it is returned, otherwise the value is recomputed without modifying
// the measurement.
func (m *Measurement) Display(v coord.View) (string, error) {
	if m.Fresh(v) {
		return m.DisplayValue, nil
	}
	_, display, err := m.compute(v, m.Scale)
	return display, err
}

func (m *Measurement) compute(v coord.View, s *scale.Scale) (float64, string, error) {
	if err := v.Check("annotation.Measurement"); err != nil {
		return 0, "", err
	}
	raw := measure.PixelDistance(m.Position, m.EndPoint, v)
	display, err := measure.Distance(raw, v.Zoom, s, v.Resolution())
	if err != nil {
		return 0, "", err
	}
	return raw, display, nil
}
