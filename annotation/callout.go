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

// Callout is a numbered bubble at Common.Position with a leader line ending
// at LeaderEndPoint.  Callout numbers are assigned by the caller, usually in
// sequence per page.
type Callout struct {
	Common

	Number int    `json:"number" validate:"gte=1"`
	Text   string `json:"text"`

	LeaderEndPoint coord.Point `json:"leaderEndPoint"`

	// BubbleRadius (optional) is the bubble radius in pixels at zoom 1.
	BubbleRadius *float64 `json:"bubbleRadius,omitempty" validate:"omitempty,gt=0,finite"`
}

// AnnotationType returns "callout".
// This implements the [Annotation] interface.
func (c *Callout) AnnotationType() Type {
	return TypeCallout
}

// Accept implements the [Annotation] interface.
func (c *Callout) Accept(v Visitor) error {
	return v.VisitCallout(c)
}

func (c *Callout) isAnnotation() {}

// MarshalJSON encodes the callout payload, including the type tag.
func (c *Callout) MarshalJSON() ([]byte, error) {
	type plain Callout
	return json.Marshal(struct {
		Type Type `json:"type"`
		*plain
	}{c.AnnotationType(), (*plain)(c)})
}
