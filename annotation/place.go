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
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"

	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/scale"
)

// DefaultStrokeWidth is the line width, in pixels at zoom 1, of newly
// placed lines and arrows.
const DefaultStrokeWidth = 2

// Placement holds the context in which a new annotation is placed.
type Placement struct {
	FileID     string
	PageNumber int
	CreatedBy  string
	CreatedAt  time.Time

	// View is the page view in which the pixel positions were recorded.
	View coord.View

	// Scale (optional) is the drawing scale in effect at the placement
	// position.  It is used by measuring tools.
	Scale *scale.Scale

	// Color (optional) overrides the default color of the tool.
	Color string

	// Text is used as the pin label, the comment text or the callout text.
	Text string

	// Number is the callout number.
	Number int
}

// Place creates a new annotation from pixel positions recorded with the
// given tool.  The number of positions must match the tool: one for pins and
// comments, two opposite corners for shapes, start and end for lines and
// measurements, the bubble center and optionally the leader end for
// callouts, and the vertices for areas and freehand strokes.
//
// The new annotation has a fresh random ID and is open.  Derived values of
// measurements and areas are computed for p.View and p.Scale.
func Place(tp Type, p Placement, pixels ...vec.Vec2) (Annotation, error) {
	tool, ok := LookupTool(tp)
	if !ok {
		return nil, &UnknownTypeError{Type: tp}
	}
	if len(pixels) < tool.MinPoints {
		return nil, &InvalidError{
			Type:   tp,
			Fields: []string{"points: min=" + strconv.Itoa(tool.MinPoints)},
		}
	}
	if tool.MaxPoints > 0 && len(pixels) > tool.MaxPoints {
		return nil, &InvalidError{
			Type:   tp,
			Fields: []string{"points: max=" + strconv.Itoa(tool.MaxPoints)},
		}
	}

	pts := make([]coord.Point, len(pixels))
	for i, px := range pixels {
		pt, err := p.View.Normalize(px)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}

	common := Common{
		ID:         uuid.NewString(),
		FileID:     p.FileID,
		PageNumber: p.PageNumber,
		CreatedBy:  p.CreatedBy,
		CreatedAt:  p.CreatedAt,
		Color:      p.Color,
		Position:   pts[0],
	}
	if common.Color == "" {
		common.Color = tool.Color
	}

	var a Annotation
	switch tp {
	case TypePin:
		a = &Pin{Common: common, Label: p.Text}
	case TypeComment:
		a = &Comment{Common: common, Text: p.Text}
	case TypeRectangle, TypeCircle, TypeCloud:
		common.Position = coord.Point{
			X: math.Min(pts[0].X, pts[1].X),
			Y: math.Min(pts[0].Y, pts[1].Y),
		}
		a = &Shape{
			Common: common,
			Kind:   tp,
			Width:  math.Abs(pts[1].X - pts[0].X),
			Height: math.Abs(pts[1].Y - pts[0].Y),
		}
	case TypeArrow, TypeLine:
		a = &Line{
			Common:      common,
			Kind:        tp,
			EndPoint:    pts[1],
			StrokeWidth: DefaultStrokeWidth,
		}
	case TypeCallout:
		a = &Callout{
			Common:         common,
			Number:         p.Number,
			Text:           p.Text,
			LeaderEndPoint: pts[len(pts)-1],
		}
	case TypeMeasurement:
		m := &Measurement{Common: common, EndPoint: pts[1]}
		if err := m.Refresh(p.View, p.Scale); err != nil {
			return nil, err
		}
		a = m
	case TypeArea:
		ar := &Area{Common: common, Points: pts}
		if err := ar.Refresh(p.View, p.Scale); err != nil {
			return nil, err
		}
		a = ar
	case TypeFreehand:
		a = &Freehand{Common: common, Path: pts}
	}

	if err := Validate(a); err != nil {
		return nil, err
	}
	return a, nil
}
