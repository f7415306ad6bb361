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
	"seehuhn.de/go/geom/vec"

	"planmark.dev/takeoff/coord"
)

// Translate moves all points of an annotation by d, given in normalized page
// coordinates.  The shift is shortened where needed so that the annotation
// stays on the page; its shape is never changed.  Derived values of
// measurements and areas are invalidated.
func Translate(a Annotation, d vec.Vec2) error {
	return a.Accept(translator{d})
}

type translator struct {
	d vec.Vec2
}

func (t translator) VisitPin(p *Pin) error {
	p.Position = p.Position.Add(coord.ClampShift(t.d, p.Position))
	return nil
}

func (t translator) VisitComment(c *Comment) error {
	c.Position = c.Position.Add(coord.ClampShift(t.d, c.Position))
	return nil
}

func (t translator) VisitShape(s *Shape) error {
	corner := coord.Point{X: s.Position.X + s.Width, Y: s.Position.Y + s.Height}
	s.Position = s.Position.Add(coord.ClampShift(t.d, s.Position, corner))
	return nil
}

func (t translator) VisitLine(l *Line) error {
	d := coord.ClampShift(t.d, l.Position, l.EndPoint)
	l.Position = l.Position.Add(d)
	l.EndPoint = l.EndPoint.Add(d)
	return nil
}

func (t translator) VisitCallout(c *Callout) error {
	d := coord.ClampShift(t.d, c.Position, c.LeaderEndPoint)
	c.Position = c.Position.Add(d)
	c.LeaderEndPoint = c.LeaderEndPoint.Add(d)
	return nil
}

func (t translator) VisitMeasurement(m *Measurement) error {
	m.Move(t.d)
	return nil
}

func (t translator) VisitArea(a *Area) error {
	a.Move(t.d)
	return nil
}

func (t translator) VisitFreehand(f *Freehand) error {
	d := coord.ClampShift(t.d, append([]coord.Point{f.Position}, f.Path...)...)
	f.Position = f.Position.Add(d)
	for i, p := range f.Path {
		f.Path[i] = p.Add(d)
	}
	return nil
}
