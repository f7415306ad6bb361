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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"planmark.dev/takeoff/annotation"
	"planmark.dev/takeoff/coord"
)

type decodeOptions struct {
	id, file, by string
	page         int
	at           string
	resolvedAt   string
	resolvedBy   string
	pageSize     string
	zoom         float64
	dpi          float64
}

func (a *app) newDecodeCmd() *cobra.Command {
	opt := &decodeOptions{}
	cmd := &cobra.Command{
		Use:   "decode [payload.json]",
		Short: "Decode and check a stored markup payload",
		Long: `Decode a markup payload, combine it with the identity fields given as
flags and check the result.  The payload is read from the named file, or
from standard input if no file or "-" is given.

If --page-size is set, measurement and area labels are recomputed for this
view and compared to the stored values.`,
		Example: `  takeoff decode --id m1 --file A101 --page 2 --by jdoe --at 2025-03-14T09:26:53Z m1.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			id, err := opt.identity()
			if err != nil {
				return err
			}
			a.logger.Debug("decoding", "id", id.ID, "bytes", len(payload))

			ann, err := annotation.ParseIdentity(id, payload)
			if err != nil {
				return err
			}

			d := &describer{out: cmd.OutOrStdout()}
			if opt.pageSize != "" {
				v, err := parseView(opt.pageSize, opt.zoom, opt.dpi)
				if err != nil {
					return err
				}
				d.view = &v
			}
			c := ann.GetCommon()
			fmt.Fprintf(d.out, "%s %s (%s)\n", ann.AnnotationType(), c.ID, c.State())
			fmt.Fprintf(d.out, "  page      %s/%d\n", c.FileID, c.PageNumber)
			fmt.Fprintf(d.out, "  created   %s by %s\n", c.CreatedAt.Format(time.RFC3339), c.CreatedBy)
			if c.ResolvedAt != nil {
				fmt.Fprintf(d.out, "  resolved  %s by %s\n", c.ResolvedAt.Format(time.RFC3339), *c.ResolvedBy)
			}
			fmt.Fprintf(d.out, "  color     %s\n", c.Color)
			fmt.Fprintf(d.out, "  position  %s\n", formatPoint(c.Position))
			return ann.Accept(d)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opt.id, "id", "", "annotation ID")
	flags.StringVar(&opt.file, "file", "", "file ID")
	flags.IntVar(&opt.page, "page", 1, "page number")
	flags.StringVar(&opt.by, "by", "", "user who created the annotation")
	flags.StringVar(&opt.at, "at", "", "creation time (RFC 3339)")
	flags.StringVar(&opt.resolvedAt, "resolved-at", "", "resolution time (RFC 3339)")
	flags.StringVar(&opt.resolvedBy, "resolved-by", "", "user who resolved the annotation")
	flags.StringVar(&opt.pageSize, "page-size", "", "page size in pixels at zoom 1, as WIDTHxHEIGHT")
	flags.Float64Var(&opt.zoom, "zoom", 1, "zoom factor of the view")
	flags.Float64Var(&opt.dpi, "dpi", coord.DefaultDPI, "pixels per inch at zoom 1")
	for _, name := range []string{"id", "file", "by", "at"} {
		_ = cmd.MarkFlagRequired(name)
	}
	cmd.MarkFlagsRequiredTogether("resolved-at", "resolved-by")
	return cmd
}

func (opt *decodeOptions) identity() (annotation.Identity, error) {
	createdAt, err := time.Parse(time.RFC3339, opt.at)
	if err != nil {
		return annotation.Identity{}, fmt.Errorf("invalid creation time: %w", err)
	}
	id := annotation.Identity{
		ID:         opt.id,
		FileID:     opt.file,
		PageNumber: opt.page,
		CreatedBy:  opt.by,
		CreatedAt:  createdAt,
	}
	if opt.resolvedAt != "" {
		resolvedAt, err := time.Parse(time.RFC3339, opt.resolvedAt)
		if err != nil {
			return annotation.Identity{}, fmt.Errorf("invalid resolution time: %w", err)
		}
		resolvedBy := opt.resolvedBy
		id.ResolvedAt = &resolvedAt
		id.ResolvedBy = &resolvedBy
	}
	return id, nil
}

func readPayload(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}

func formatPoint(p coord.Point) string {
	return fmt.Sprintf("(%.4g, %.4g)", p.X, p.Y)
}

// describer prints the type specific fields of an annotation.
type describer struct {
	out  io.Writer
	view *coord.View
}

func (d *describer) field(name, format string, args ...any) {
	fmt.Fprintf(d.out, "  %-9s %s\n", name, fmt.Sprintf(format, args...))
}

func (d *describer) VisitPin(p *annotation.Pin) error {
	if p.Label != "" {
		d.field("label", "%s", p.Label)
	}
	if e := p.LinkedEntity; e != nil {
		desc := e.Type + " " + e.ID
		if e.Title != "" {
			desc += " " + fmt.Sprintf("%q", e.Title)
		}
		if e.Status != "" {
			desc += " [" + e.Status + "]"
		}
		d.field("linked", "%s", desc)
	}
	return nil
}

func (d *describer) VisitComment(c *annotation.Comment) error {
	d.field("text", "%s", c.Text)
	return nil
}

func (d *describer) VisitShape(s *annotation.Shape) error {
	d.field("size", "%.4g x %.4g", s.Width, s.Height)
	if s.Rotation != nil {
		d.field("rotation", "%g°", *s.Rotation)
	}
	if s.FillColor != "" {
		fill := s.FillColor
		if s.FillOpacity != nil {
			fill += fmt.Sprintf(" at %g%%", *s.FillOpacity*100)
		}
		d.field("fill", "%s", fill)
	}
	return nil
}

func (d *describer) VisitLine(l *annotation.Line) error {
	d.field("end", "%s", formatPoint(l.EndPoint))
	d.field("width", "%g", l.StrokeWidth)
	return nil
}

func (d *describer) VisitCallout(c *annotation.Callout) error {
	d.field("number", "%d", c.Number)
	if c.Text != "" {
		d.field("text", "%s", c.Text)
	}
	d.field("leader", "%s", formatPoint(c.LeaderEndPoint))
	return nil
}

func (d *describer) VisitMeasurement(m *annotation.Measurement) error {
	d.field("end", "%s", formatPoint(m.EndPoint))
	if m.Scale != nil {
		d.field("scale", "%s", m.Scale)
	}
	d.field("label", "%s", m.DisplayValue)
	if d.view == nil {
		return nil
	}
	if m.Fresh(*d.view) {
		d.field("check", "label is current")
		return nil
	}
	current, err := m.Display(*d.view)
	if err != nil {
		return err
	}
	d.field("check", "label is stale, current value %s", current)
	return nil
}

func (d *describer) VisitArea(a *annotation.Area) error {
	vertices := make([]string, len(a.Points))
	for i, p := range a.Points {
		vertices[i] = formatPoint(p)
	}
	d.field("vertices", "%s", strings.Join(vertices, " "))
	if a.Scale != nil {
		d.field("scale", "%s", a.Scale)
	}
	d.field("label", "%s", a.DisplayArea)
	if d.view == nil {
		return nil
	}
	if a.Fresh(*d.view) {
		d.field("check", "label is current")
		return nil
	}
	current, err := a.Display(*d.view)
	if err != nil {
		return err
	}
	d.field("check", "label is stale, current value %s", current)
	return nil
}

func (d *describer) VisitFreehand(f *annotation.Freehand) error {
	d.field("path", "%d points", len(f.Path))
	return nil
}
