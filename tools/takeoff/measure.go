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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"planmark.dev/takeoff/coord"
	"planmark.dev/takeoff/measure"
)

func (a *app) newDistanceCmd() *cobra.Command {
	var px, zoom, dpi float64
	var scaleText string
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Convert a pixel distance into a real-world length",
		Example: `  takeoff distance --px 306 --scale '1/4" = 1'"'"'-0"'
  takeoff distance --px 120 --zoom 2 --scale 1:100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.parseScale(scaleText)
			if err != nil {
				return err
			}
			res, err := measure.Distance(px, zoom, s, dpi)
			if err != nil {
				return err
			}
			a.logger.Debug("distance", "px", px, "zoom", zoom, "dpi", dpi, "result", res)
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.Float64Var(&px, "px", 0, "distance in screen pixels")
	flags.Float64Var(&zoom, "zoom", 1, "zoom factor of the view")
	flags.Float64Var(&dpi, "dpi", measure.DefaultDPI, "pixels per inch at zoom 1")
	flags.StringVar(&scaleText, "scale", "", "scale notation of the drawing")
	_ = cmd.MarkFlagRequired("px")
	return cmd
}

func (a *app) newAreaCmd() *cobra.Command {
	var page, scaleText string
	var zoom, dpi float64
	cmd := &cobra.Command{
		Use:   "area x,y x,y x,y...",
		Short: "Compute the real-world area of a polygon",
		Long: `Compute the area enclosed by a polygon.  The vertices are given as
fractions of the page width and height, in the range 0 to 1.`,
		Example: `  takeoff area --page 612x792 --scale '1/8" = 1'"'"'-0"' 0.1,0.1 0.2,0.1 0.2,0.2 0.1,0.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseView(page, zoom, dpi)
			if err != nil {
				return err
			}
			s, err := a.parseScale(scaleText)
			if err != nil {
				return err
			}
			points := make([]coord.Point, len(args))
			for i, arg := range args {
				points[i], err = parsePoint(arg)
				if err != nil {
					return err
				}
			}
			res, err := measure.Area(points, v, s)
			if err != nil {
				return err
			}
			a.logger.Debug("area", "vertices", len(points), "view", v, "result", res)
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&page, "page", "612x792", "page size in pixels at zoom 1, as WIDTHxHEIGHT")
	flags.Float64Var(&zoom, "zoom", 1, "zoom factor of the view")
	flags.Float64Var(&dpi, "dpi", measure.DefaultDPI, "pixels per inch at zoom 1")
	flags.StringVar(&scaleText, "scale", "", "scale notation of the drawing")
	return cmd
}

// parseView builds a view from a WIDTHxHEIGHT page size.
func parseView(page string, zoom, dpi float64) (coord.View, error) {
	w, h, ok := strings.Cut(strings.ToLower(page), "x")
	if !ok {
		return coord.View{}, fmt.Errorf("invalid page size %q", page)
	}
	width, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return coord.View{}, fmt.Errorf("invalid page size %q: %w", page, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return coord.View{}, fmt.Errorf("invalid page size %q: %w", page, err)
	}
	v := coord.View{Width: width, Height: height, Zoom: zoom, DPI: dpi}
	if err := v.Check("takeoff"); err != nil {
		return coord.View{}, err
	}
	return v, nil
}

// parsePoint parses a normalized point given as "x,y".
func parsePoint(s string) (coord.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return coord.Point{}, fmt.Errorf("invalid point %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return coord.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return coord.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	p := coord.Point{X: x, Y: y}
	if !p.Valid() {
		return coord.Point{}, fmt.Errorf("point %q is outside the page", s)
	}
	return p, nil
}
