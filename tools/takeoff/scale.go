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
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"planmark.dev/takeoff/scale"
)

var errUnrecognized = errors.New("unrecognized scale notation")

func (a *app) newScaleCmd() *cobra.Command {
	var asJSON, presets bool
	cmd := &cobra.Command{
		Use:   "scale [text]",
		Short: "Parse scale notation",
		Long: `Parse the scale notation printed on a drawing, for example
  1/4" = 1'-0"    (architectural)
  1" = 20'        (civil)
  1:100           (metric)
and show the resulting ratio.  With --presets, list the common scales.`,
		Example: `  takeoff scale '1/8" = 1'"'"'-0"'
  takeoff scale 1:50 --json`,
		Args: func(cmd *cobra.Command, args []string) error {
			if presets {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if presets {
				for _, p := range scale.Presets {
					fmt.Fprintf(out, "%-14s %s\n", p.Notation, p.Text)
				}
				return nil
			}

			text := strings.Join(args, " ")
			s, err := a.parseScale(text)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if s == nil {
					return enc.Encode(nil)
				}
				return enc.Encode(s)
			}
			if s == nil {
				fmt.Fprintln(out, "not to scale")
				return nil
			}
			fmt.Fprintf(out, "ratio     %s\n", formatRatio(s.Ratio))
			fmt.Fprintf(out, "unit      %s\n", s.Unit)
			fmt.Fprintf(out, "notation  %s\n", s.Notation)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the parsed scale as JSON")
	cmd.Flags().BoolVar(&presets, "presets", false, "list the common drawing scales")
	return cmd
}

// parseScale parses a scale given on the command line.  The empty string
// and "not to scale" notations give nil.
func (a *app) parseScale(text string) (*scale.Scale, error) {
	s := scale.Parse(text)
	if s == nil && !scale.IsNotToScale(text) {
		return nil, fmt.Errorf("%w: %q", errUnrecognized, text)
	}
	if s != nil {
		a.logger.Debug("parsed scale", "text", text, "ratio", s.Ratio, "unit", s.Unit)
	}
	return s, nil
}

// formatRatio shows a ratio both as a decimal and as 1:N.
func formatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'g', 8, 64) + " (1:" + strconv.FormatFloat(1/ratio, 'g', 8, 64) + ")"
}
