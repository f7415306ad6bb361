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
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"planmark.dev/takeoff/annotation"
)

func (a *app) newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the markup tools",
		Long: `List the markup tools with their keyboard shortcuts, default colors and
the number of points needed to place a markup.  The output is aligned when
written to a terminal and tab-separated otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			aligned := isTerminal(out)
			a.logger.Debug("listing tools", "aligned", aligned)
			return writeTools(out, annotation.Tools(), aligned)
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeTools(w io.Writer, tools []annotation.Tool, aligned bool) error {
	var tw *tabwriter.Writer
	if aligned {
		tw = tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		w = tw
	}

	fmt.Fprintln(w, "TYPE\tKEY\tCOLOR\tPOINTS\tMEASURES\tLABEL")
	for _, t := range tools {
		points := strconv.Itoa(t.MinPoints)
		switch {
		case t.MaxPoints == 0:
			points += "+"
		case t.MaxPoints != t.MinPoints:
			points += "-" + strconv.Itoa(t.MaxPoints)
		}
		measures := "no"
		if t.Measures {
			measures = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", t.Type, t.Shortcut, t.Color, points, measures, t.Label)
	}

	if tw != nil {
		return tw.Flush()
	}
	return nil
}
