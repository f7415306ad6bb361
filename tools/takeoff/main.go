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

// Takeoff is a command line front end for the takeoff library.  It parses
// drawing scales, converts pixel measurements into real-world lengths and
// areas, and decodes stored markup payloads.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"planmark.dev/takeoff/tools/internal/buildinfo"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "takeoff",
		Short: "Drawing scales, measurements and markups for construction plans",
		Long: `Takeoff converts measurements taken on a rendered drawing sheet into
real-world lengths and areas, using the scale notation printed on the sheet.`,
		Version:      buildinfo.Version(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			a.logger.Debug("starting", "command", cmd.CommandPath(), "version", buildinfo.Short("takeoff"))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.newScaleCmd(),
		a.newDistanceCmd(),
		a.newAreaCmd(),
		a.newDecodeCmd(),
		a.newToolsCmd(),
	)

	return root
}
