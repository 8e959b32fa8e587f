// EmbroiderSize - resize embroidery stitch files without ruining the stitches
// Copyright (C) 2026  Jimmi Friborg
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
	"os"

	"github.com/spf13/cobra"

	"github.com/JimmiFriborg/EmbroiderSize"
	"github.com/JimmiFriborg/EmbroiderSize/format"
	"github.com/JimmiFriborg/EmbroiderSize/validate"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show size, stitch and density information for a design",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			design, err := format.Parse(buf, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name:          %s\n", design.Name)
			fmt.Fprintf(out, "format:        %s\n", design.OriginalFormat)
			fmt.Fprintf(out, "width:         %s\n", embroidery.FormatSize(design.WidthMm()))
			fmt.Fprintf(out, "height:        %s\n", embroidery.FormatSize(design.HeightMm()))
			fmt.Fprintf(out, "stitches:      %d\n", design.StitchCount())
			fmt.Fprintf(out, "threads:       %d\n", len(design.Threads))
			fmt.Fprintf(out, "color changes: %d\n", design.ColorChanges())

			m := validate.ComputeMetrics(design)
			if m.StitchCount > 0 {
				fmt.Fprintf(out, "density:       %.3fmm average (%.3f-%.3fmm)\n",
					m.AverageDensityMm, m.MinSpacingMm, m.MaxSpacingMm)
				fmt.Fprintf(out, "coverage:      %.2f stitches/mm²\n", m.StitchesPerMm2)
			}
			return nil
		},
	}
}
