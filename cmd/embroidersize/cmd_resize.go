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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JimmiFriborg/EmbroiderSize"
	"github.com/JimmiFriborg/EmbroiderSize/format"
	"github.com/JimmiFriborg/EmbroiderSize/rescale"
)

func newResizeCmd() *cobra.Command {
	var (
		widthMm   float64
		heightMm  float64
		percent   float64
		densityMm float64
		stretch   bool
		mode      string
		force     bool
		preview   bool
		profileID string
		catalog   string
	)

	cmd := &cobra.Command{
		Use:   "resize IN OUT",
		Short: "Resize a design to a target size or scale",
		Long: `Resize a design to a target size or scale.

By default the resize is density-preserving: stitches are inserted on
upscale and thinned on downscale so that the stitch spacing stays close
to the original.  Use --mode simple to scale coordinates only.

Resizes that validation grades as critical are blocked unless --force
is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			design, err := format.Parse(buf, args[0])
			if err != nil {
				return err
			}

			profile, err := loadProfile(catalog, profileID)
			if err != nil {
				return err
			}
			design.Profile = profile

			var m rescale.Mode
			switch mode {
			case "smart":
				m = rescale.Smart
			case "simple":
				m = rescale.Simple
			default:
				return fmt.Errorf("unknown mode %q (use smart or simple)", mode)
			}

			res := rescale.Rescale(design, rescale.Params{
				ScalePercent:        percent,
				TargetWidthMm:       widthMm,
				TargetHeightMm:      heightMm,
				TargetDensityMm:     densityMm,
				PreserveAspectRatio: !stretch,
			}, rescale.Config{
				SafeMode: !force,
				Mode:     m,
			})
			if res.Err != nil {
				if errors.Is(res.Err, rescale.ErrNoSizeParam) {
					return errors.New("one of --width, --height or --scale is required")
				}
				return res.Err
			}

			out := cmd.OutOrStdout()
			for _, r := range res.Validation {
				fmt.Fprintln(out, r)
			}
			if !res.Success {
				return errors.New("resize blocked by validation (use --force to override)")
			}

			fmt.Fprintf(out, "scale:    %.1f%% of the original import\n",
				res.Design.Meta.ScaleFactor*100)
			fmt.Fprintf(out, "stitches: %d -> %d\n",
				res.Before.StitchCount, res.After.StitchCount)
			fmt.Fprintf(out, "size:     %s x %s\n",
				embroidery.FormatSize(res.Design.WidthMm()),
				embroidery.FormatSize(res.Design.HeightMm()))

			if preview {
				return nil
			}

			data, err := format.Write(res.Design, args[1])
			if err != nil {
				return err
			}
			return os.WriteFile(args[1], data, 0o644)
		},
	}

	cmd.Flags().Float64Var(&widthMm, "width", 0, "target width in mm")
	cmd.Flags().Float64Var(&heightMm, "height", 0, "target height in mm")
	cmd.Flags().Float64Var(&percent, "scale", 0, "scale factor in percent")
	cmd.Flags().Float64Var(&densityMm, "density", 0, "target stitch spacing in mm (default: preserve)")
	cmd.Flags().BoolVar(&stretch, "stretch", false, "allow non-uniform scaling when both --width and --height are given")
	cmd.Flags().StringVar(&mode, "mode", "smart", "resampling mode: smart or simple")
	cmd.Flags().BoolVar(&force, "force", false, "proceed even when validation fails")
	cmd.Flags().BoolVar(&preview, "preview", false, "validate and report only, write nothing")
	cmd.Flags().StringVar(&profileID, "profile", "", "machine profile ID (default: brother-pp1)")
	cmd.Flags().StringVar(&catalog, "profiles", "", "TOML machine profile catalog")

	return cmd
}
