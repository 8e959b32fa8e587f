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

	"github.com/pelletier/go-toml/v2"

	"github.com/JimmiFriborg/EmbroiderSize"
)

// profileEntry is the TOML shape of one machine profile in a catalog
// file.
type profileEntry struct {
	Name            string  `toml:"name"`
	HoopWidthMm     float64 `toml:"hoop_width_mm"`
	HoopHeightMm    float64 `toml:"hoop_height_mm"`
	MaxStitchMm     float64 `toml:"max_stitch_mm"`
	MinStitchMm     float64 `toml:"min_stitch_mm"`
	SafeModeDefault bool    `toml:"safe_mode_default"`
}

type profileCatalog struct {
	Profiles map[string]profileEntry `toml:"profiles"`
}

// loadProfile resolves a machine profile by ID, from a TOML catalog file
// if one is given and from the built-in profiles otherwise.
func loadProfile(catalogPath, id string) (embroidery.MachineProfile, error) {
	if catalogPath != "" {
		buf, err := os.ReadFile(catalogPath)
		if err != nil {
			return embroidery.MachineProfile{}, err
		}
		var catalog profileCatalog
		if err := toml.Unmarshal(buf, &catalog); err != nil {
			return embroidery.MachineProfile{}, fmt.Errorf("%s: %w", catalogPath, err)
		}
		if entry, ok := catalog.Profiles[id]; ok {
			return embroidery.MachineProfile{
				ID:                id,
				Name:              entry.Name,
				MaxHoopWidthMm:    entry.HoopWidthMm,
				MaxHoopHeightMm:   entry.HoopHeightMm,
				MaxStitchLengthMm: entry.MaxStitchMm,
				MinStitchLengthMm: entry.MinStitchMm,
				SafeModeDefault:   entry.SafeModeDefault,
			}, nil
		}
	}
	if id == "" || id == embroidery.BrotherPP1.ID {
		return embroidery.BrotherPP1, nil
	}
	return embroidery.MachineProfile{}, fmt.Errorf("unknown machine profile %q", id)
}
