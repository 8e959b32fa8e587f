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
)

func main() {
	root := &cobra.Command{
		Use:   "embroidersize",
		Short: "Resize embroidery stitch files without ruining the stitches",
	}

	root.AddCommand(newInfoCmd())
	root.AddCommand(newResizeCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newFormatsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
