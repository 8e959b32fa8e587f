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

package format

import (
	"errors"
	"testing"

	"seehuhn.de/go/geom/vec"

	"github.com/JimmiFriborg/EmbroiderSize"
)

func testDesign() *embroidery.Design {
	d := embroidery.NewDesign("square")
	d.Blocks = []embroidery.ColorBlock{{
		Stitches: []embroidery.Stitch{
			{Pos: vec.Vec2{X: -30, Y: -30}, Type: embroidery.Run},
			{Pos: vec.Vec2{X: 30, Y: -30}, Type: embroidery.Run},
			{Pos: vec.Vec2{X: 30, Y: 30}, Type: embroidery.Run},
			{Pos: vec.Vec2{X: -30, Y: 30}, Type: embroidery.Run},
		},
	}}
	d.Threads = []embroidery.Thread{{Color: "#1a0a94"}}
	return d
}

func TestByExtension(t *testing.T) {
	cases := []struct {
		fileName string
		wantNil  bool
	}{
		{"flower.dst", false},
		{"flower.DST", false},
		{"flower.pes", false},
		{"dir.dst/flower.txt", true},
		{"flower", true},
	}
	for _, c := range cases {
		got := ByExtension(c.fileName)
		if (got == nil) != c.wantNil {
			t.Errorf("ByExtension(%q) = %v", c.fileName, got)
		}
	}
}

func TestDetect(t *testing.T) {
	design := testDesign()
	for _, ext := range []string{".dst", ".pes"} {
		buf, err := Write(design, "square"+ext)
		if err != nil {
			t.Fatal(err)
		}
		c := Detect(buf)
		if c == nil {
			t.Fatalf("%s data not detected", ext)
		}
		if c.Extensions()[0] != ext {
			t.Errorf("%s data detected as %v", ext, c.Extensions())
		}
	}
	if Detect([]byte("neither format")) != nil {
		t.Error("garbage detected as a known format")
	}
}

func TestParseHonorsMislabelledContent(t *testing.T) {
	// PES bytes under a .dst name still parse, via sniffing
	buf, err := Write(testDesign(), "square.pes")
	if err != nil {
		t.Fatal(err)
	}
	design, err := Parse(buf, "square.dst")
	if err != nil {
		t.Fatal(err)
	}
	if design.OriginalFormat != "PES" {
		t.Errorf("got format %q, want PES", design.OriginalFormat)
	}
}

func TestConvertBetweenFormats(t *testing.T) {
	buf, err := Write(testDesign(), "square.dst")
	if err != nil {
		t.Fatal(err)
	}
	design, err := Parse(buf, "square.dst")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Write(design, "square.pes")
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(out, "square.pes")
	if err != nil {
		t.Fatal(err)
	}
	if back.StitchCount() != design.StitchCount() {
		t.Errorf("stitch count changed: %d -> %d",
			design.StitchCount(), back.StitchCount())
	}
}

func TestUnknownExtension(t *testing.T) {
	// writing falls back to PES
	buf, err := Write(testDesign(), "square.exp")
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if c := Detect(buf); c == nil || c.Extensions()[0] != ".pes" {
		t.Errorf("fallback output not PES")
	}
	// parsing has no fallback
	_, err = Parse([]byte("not a stitch file"), "square.exp")
	if !errors.Is(err, embroidery.ErrUnsupportedFormat) {
		t.Errorf("Parse: got %v", err)
	}
}
