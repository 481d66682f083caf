// seehuhn.de/go/bmfont - convert bitmap fonts into static Go tables
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package bmfont

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, x := range []int{1, 2, 4, 256, 1024, 1 << 20} {
		if !IsPowerOfTwo(x) {
			t.Errorf("%d not recognised as a power of two", x)
		}
	}
	for _, x := range []int{0, -1, -2, -256, 3, 5, 300, 1023, 1025} {
		if IsPowerOfTwo(x) {
			t.Errorf("%d wrongly accepted as a power of two", x)
		}
	}
}

func TestIsValidPageSize(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {4096, 4096}, {1 << 14, 1 << 14}, {MaxPagePixels, 1}} {
		if !IsValidPageSize(size[0], size[1]) {
			t.Errorf("%dx%d wrongly rejected", size[0], size[1])
		}
	}
	bad := [][2]int{
		{0, 4}, {4, 0}, {-4, -4},
		{1 << 15, 1 << 14},
		{MaxPagePixels, 2},
		{math.MaxInt, 2},
		{math.MaxInt, math.MaxInt},
	}
	for _, size := range bad {
		if IsValidPageSize(size[0], size[1]) {
			t.Errorf("%dx%d wrongly accepted", size[0], size[1])
		}
	}
}

func TestGlyphLookup(t *testing.T) {
	f := &Font{}
	f.AddGlyph(Glyph{ID: 'A', Width: 5, Height: 7, XAdvance: 6})
	f.AddGlyph(Glyph{ID: 'B', Width: 4, Height: 7, XAdvance: 5})
	replaced := f.AddGlyph(Glyph{ID: 'A', Width: 9, Height: 9, XAdvance: 10})
	if !replaced {
		t.Error("duplicate glyph not reported")
	}

	if len(f.Glyphs) != 2 {
		t.Fatalf("expected 2 glyphs, got %d", len(f.Glyphs))
	}
	if f.Glyphs[0].ID != 'A' || f.Glyphs[1].ID != 'B' {
		t.Errorf("wrong glyph order: %c %c", f.Glyphs[0].ID, f.Glyphs[1].ID)
	}

	g, ok := f.Glyph('A')
	if !ok {
		t.Fatal("glyph A not found")
	}
	expected := Glyph{ID: 'A', Width: 9, Height: 9, XAdvance: 10}
	if d := cmp.Diff(expected, *g); d != "" {
		t.Errorf("wrong glyph (-want +got):\n%s", d)
	}

	for _, r := range []rune{0, 'C', 'a', 0x10FFFF} {
		if _, ok := f.Glyph(r); ok {
			t.Errorf("unexpected glyph for %U", r)
		}
	}
}

func TestGlyphIndexRebuild(t *testing.T) {
	f := &Font{
		Glyphs: []Glyph{
			{ID: 'x', Width: 1},
			{ID: 'y', Width: 2},
		},
	}
	g, ok := f.Glyph('y')
	if !ok || g.Width != 2 {
		t.Fatalf("wrong glyph for y: %v %v", g, ok)
	}

	f.Glyphs = append(f.Glyphs, Glyph{ID: 'z', Width: 3})
	f.IndexGlyphs()
	g, ok = f.Glyph('z')
	if !ok || g.Width != 3 {
		t.Errorf("wrong glyph for z: %v %v", g, ok)
	}
}

func TestGlyphConcurrent(t *testing.T) {
	f := &Font{}
	for r := rune('a'); r <= 'z'; r++ {
		f.Glyphs = append(f.Glyphs, Glyph{ID: r, Width: int(r - 'a')})
	}
	f.Glyphs = append(f.Glyphs, Glyph{ID: 'q', Width: 100})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := rune('a'); r <= 'z'; r++ {
				g, ok := f.Glyph(r)
				expected := int(r - 'a')
				if r == 'q' {
					expected = 100
				}
				if !ok || g.Width != expected {
					t.Errorf("wrong glyph for %q: %v %t", r, g, ok)
				}
			}
		}()
	}
	wg.Wait()

	if f.glyphIndex != nil {
		t.Error("Glyph modified the font")
	}
}

func TestChannelString(t *testing.T) {
	cases := map[Channel]string{
		ChannelGlyph:        "glyph",
		ChannelOutline:      "outline",
		ChannelGlyphOutline: "glyph+outline",
		ChannelZero:         "zero",
		ChannelOne:          "one",
		Channel(7):          "Channel(7)",
	}
	for c, expected := range cases {
		if got := c.String(); got != expected {
			t.Errorf("%d: expected %q, got %q", int(c), expected, got)
		}
	}
}

func TestPageSize(t *testing.T) {
	f := &Font{Common: Common{ScaleW: 256, ScaleH: 64}}
	if f.PageSize() != 256*64 {
		t.Errorf("wrong page size %d", f.PageSize())
	}
}
