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

// Package face implements [font.Face] for bitmap fonts, so that a
// [bmfont.Font] can be drawn with the [font.Drawer] from golang.org/x/image.
//
// This is mostly useful to preview a font before it is converted.
package face

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/bmfont"
)

// Face is a [font.Face] which takes the glyph images from the pages of a
// bitmap font.
type Face struct {
	font  *bmfont.Font
	pages map[int]*image.Alpha
}

var _ font.Face = (*Face)(nil)

// New returns a face for f.  The pixel data of every page must be present.
func New(f *bmfont.Font) (*Face, error) {
	w, h := f.Common.ScaleW, f.Common.ScaleH
	if !bmfont.IsValidPageSize(w, h) {
		return nil, fmt.Errorf("invalid page size %dx%d", w, h)
	}
	pages := make(map[int]*image.Alpha, len(f.Pages))
	for _, p := range f.Pages {
		if len(p.Data) != w*h {
			return nil, fmt.Errorf("page %d: %d bytes of pixel data for a %dx%d page",
				p.ID, len(p.Data), w, h)
		}
		pages[p.ID] = &image.Alpha{
			Pix:    p.Data,
			Stride: w,
			Rect:   image.Rect(0, 0, w, h),
		}
	}
	return &Face{font: f, pages: pages}, nil
}

// Close implements the [font.Face] interface.
func (f *Face) Close() error {
	return nil
}

// Glyph implements the [font.Face] interface.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	g, ok := f.font.Glyph(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	page, ok := f.pages[g.Page]
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}

	x := dot.X.Round() + g.XOffset
	y := dot.Y.Round() - f.font.Common.Base + g.YOffset
	dr = image.Rect(x, y, x+g.Width, y+g.Height)
	return dr, page, image.Pt(g.X, g.Y), fixed.I(g.XAdvance), true
}

// GlyphBounds implements the [font.Face] interface.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, ok := f.font.Glyph(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	top := g.YOffset - f.font.Common.Base
	bounds = fixed.R(g.XOffset, top, g.XOffset+g.Width, top+g.Height)
	return bounds, fixed.I(g.XAdvance), true
}

// GlyphAdvance implements the [font.Face] interface.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g, ok := f.font.Glyph(r)
	if !ok {
		return 0, false
	}
	return fixed.I(g.XAdvance), true
}

// Kern implements the [font.Face] interface.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return fixed.I(f.font.Kerning(r0, r1))
}

// Metrics implements the [font.Face] interface.
//
// The x-height and cap height are taken from the glyphs for "x" and "H".
// They are zero if the font has no such glyph.
func (f *Face) Metrics() font.Metrics {
	c := &f.font.Common
	m := font.Metrics{
		Height:     fixed.I(c.LineHeight),
		Ascent:     fixed.I(c.Base),
		Descent:    fixed.I(c.LineHeight - c.Base),
		CaretSlope: image.Pt(0, 1),
	}
	if g, ok := f.font.Glyph('x'); ok {
		m.XHeight = fixed.I(c.Base - g.YOffset)
	}
	if g, ok := f.font.Glyph('H'); ok {
		m.CapHeight = fixed.I(c.Base - g.YOffset)
	}
	return m
}
