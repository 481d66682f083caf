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

import "strconv"

// Font is a bitmap font, together with the pixel data of all its pages.
type Font struct {
	Info   Info
	Common Common

	// Pages lists the pages in the order they were declared.
	Pages []Page

	// Glyphs lists the glyphs in the order they were declared.
	// Every code point occurs at most once.
	Glyphs []Glyph

	Kernings KerningTable

	glyphIndex map[rune]int
}

// Info holds the fields of the "info" record.
type Info struct {
	Face     string
	Size     int // negative values indicate a "match char height" size
	Bold     bool
	Italic   bool
	Charset  string
	Unicode  bool
	StretchH int // horizontal stretch in percent
	Smooth   bool
	AA       int
	Padding  [4]int // up, right, down, left
	Spacing  [2]int // horizontal, vertical
	Outline  int
}

// Common holds the fields of the "common" record.
type Common struct {
	LineHeight int
	Base       int // distance from the top of a line to the baseline
	ScaleW     int // page width in pixels
	ScaleH     int // page height in pixels
	Pages      int
	Packed     bool
	AlphaChnl  Channel
	RedChnl    Channel
	GreenChnl  Channel
	BlueChnl   Channel
}

// Channel describes what a colour channel of the page images contains.
type Channel int

// These are the channel contents used by BMFont.
const (
	ChannelGlyph        Channel = 0
	ChannelOutline      Channel = 1
	ChannelGlyphOutline Channel = 2
	ChannelZero         Channel = 3
	ChannelOne          Channel = 4
)

func (c Channel) String() string {
	switch c {
	case ChannelGlyph:
		return "glyph"
	case ChannelOutline:
		return "outline"
	case ChannelGlyphOutline:
		return "glyph+outline"
	case ChannelZero:
		return "zero"
	case ChannelOne:
		return "one"
	default:
		return "Channel(" + strconv.Itoa(int(c)) + ")"
	}
}

// Page is one page image of a font.
type Page struct {
	ID   int
	File string

	// Data holds one alpha value per pixel, in row-major order.
	Data []byte
}

// Glyph describes the location and metrics of one character.
type Glyph struct {
	ID       rune
	X, Y     int // top-left corner of the glyph image on the page
	Width    int
	Height   int
	XOffset  int // offset from the pen position to the glyph image
	YOffset  int // offset from the top of the line to the glyph image
	XAdvance int
	Page     int
	Channel  int // bit mask of the colour channels which hold the glyph
}

// Glyph returns the glyph for the code point r.
// The second return value is false, if the font has no glyph for r.
//
// Glyph does not modify f and can be called concurrently.  Fonts built
// with [Font.AddGlyph] or indexed with [Font.IndexGlyphs] use a map
// lookup, otherwise f.Glyphs is searched.
func (f *Font) Glyph(r rune) (*Glyph, bool) {
	if f.glyphIndex == nil {
		for i := len(f.Glyphs) - 1; i >= 0; i-- {
			if f.Glyphs[i].ID == r {
				return &f.Glyphs[i], true
			}
		}
		return nil, false
	}
	idx, ok := f.glyphIndex[r]
	if !ok {
		return nil, false
	}
	return &f.Glyphs[idx], true
}

// AddGlyph adds g to the font.  If the font already has a glyph for g.ID,
// the existing glyph is replaced and AddGlyph returns true.  The replaced
// glyph keeps its position in f.Glyphs.
func (f *Font) AddGlyph(g Glyph) bool {
	if f.glyphIndex == nil {
		f.IndexGlyphs()
	}
	if idx, ok := f.glyphIndex[g.ID]; ok {
		f.Glyphs[idx] = g
		return true
	}
	f.glyphIndex[g.ID] = len(f.Glyphs)
	f.Glyphs = append(f.Glyphs, g)
	return false
}

// IndexGlyphs rebuilds the code point index used by [Font.Glyph].
// This must be called after f.Glyphs has been modified directly.
// If a code point occurs more than once, the last occurrence is used.
func (f *Font) IndexGlyphs() {
	f.glyphIndex = make(map[rune]int, len(f.Glyphs))
	for i, g := range f.Glyphs {
		f.glyphIndex[g.ID] = i
	}
}

// Kerning returns the kerning adjustment between the characters left and
// right.  The result is 0 if no adjustment is recorded, or if one of the
// characters is the null code point.
func (f *Font) Kerning(left, right rune) int {
	return f.Kernings.Lookup(left, right)
}

// MaxPagePixels is the largest number of pixels a page may have.
const MaxPagePixels = 1 << 28

// IsValidPageSize reports whether both sides are positive and the page has
// at most MaxPagePixels pixels.
func IsValidPageSize(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxPagePixels/height
}

// PageSize returns the number of bytes of pixel data in each page.
// The result is only meaningful if [IsValidPageSize] holds for the
// page dimensions.
func (f *Font) PageSize() int {
	return f.Common.ScaleW * f.Common.ScaleH
}

// IsPowerOfTwo reports whether x is a positive power of two.
// 1 counts as a power of two.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}
