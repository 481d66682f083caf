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

// Package emit converts a [bmfont.Font] into source code which holds all
// font data in statically initialised tables.
//
// The generated code contains four tables: the global font metrics, the
// glyphs indexed by code point, the kerning adjustments indexed by pairs of
// code points, and the pixel data of all pages.  For a given font, the output
// is always the same, byte for byte.
package emit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/bmfont"
)

// BytesPerLine is the number of pixel values written on each line of the
// page tables.
const BytesPerLine = 11

const hexDigits = "0123456789ABCDEF"

// hexLines formats data as a sequence of lines, each holding up to
// BytesPerLine comma-terminated hexadecimal byte literals.
func hexLines(data []byte, indent string) string {
	var b strings.Builder
	nLines := (len(data) + BytesPerLine - 1) / BytesPerLine
	b.Grow(len(data)*6 + nLines*(len(indent)+1))
	for i, x := range data {
		col := i % BytesPerLine
		if col == 0 {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(indent)
		} else {
			b.WriteByte(' ')
		}
		b.WriteString("0x")
		b.WriteByte(hexDigits[x>>4])
		b.WriteByte(hexDigits[x&15])
		b.WriteByte(',')
	}
	return b.String()
}

// runeComment describes r for a comment in the generated code, for example
// "U+0041 'A' LATIN CAPITAL LETTER A".
func runeComment(r rune) string {
	parts := []string{fmt.Sprintf("%U", r)}
	if unicode.IsGraphic(r) {
		parts = append(parts, strconv.QuoteRune(r))
	}
	if name := runenames.Name(r); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}

// kerningRow is the kerning information for one left character.
type kerningRow struct {
	Left  rune
	Pairs []bmfont.KerningPair
}

func kerningRows(kt bmfont.KerningTable) []kerningRow {
	var rows []kerningRow
	for _, p := range kt.Pairs() {
		if len(rows) == 0 || rows[len(rows)-1].Left != p.Left {
			rows = append(rows, kerningRow{Left: p.Left})
		}
		row := &rows[len(rows)-1]
		row.Pairs = append(row.Pairs, p)
	}
	return rows
}

// glyphFields lists the table values for g, in the order used by the
// generated GlyphInfo types.
func glyphFields(g *bmfont.Glyph) string {
	vals := []int{g.Page, g.X, g.Y, g.Width, g.Height, g.XOffset, g.YOffset, g.XAdvance}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
