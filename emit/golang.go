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

package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"text/template"

	"seehuhn.de/go/bmfont"
)

// GoOptions control the generation of Go code.
type GoOptions struct {
	// Package is the name of the generated package.  The default is "font".
	Package string

	// Source, if set, is mentioned in the "Code generated" header line.
	Source string

	// Comments adds the Unicode name of every character to the glyph table.
	Comments bool
}

// Go returns Go source code for a package which holds all data of f.
// The package has the following API:
//
//	func Info() FontInfo
//	func Glyph(r rune) (GlyphInfo, bool)
//	func Kerning(left, right rune) int
//	func Page(index int) []byte
//
// An error is only returned if the options are invalid.
func Go(f *bmfont.Font, opt *GoOptions) ([]byte, error) {
	if opt == nil {
		opt = &GoOptions{}
	}
	pkg := opt.Package
	if pkg == "" {
		pkg = "font"
	}
	if !token.IsIdentifier(pkg) || pkg == "_" {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	data := &goData{
		Package:   pkg,
		Face:      strconv.Quote(f.Info.Face),
		Info:      &f.Info,
		Common:    &f.Common,
		PageCount: len(f.Pages),
		Kerning:   kerningRows(f.Kernings),
	}
	if opt.Source != "" {
		data.Source = strconv.Quote(opt.Source)
	}
	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		entry := goGlyph{ID: g.ID, Value: "{" + glyphFields(g) + "}"}
		if opt.Comments {
			entry.Comment = runeComment(g.ID)
		}
		data.Glyphs = append(data.Glyphs, entry)
	}

	buf := &bytes.Buffer{}
	err := goTmpl.Execute(buf, data)
	if err != nil {
		return nil, err
	}
	head, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.New("generated invalid Go code: " + err.Error())
	}

	out := bytes.NewBuffer(head)
	writeGoPages(out, f)
	return out.Bytes(), nil
}

// writeGoPages appends the page table.  The page data can be large, so
// this part is written directly in gofmt layout instead of being passed
// through go/format.
func writeGoPages(w *bytes.Buffer, f *bmfont.Font) {
	fmt.Fprintf(w, "\nvar pages = [%d][%d]byte{\n", len(f.Pages), f.PageSize())
	for _, p := range f.Pages {
		fmt.Fprintf(w, "\t{ // page %d: %s\n", p.ID, strconv.Quote(p.File))
		if len(p.Data) > 0 {
			w.WriteString(hexLines(p.Data, "\t\t"))
			w.WriteByte('\n')
		}
		w.WriteString("\t},\n")
	}
	w.WriteString("}\n")
}

type goData struct {
	Package   string
	Source    string
	Face      string
	Info      *bmfont.Info
	Common    *bmfont.Common
	PageCount int
	Glyphs    []goGlyph
	Kerning   []kerningRow
}

type goGlyph struct {
	ID      rune
	Value   string
	Comment string
}

var goTmpl = template.Must(template.New("go").Parse(`// Code generated by bmfont2go{{with .Source}} from {{.}}{{end}}; DO NOT EDIT.

package {{.Package}}

// FontInfo holds the global metrics of the font.
type FontInfo struct {
	Face       string
	FontSize   int // negative values give the character height
	LineHeight int
	BaseOffset int // distance from the top of a line to the baseline
	PageCount  int
	PageWidth  int
	PageHeight int
}

// GlyphInfo describes where the image of a glyph is found, and how the
// glyph is placed relative to the pen position.
type GlyphInfo struct {
	PageID   int
	PageX    int
	PageY    int
	Width    int
	Height   int
	OffsetX  int
	OffsetY  int
	AdvanceX int
}

// Info returns the global metrics of the font.
func Info() FontInfo {
	return fontInfo
}

// Glyph returns the glyph for the code point r.
// The second return value is false if the font has no glyph for r.
func Glyph(r rune) (GlyphInfo, bool) {
	g, ok := glyphs[r]
	return g, ok
}

// Kerning returns the kerning adjustment for the character pair
// (left, right).  The result is 0 if the characters need no adjustment.
func Kerning(left, right rune) int {
	if left == 0 || right == 0 {
		return 0
	}
	return kernings[left][right]
}

// Page returns the pixel data of the page with the given id, as found in
// GlyphInfo.PageID.  Every byte is the alpha value of one pixel, rows are
// stored from top to bottom.
func Page(index int) []byte {
	return pages[index][:]
}

var fontInfo = FontInfo{
	Face:       {{.Face}},
	FontSize:   {{.Info.Size}},
	LineHeight: {{.Common.LineHeight}},
	BaseOffset: {{.Common.Base}},
	PageCount:  {{.PageCount}},
	PageWidth:  {{.Common.ScaleW}},
	PageHeight: {{.Common.ScaleH}},
}

var glyphs = map[rune]GlyphInfo{
{{- range .Glyphs}}
	{{.ID}}: {{.Value}},{{with .Comment}} // {{.}}{{end}}
{{- end}}
}

var kernings = map[rune]map[rune]int{
{{- range .Kerning}}
	{{.Left}}: {
	{{- range .Pairs}}
		{{.Right}}: {{.Amount}},
	{{- end}}
	},
{{- end}}
}
`))
