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
	"go/format"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/bmfont"
	"seehuhn.de/go/bmfont/emit/emittest"
)

func TestGoTables(t *testing.T) {
	f := testFont()
	code, err := Go(f, &GoOptions{Package: "testfont", Source: "test.fnt"})
	if err != nil {
		t.Fatal(err)
	}
	tables, err := emittest.Parse(code)
	if err != nil {
		t.Fatalf("generated code does not compile: %v\n%s", err, code)
	}

	if tables.Package != "testfont" {
		t.Errorf("wrong package %q", tables.Package)
	}
	if face := tables.StringInfo("Face"); face != f.Info.Face {
		t.Errorf("wrong face %q", face)
	}
	info := map[string]int{
		"FontSize":   -12,
		"LineHeight": 14,
		"BaseOffset": 11,
		"PageCount":  2,
		"PageWidth":  4,
		"PageHeight": 4,
	}
	for key, expected := range info {
		if got := tables.IntInfo(key); got != expected {
			t.Errorf("%s: expected %d, got %d", key, expected, got)
		}
	}

	if d := cmp.Diff([]rune{'B', 'A'}, tables.GlyphOrder); d != "" {
		t.Errorf("wrong glyph order (-want +got):\n%s", d)
	}
	g, ok := tables.Glyph('B')
	if !ok {
		t.Fatal("glyph B missing")
	}
	if d := cmp.Diff([8]int{1, 1, 2, 3, 4, -1, 5, 6}, g); d != "" {
		t.Errorf("wrong glyph B (-want +got):\n%s", d)
	}
	if _, ok := tables.Glyph('C'); ok {
		t.Error("unexpected glyph C")
	}

	for _, left := range []rune{0, 'A', 'B', 'V'} {
		for _, right := range []rune{0, 'A', 'B', 'V'} {
			expected := f.Kerning(left, right)
			if got := tables.Kerning(left, right); got != expected {
				t.Errorf("kerning %q %q: expected %d, got %d", left, right, expected, got)
			}
		}
	}
	if _, ok := tables.Kernings['A']['B']; !ok {
		t.Error("zero-valued kerning pair was dropped")
	}

	if len(tables.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(tables.Pages))
	}
	for i, p := range f.Pages {
		if d := cmp.Diff(p.Data, tables.Pages[i]); d != "" {
			t.Errorf("page %d (-want +got):\n%s", i, d)
		}
	}
}

func TestGoHeader(t *testing.T) {
	code, err := Go(testFont(), &GoOptions{Source: "fonts/test.fnt"})
	if err != nil {
		t.Fatal(err)
	}
	firstLine, _, _ := strings.Cut(string(code), "\n")
	expected := `// Code generated by bmfont2go from "fonts/test.fnt"; DO NOT EDIT.`
	if firstLine != expected {
		t.Errorf("wrong header line %q", firstLine)
	}
	if !strings.Contains(string(code), "\npackage font\n") {
		t.Error("default package name not used")
	}
}

func TestGoFormatted(t *testing.T) {
	code, err := Go(testFont(), &GoOptions{Comments: true})
	if err != nil {
		t.Fatal(err)
	}
	formatted, err := format.Source(code)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(string(formatted), string(code)); d != "" {
		t.Errorf("output is not gofmt-formatted (-gofmt +got):\n%s", d)
	}
}

func TestGoDeterministic(t *testing.T) {
	f1 := testFont()
	code1, err := Go(f1, nil)
	if err != nil {
		t.Fatal(err)
	}

	// same data, kerning pairs inserted in a different order
	f2 := testFont()
	f2.Kernings = nil
	f2.Kernings.Set('A', 'B', 0)
	f2.Kernings.Set('B', 'A', -1)
	f2.Kernings.Set('A', 'V', -2)
	for range 5 {
		code2, err := Go(f2, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(code1, code2) {
			t.Fatal("output depends on kerning insertion order")
		}
	}
}

func TestGoComments(t *testing.T) {
	f := testFont()
	code, err := Go(f, &GoOptions{Comments: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), "// U+0041 'A' LATIN CAPITAL LETTER A") {
		t.Error("missing character name comment")
	}

	code, err = Go(f, nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(code), "LATIN CAPITAL LETTER") {
		t.Error("unexpected character name comment")
	}
}

func TestGoPackageName(t *testing.T) {
	f := testFont()
	for _, name := range []string{"1abc", "func", "_", "a-b", "a b"} {
		_, err := Go(f, &GoOptions{Package: name})
		if err == nil {
			t.Errorf("package name %q accepted", name)
		}
	}
}

func TestGoPageWrap(t *testing.T) {
	f := &bmfont.Font{
		Common: bmfont.Common{ScaleW: 16, ScaleH: 16, Base: 1, Pages: 1},
		Pages:  []bmfont.Page{{ID: 0, File: "big.dds", Data: seq(256, 0)}},
	}
	code, err := Go(f, nil)
	if err != nil {
		t.Fatal(err)
	}

	var dataLines []string
	for _, line := range strings.Split(string(code), "\n") {
		if strings.HasPrefix(line, "\t\t0x") {
			dataLines = append(dataLines, line)
		}
	}
	if len(dataLines) != (256+10)/11 {
		t.Errorf("expected %d lines of pixel data, got %d", (256+10)/11, len(dataLines))
	}
	for i, line := range dataLines {
		n := strings.Count(line, "0x")
		if i < len(dataLines)-1 && n != 11 || n > 11 {
			t.Errorf("line %d has %d values", i, n)
		}
	}

	tables, err := emittest.Parse(code)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(f.Pages[0].Data, tables.Pages[0]); d != "" {
		t.Errorf("page data (-want +got):\n%s", d)
	}
}
