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
	"strings"
	"testing"
)

func TestCPP(t *testing.T) {
	code, err := CPP(testFont(), &CPPOptions{Source: "test.fnt"})
	if err != nil {
		t.Fatal(err)
	}
	src := string(code)

	expectedLines := []string{
		`// Generated by bmfont2go from "test.fnt"`,
		"namespace bmf2cpp {",
		"        -12, 14, 11, 2, 4, 4",
		"        { 66, { 1, 1, 2, 3, 4, -1, 5, 6 } },",
		"        { 65, { 0, 0, 0, 2, 3, 0, 1, 4 } },",
		"            65,",
		"                { 66, 0 },",
		"                { 86, -2 },",
		"    using Pages = std::array<std::array<unsigned char, 16>, 2>;",
		"    static const Pages pages = {{",
		"            0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A,",
		"            0xFB, 0xFC, 0xFD, 0xFE, 0xFF,",
		"    }}; // pages",
		"} // bmf2cpp",
	}
	lines := strings.Split(src, "\n")
	for _, expected := range expectedLines {
		found := false
		for _, line := range lines {
			if line == expected {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing line %q", expected)
		}
	}

	// glyphs are listed in input order, kerning rows by left character
	if strings.Index(src, "{ 66, { 1,") > strings.Index(src, "{ 65, { 0,") {
		t.Error("glyphs are not in input order")
	}
	if strings.Index(src, "            65,") > strings.Index(src, "            66,") {
		t.Error("kerning rows are not sorted")
	}
}

func TestCPPNamespace(t *testing.T) {
	f := testFont()

	code, err := CPP(f, &CPPOptions{Namespace: "gfx::fonts_2"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(code), "namespace gfx::fonts_2 {\n") {
		t.Error("namespace not used")
	}

	for _, ns := range []string{"1x", "a::", "::a", "a b", "a-b", "a:b"} {
		_, err := CPP(f, &CPPOptions{Namespace: ns})
		if err == nil {
			t.Errorf("namespace %q accepted", ns)
		}
	}
}
