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
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"seehuhn.de/go/bmfont"
)

// CPPOptions control the generation of C++ code.
type CPPOptions struct {
	// Namespace is the C++ namespace of the generated class.
	// The default is "bmf2cpp".
	Namespace string

	// Source, if set, is mentioned in the header comment.
	Source string
}

// CPP returns a C++ source file which defines the static class
// Font, holding all data of f:
//
//	static const FontInfo& get_info();
//	static const GlyphInfo* get_glyph(char32_t index);
//	static int get_kerning(char32_t left_char, char32_t right_char);
//	static const unsigned char* get_page(int page_index);
//
// An error is only returned if the options are invalid.
func CPP(f *bmfont.Font, opt *CPPOptions) ([]byte, error) {
	if opt == nil {
		opt = &CPPOptions{}
	}
	ns := opt.Namespace
	if ns == "" {
		ns = "bmf2cpp"
	}
	if !isCPPNamespace(ns) {
		return nil, fmt.Errorf("invalid C++ namespace %q", ns)
	}

	data := &cppData{
		Namespace: ns,
		Info:      &f.Info,
		Common:    &f.Common,
		PageCount: len(f.Pages),
		PageSize:  f.PageSize(),
		Kerning:   kerningRows(f.Kernings),
	}
	if opt.Source != "" {
		data.Source = strconv.Quote(opt.Source)
	}
	for i := range f.Glyphs {
		g := &f.Glyphs[i]
		data.Glyphs = append(data.Glyphs, cppGlyph{ID: g.ID, Fields: glyphFields(g)})
	}
	for _, p := range f.Pages {
		data.Pages = append(data.Pages, hexLines(p.Data, "            "))
	}

	buf := &bytes.Buffer{}
	err := cppTmpl.Execute(buf, data)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// isCPPNamespace reports whether ns is a C++ identifier, or a sequence of
// identifiers separated by "::".
func isCPPNamespace(ns string) bool {
	for _, part := range strings.Split(ns, "::") {
		if part == "" {
			return false
		}
		for i, c := range part {
			switch {
			case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			case c >= '0' && c <= '9' && i > 0:
			default:
				return false
			}
		}
	}
	return true
}

type cppData struct {
	Namespace string
	Source    string
	Info      *bmfont.Info
	Common    *bmfont.Common
	PageCount int
	PageSize  int
	Glyphs    []cppGlyph
	Kerning   []kerningRow
	Pages     []string
}

type cppGlyph struct {
	ID     rune
	Fields string
}

var cppTmpl = template.Must(template.New("cpp").Parse(`//
// Generated by bmfont2go{{with .Source}} from {{.}}{{end}}
//


#include <array>
#include <unordered_map>


namespace {{.Namespace}} {


struct FontInfo {
    int font_size;
    int line_height;
    int base_offset;
    int page_count;
    int page_width;
    int page_height;
}; // FontInfo

struct GlyphInfo {
    int page_id;
    int page_x;
    int page_y;
    int width;
    int height;
    int offset_x;
    int offset_y;
    int advance_x;
}; // GlyphInfo


class Font {
public:
    Font() = delete;

    Font(
        const Font& that) = delete;

    Font& operator=(
        const Font& that) = delete;

    ~Font() = delete;

    static const FontInfo& get_info();

    static const GlyphInfo* get_glyph(
        char32_t index);

    static int get_kerning(
        char32_t left_char,
        char32_t right_char);

    static const unsigned char* get_page(
        int page_index);
}; // Font


const FontInfo& Font::get_info()
{
    static const FontInfo font_info = {
        {{.Info.Size}}, {{.Common.LineHeight}}, {{.Common.Base}}, {{.PageCount}}, {{.Common.ScaleW}}, {{.Common.ScaleH}}
    }; // font_info

    return font_info;
}


const GlyphInfo* Font::get_glyph(
    char32_t index)
{
    using Glyphs = std::unordered_map<char32_t, GlyphInfo>;

    static const Glyphs glyphs = {
{{- range .Glyphs}}
        { {{.ID}}, { {{.Fields}} } },
{{- end}}
    }; // glyphs

    auto glyph_it = glyphs.find(index);

    if (glyph_it == glyphs.cend()) {
        return nullptr;
    }

    return &glyph_it->second;
}


int Font::get_kerning(
    char32_t left_char,
    char32_t right_char)
{
    using Kernings = std::unordered_map<
        char32_t,
        std::unordered_map<char32_t, int>>;

    static const Kernings kernings = {
{{- range .Kerning}}
        {
            {{.Left}},
            {
{{- range .Pairs}}
                { {{.Right}}, {{.Amount}} },
{{- end}}
            }
        },
{{- end}}
    }; // kernings

    if (left_char == U'\0' || right_char == U'\0') {
        return 0;
    }

    auto sub_kerning_it = kernings.find(left_char);

    if (sub_kerning_it == kernings.cend()) {
        return 0;
    }

    const auto& sub_kerning = sub_kerning_it->second;

    auto kerning_it = sub_kerning.find(right_char);

    if (kerning_it == sub_kerning.cend()) {
        return 0;
    }

    return kerning_it->second;
}


const unsigned char* Font::get_page(
    int page_index)
{
    using Pages = std::array<std::array<unsigned char, {{.PageSize}}>, {{.PageCount}}>;

    static const Pages pages = {{"{{"}}
{{- range .Pages}}
        {
{{.}}
        },
{{- end}}
    {{"}}"}}; // pages

    return pages[page_index].data();
}


} // {{.Namespace}}
`))
