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

// Package emittest reads back the tables from Go code generated by
// [seehuhn.de/go/bmfont/emit.Go], for use in tests.
package emittest

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
)

// Tables holds the contents of a generated Go file.
type Tables struct {
	Package string
	Info    map[string]constant.Value

	// Glyphs maps code points to the eight GlyphInfo values.
	Glyphs     map[rune][8]int
	GlyphOrder []rune

	Kernings map[rune]map[rune]int
	Pages    [][]byte
}

// Parse type-checks the generated code in src and extracts the tables.
func Parse(src []byte) (*Tables, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "font.go", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}
	conf := types.Config{}
	_, err = conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	if err != nil {
		return nil, err
	}

	t := &Tables{
		Package:  file.Name.Name,
		Info:     make(map[string]constant.Value),
		Glyphs:   make(map[rune][8]int),
		Kernings: make(map[rune]map[rune]int),
	}
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			if len(vs.Names) != 1 || len(vs.Values) != 1 {
				continue
			}
			lit, ok := vs.Values[0].(*ast.CompositeLit)
			if !ok {
				continue
			}
			switch vs.Names[0].Name {
			case "fontInfo":
				err = t.readInfo(lit)
			case "glyphs":
				err = t.readGlyphs(lit)
			case "kernings":
				err = t.readKernings(lit)
			case "pages":
				err = t.readPages(lit)
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// Glyph mirrors the generated Glyph function.
func (t *Tables) Glyph(r rune) ([8]int, bool) {
	g, ok := t.Glyphs[r]
	return g, ok
}

// Kerning mirrors the generated Kerning function.
func (t *Tables) Kerning(left, right rune) int {
	if left == 0 || right == 0 {
		return 0
	}
	return t.Kernings[left][right]
}

func (t *Tables) readInfo(lit *ast.CompositeLit) error {
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return errors.New("fontInfo: unkeyed field")
		}
		key := kv.Key.(*ast.Ident).Name
		val, err := value(kv.Value)
		if err != nil {
			return fmt.Errorf("fontInfo.%s: %w", key, err)
		}
		t.Info[key] = val
	}
	return nil
}

func (t *Tables) readGlyphs(lit *ast.CompositeLit) error {
	for _, elt := range lit.Elts {
		kv := elt.(*ast.KeyValueExpr)
		id, err := intValue(kv.Key)
		if err != nil {
			return err
		}
		fields := kv.Value.(*ast.CompositeLit).Elts
		if len(fields) != 8 {
			return fmt.Errorf("glyph %d: %d fields", id, len(fields))
		}
		var g [8]int
		for i, field := range fields {
			g[i], err = intValue(field)
			if err != nil {
				return err
			}
		}
		t.Glyphs[rune(id)] = g
		t.GlyphOrder = append(t.GlyphOrder, rune(id))
	}
	return nil
}

func (t *Tables) readKernings(lit *ast.CompositeLit) error {
	for _, elt := range lit.Elts {
		kv := elt.(*ast.KeyValueExpr)
		left, err := intValue(kv.Key)
		if err != nil {
			return err
		}
		sub := make(map[rune]int)
		for _, inner := range kv.Value.(*ast.CompositeLit).Elts {
			ikv := inner.(*ast.KeyValueExpr)
			right, err := intValue(ikv.Key)
			if err != nil {
				return err
			}
			amount, err := intValue(ikv.Value)
			if err != nil {
				return err
			}
			sub[rune(right)] = amount
		}
		t.Kernings[rune(left)] = sub
	}
	return nil
}

func (t *Tables) readPages(lit *ast.CompositeLit) error {
	for _, elt := range lit.Elts {
		var page []byte
		for _, b := range elt.(*ast.CompositeLit).Elts {
			x, err := intValue(b)
			if err != nil {
				return err
			}
			page = append(page, byte(x))
		}
		t.Pages = append(t.Pages, page)
	}
	return nil
}

func value(expr ast.Expr) (constant.Value, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		val := constant.MakeFromLiteral(e.Value, e.Kind, 0)
		if val.Kind() == constant.Unknown {
			return nil, fmt.Errorf("invalid literal %s", e.Value)
		}
		return val, nil
	case *ast.UnaryExpr:
		x, err := value(e.X)
		if err != nil {
			return nil, err
		}
		return constant.UnaryOp(e.Op, x, 0), nil
	default:
		return nil, fmt.Errorf("unexpected expression %T", expr)
	}
}

func intValue(expr ast.Expr) (int, error) {
	val, err := value(expr)
	if err != nil {
		return 0, err
	}
	x, ok := constant.Int64Val(val)
	if !ok {
		return 0, errors.New("not an integer: " + val.String())
	}
	return int(x), nil
}

// StringInfo returns a string field of the fontInfo table.
func (t *Tables) StringInfo(key string) string {
	val, ok := t.Info[key]
	if !ok || val.Kind() != constant.String {
		return ""
	}
	return constant.StringVal(val)
}

// IntInfo returns an integer field of the fontInfo table.
func (t *Tables) IntInfo(key string) int {
	val, ok := t.Info[key]
	if !ok {
		return 0
	}
	x, _ := constant.Int64Val(val)
	return int(x)
}
