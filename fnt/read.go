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

// Package fnt reads BMFont text metrics files.
//
// The file must contain, in this order, one "info" record, one "common"
// record, one "page" record for each page, a "chars" record followed by the
// given number of "char" records, and optionally a "kernings" record followed
// by the given number of "kerning" records.  The page images are loaded as
// the "page" records are read.
package fnt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/bmfont"
	"seehuhn.de/go/bmfont/dds"
	"seehuhn.de/go/bmfont/record"
)

// ReadOptions control how a metrics file is read.
type ReadOptions struct {
	// Name identifies the metrics file in error messages.
	Name string

	// PageFS, if set, is used to open the page images.  Page file names
	// must then be valid [fs.FS] paths.
	PageFS fs.FS

	// PageDir is used if PageFS is nil.  Page file names are then operating
	// system paths, and relative paths are resolved against PageDir.  An
	// empty PageDir means the current working directory.
	PageDir string

	// RejectDuplicates makes repeated glyphs and repeated kerning pairs an
	// error.  By default, later entries silently replace earlier ones.
	RejectDuplicates bool

	// Logger receives debug messages.  If this is nil, messages are
	// discarded.
	Logger *slog.Logger
}

// ReadFile reads the metrics file fname.  Unless opt.PageFS or opt.PageDir
// is set, relative page file names are resolved against the directory
// containing fname.
func ReadFile(fname string, opt *ReadOptions) (*bmfont.Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, &bmfont.IOError{Resource: fname, Err: err}
	}
	defer fd.Close()

	var o ReadOptions
	if opt != nil {
		o = *opt
	}
	if o.Name == "" {
		o.Name = fname
	}
	if o.PageFS == nil && o.PageDir == "" {
		o.PageDir = filepath.Dir(fname)
	}
	return Read(fd, &o)
}

// Read reads a metrics file from r.
func Read(r io.Reader, opt *ReadOptions) (*bmfont.Font, error) {
	if opt == nil {
		opt = &ReadOptions{}
	}
	rd := &reader{
		lines: bufio.NewScanner(r),
		opt:   opt,
		log:   opt.Logger,
		font:  &bmfont.Font{},
	}
	if rd.log == nil {
		rd.log = slog.New(slog.DiscardHandler)
	}

	steps := []func() error{
		rd.readInfo,
		rd.readCommon,
		rd.readPages,
		rd.readChars,
		rd.readKernings,
	}
	for _, step := range steps {
		err := step()
		if err != nil {
			return nil, err
		}
	}
	return rd.font, nil
}

// reader holds the state of a single call to Read.
type reader struct {
	lines  *bufio.Scanner
	lineNo int
	opt    *ReadOptions
	log    *slog.Logger

	font *bmfont.Font
}

// next reads the next line and parses it as a record with the given
// keyword.  If optional is true, the end of input is not an error and
// next returns nil.
func (rd *reader) next(keyword string, optional bool) (*record.Record, error) {
	if !rd.lines.Scan() {
		if err := rd.lines.Err(); err != nil {
			return nil, &bmfont.IOError{Resource: rd.opt.Name, Err: err}
		}
		if optional {
			return nil, nil
		}
		return nil, &bmfont.FormatError{
			Resource: rd.opt.Name,
			Line:     rd.lineNo + 1,
			Reason:   fmt.Sprintf("unexpected end of input, expected %q record", keyword),
		}
	}
	rd.lineNo++

	rec, err := record.Parse(rd.lines.Text(), keyword)
	if err != nil {
		return nil, rd.locate(err)
	}
	return rec, nil
}

// locate adds the current file name and line number to err.
func (rd *reader) locate(err error) error {
	var formatErr *bmfont.FormatError
	if errors.As(err, &formatErr) {
		if formatErr.Line == 0 {
			formatErr.Resource = rd.opt.Name
			formatErr.Line = rd.lineNo
		}
		return err
	}
	if rd.opt.Name != "" {
		return fmt.Errorf("%s:%d: %w", rd.opt.Name, rd.lineNo, err)
	}
	return fmt.Errorf("line %d: %w", rd.lineNo, err)
}

// ints reads the given keys of rec as integers.
func (rd *reader) ints(rec *record.Record, keys ...string) ([]int, error) {
	res := make([]int, len(keys))
	for i, key := range keys {
		x, err := rec.Int(key)
		if err != nil {
			return nil, rd.locate(err)
		}
		res[i] = x
	}
	return res, nil
}

func (rd *reader) codePoint(rec *record.Record, key string) (rune, error) {
	x, err := rec.Int(key)
	if err != nil {
		return 0, rd.locate(err)
	}
	if x < 0 || x > math.MaxInt32 {
		val, _ := rec.Get(key)
		return 0, rd.locate(&bmfont.ValueError{
			Key:   key,
			Value: val,
			Err:   errors.New("code point out of range"),
		})
	}
	return rune(x), nil
}

func (rd *reader) semantic(field, format string, args ...any) error {
	return rd.locate(&bmfont.SemanticError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	})
}

func (rd *reader) readInfo() error {
	rec, err := rd.next("info", false)
	if err != nil {
		return err
	}

	info := &rd.font.Info
	info.Face, _ = rec.Get("face")
	info.Charset, _ = rec.Get("charset")

	vals, err := rd.ints(rec, "size", "stretchH", "outline")
	if err != nil {
		return err
	}
	info.Size, info.StretchH, info.Outline = vals[0], vals[1], vals[2]

	flags := []struct {
		key string
		val *bool
	}{
		{"bold", &info.Bold},
		{"italic", &info.Italic},
		{"unicode", &info.Unicode},
		{"smooth", &info.Smooth},
	}
	for _, flag := range flags {
		x, err := rec.OptionalInt(flag.key, 0)
		if err != nil {
			return rd.locate(err)
		}
		*flag.val = x != 0
	}
	info.AA, err = rec.OptionalInt("aa", 0)
	if err != nil {
		return rd.locate(err)
	}
	if rec.Has("padding") {
		padding, err := rec.Ints("padding", 4)
		if err != nil {
			return rd.locate(err)
		}
		copy(info.Padding[:], padding)
	}
	if rec.Has("spacing") {
		spacing, err := rec.Ints("spacing", 2)
		if err != nil {
			return rd.locate(err)
		}
		copy(info.Spacing[:], spacing)
	}

	if info.Size >= 0 {
		return rd.semantic("info.size", "font size must be negative, got %d", info.Size)
	}
	if info.StretchH != 100 {
		return rd.semantic("info.stretchH", "horizontal stretch must be 100%%, got %d%%", info.StretchH)
	}
	if info.Outline != 0 {
		return rd.semantic("info.outline", "outlines are not supported, got outline=%d", info.Outline)
	}

	rd.log.Debug("info", "face", info.Face, "size", info.Size)
	return nil
}

// channelConfigs lists the supported values of the alpha, red, green and
// blue channel fields.
var channelConfigs = [][4]bmfont.Channel{
	{bmfont.ChannelGlyph, bmfont.ChannelZero, bmfont.ChannelZero, bmfont.ChannelZero},
	{bmfont.ChannelGlyph, bmfont.ChannelOne, bmfont.ChannelOne, bmfont.ChannelOne},
}

// IsSupportedChannels reports whether the given channel configuration can
// be converted.  Pages must have the glyph data in the alpha channel, and
// the colour channels must all be constant zero or all be constant one.
func IsSupportedChannels(alpha, red, green, blue bmfont.Channel) bool {
	cfg := [4]bmfont.Channel{alpha, red, green, blue}
	for _, ok := range channelConfigs {
		if cfg == ok {
			return true
		}
	}
	return false
}

func (rd *reader) readCommon() error {
	rec, err := rd.next("common", false)
	if err != nil {
		return err
	}

	vals, err := rd.ints(rec,
		"lineHeight", "base", "scaleW", "scaleH", "pages", "packed",
		"alphaChnl", "redChnl", "greenChnl", "blueChnl")
	if err != nil {
		return err
	}
	c := &rd.font.Common
	c.LineHeight = vals[0]
	c.Base = vals[1]
	c.ScaleW = vals[2]
	c.ScaleH = vals[3]
	c.Pages = vals[4]
	c.Packed = vals[5] != 0
	c.AlphaChnl = bmfont.Channel(vals[6])
	c.RedChnl = bmfont.Channel(vals[7])
	c.GreenChnl = bmfont.Channel(vals[8])
	c.BlueChnl = bmfont.Channel(vals[9])

	if c.Base <= 0 {
		return rd.semantic("common.base", "baseline offset must be positive, got %d", c.Base)
	}
	if !bmfont.IsPowerOfTwo(c.ScaleW) {
		return rd.semantic("common.scaleW", "page width %d is not a power of two", c.ScaleW)
	}
	if !bmfont.IsPowerOfTwo(c.ScaleH) {
		return rd.semantic("common.scaleH", "page height %d is not a power of two", c.ScaleH)
	}
	if !bmfont.IsValidPageSize(c.ScaleW, c.ScaleH) {
		field := "common.scaleH"
		if c.ScaleW > bmfont.MaxPagePixels {
			field = "common.scaleW"
		}
		return rd.semantic(field, "page size %dx%d exceeds %d pixels",
			c.ScaleW, c.ScaleH, bmfont.MaxPagePixels)
	}
	if c.Pages <= 0 {
		return rd.semantic("common.pages", "page count must be positive, got %d", c.Pages)
	}
	if c.Packed {
		return rd.semantic("common.packed", "packed pages are not supported")
	}
	if !IsSupportedChannels(c.AlphaChnl, c.RedChnl, c.GreenChnl, c.BlueChnl) {
		return rd.semantic("common",
			"unsupported channel configuration alphaChnl=%d redChnl=%d greenChnl=%d blueChnl=%d",
			vals[6], vals[7], vals[8], vals[9])
	}

	rd.log.Debug("common",
		"lineHeight", c.LineHeight, "base", c.Base,
		"pageSize", fmt.Sprintf("%dx%d", c.ScaleW, c.ScaleH), "pages", c.Pages)
	return nil
}

func (rd *reader) readPages() error {
	c := &rd.font.Common
	rd.font.Pages = make([]bmfont.Page, 0, min(c.Pages, 64))
	for i := range c.Pages {
		rec, err := rd.next("page", false)
		if err != nil {
			return err
		}
		vals, err := rd.ints(rec, "id")
		if err != nil {
			return err
		}
		if vals[0] != i {
			return rd.semantic("page.id", "page %d has id %d", i, vals[0])
		}
		file, err := rec.String("file")
		if err != nil {
			return rd.locate(err)
		}

		data, err := rd.loadPage(file)
		if err != nil {
			return err
		}
		rd.log.Debug("page loaded", "id", vals[0], "file", file)

		rd.font.Pages = append(rd.font.Pages, bmfont.Page{
			ID:   vals[0],
			File: file,
			Data: data,
		})
	}
	return nil
}

// loadPage reads the page image with the given file name.
func (rd *reader) loadPage(file string) ([]byte, error) {
	c := &rd.font.Common
	if rd.opt.PageFS != nil {
		return dds.Load(rd.opt.PageFS, file, c.ScaleW, c.ScaleH)
	}
	name := file
	if !filepath.IsAbs(name) {
		name = filepath.Join(rd.opt.PageDir, name)
	}
	return dds.LoadFile(name, c.ScaleW, c.ScaleH)
}

func (rd *reader) readChars() error {
	rec, err := rd.next("chars", false)
	if err != nil {
		return err
	}
	vals, err := rd.ints(rec, "count")
	if err != nil {
		return err
	}
	count := vals[0]
	if count < 0 {
		return rd.semantic("chars.count", "glyph count must not be negative, got %d", count)
	}

	f := rd.font
	f.Glyphs = make([]bmfont.Glyph, 0, min(count, 4096))
	f.IndexGlyphs()
	for range count {
		rec, err := rd.next("char", false)
		if err != nil {
			return err
		}
		id, err := rd.codePoint(rec, "id")
		if err != nil {
			return err
		}
		vals, err := rd.ints(rec,
			"x", "y", "width", "height", "xoffset", "yoffset", "xadvance", "page", "chnl")
		if err != nil {
			return err
		}
		g := bmfont.Glyph{
			ID:       id,
			X:        vals[0],
			Y:        vals[1],
			Width:    vals[2],
			Height:   vals[3],
			XOffset:  vals[4],
			YOffset:  vals[5],
			XAdvance: vals[6],
			Page:     vals[7],
			Channel:  vals[8],
		}
		if g.Page < 0 || g.Page >= len(f.Pages) {
			return rd.semantic("char.page", "glyph %d refers to undeclared page %d", id, g.Page)
		}

		if _, dup := f.Glyph(id); dup {
			if rd.opt.RejectDuplicates {
				return rd.semantic("char.id", "duplicate glyph %d", id)
			}
			rd.log.Debug("duplicate glyph replaced", "id", id, "line", rd.lineNo)
		}
		f.AddGlyph(g)
	}
	rd.log.Debug("glyphs", "count", len(f.Glyphs))
	return nil
}

func (rd *reader) readKernings() error {
	rec, err := rd.next("kernings", true)
	if err != nil {
		return err
	}
	if rec == nil {
		rd.log.Debug("no kerning information")
		return nil
	}
	vals, err := rd.ints(rec, "count")
	if err != nil {
		return err
	}
	count := vals[0]
	if count < 0 {
		return rd.semantic("kernings.count", "kerning pair count must not be negative, got %d", count)
	}

	kt := &rd.font.Kernings
	for range count {
		rec, err := rd.next("kerning", false)
		if err != nil {
			return err
		}
		first, err := rd.codePoint(rec, "first")
		if err != nil {
			return err
		}
		second, err := rd.codePoint(rec, "second")
		if err != nil {
			return err
		}
		vals, err := rd.ints(rec, "amount")
		if err != nil {
			return err
		}

		if kt.Set(first, second, vals[0]) {
			if rd.opt.RejectDuplicates {
				return rd.semantic("kerning", "duplicate kerning pair %d %d", first, second)
			}
			rd.log.Debug("duplicate kerning pair replaced", "first", first, "second", second)
		}
	}
	rd.log.Debug("kerning", "pairs", kt.Len())
	return nil
}
