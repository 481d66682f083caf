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

// Package dds reads and writes the uncompressed, 8-bit alpha-only DirectDraw
// Surface (DDS) images used as BMFont pages.
//
// Only a single layout is supported: the four byte magic "DDS ", a 124 byte
// header whose pixel format has 8 bits per pixel and an alpha mask of 0xFF,
// followed by the pixel data in row-major order.
package dds

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"seehuhn.de/go/bmfont"
)

// HeaderSize is the size of the DDS header, not including the magic.
const HeaderSize = 124

// Magic is the signature at the start of every DDS file.
var Magic = [4]byte{'D', 'D', 'S', ' '}

// Header is the DDS_HEADER structure.
type Header struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// PixelFormat is the DDS_PIXELFORMAT structure.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// Flag values used by Encode.
const (
	flagCaps        = 0x1
	flagHeight      = 0x2
	flagWidth       = 0x4
	flagPitch       = 0x8
	flagPixelFormat = 0x1000

	pixelFormatAlpha = 0x2
	capsTexture      = 0x1000
)

// Load reads the page image name from fsys.  The image must contain at
// least width*height pixels.  The returned slice has length width*height.
func Load(fsys fs.FS, name string, width, height int) ([]byte, error) {
	fd, err := fsys.Open(filepath.ToSlash(name))
	if err != nil {
		return nil, &bmfont.IOError{Resource: name, Err: err}
	}
	defer fd.Close()

	return decodeNamed(fd, name, width, height)
}

// LoadFile is like [Load], but reads the operating system file name.
func LoadFile(name string, width, height int) ([]byte, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, &bmfont.IOError{Resource: name, Err: err}
	}
	defer fd.Close()

	return decodeNamed(fd, name, width, height)
}

// decodeNamed calls Decode and records name in the returned errors.
func decodeNamed(r io.Reader, name string, width, height int) ([]byte, error) {
	data, err := Decode(r, width, height)
	if err != nil {
		var formatErr *bmfont.FormatError
		var ioErr *bmfont.IOError
		switch {
		case errors.As(err, &formatErr):
			formatErr.Resource = name
		case errors.As(err, &ioErr):
			ioErr.Resource = name
		}
		return nil, err
	}
	return data, nil
}

// Decode reads a DDS image from r and returns the first width*height bytes
// of pixel data.
func Decode(r io.Reader, width, height int) ([]byte, error) {
	if !bmfont.IsValidPageSize(width, height) {
		return nil, &bmfont.FormatError{
			Reason: fmt.Sprintf("invalid page size %dx%d", width, height),
		}
	}

	var magic [4]byte
	_, err := io.ReadFull(r, magic[:])
	if err != nil {
		return nil, readError(err, "not a DDS file")
	}
	if magic != Magic {
		return nil, &bmfont.FormatError{Reason: "not a DDS file"}
	}

	hdr := &Header{}
	err = binary.Read(r, binary.LittleEndian, hdr)
	if err != nil {
		return nil, readError(err, "truncated DDS header")
	}
	if hdr.Size != HeaderSize {
		return nil, &bmfont.FormatError{
			Reason: fmt.Sprintf("invalid DDS header size %d", hdr.Size),
		}
	}
	pf := hdr.PixelFormat
	if pf.RGBBitCount != 8 || pf.ABitMask != 0xFF {
		return nil, &bmfont.FormatError{
			Reason: fmt.Sprintf("unsupported pixel format (%d bits per pixel, alpha mask 0x%X)",
				pf.RGBBitCount, pf.ABitMask),
		}
	}

	data := make([]byte, width*height)
	_, err = io.ReadFull(r, data)
	if err != nil {
		return nil, readError(err, "insufficient pixel data")
	}
	return data, nil
}

// readError converts a short read into a FormatError and everything else
// into an IOError.
func readError(err error, reason string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &bmfont.FormatError{Reason: reason}
	}
	return &bmfont.IOError{Err: err}
}

// Encode writes pix as an 8-bit alpha-only DDS image.
func Encode(w io.Writer, width, height int, pix []byte) error {
	if !bmfont.IsValidPageSize(width, height) || len(pix) != width*height {
		return fmt.Errorf("dds: %d bytes of pixel data for a %dx%d image",
			len(pix), width, height)
	}

	hdr := &Header{
		Size:              HeaderSize,
		Flags:             flagCaps | flagHeight | flagWidth | flagPitch | flagPixelFormat,
		Height:            uint32(height),
		Width:             uint32(width),
		PitchOrLinearSize: uint32(width),
		PixelFormat: PixelFormat{
			Size:        32,
			Flags:       pixelFormatAlpha,
			RGBBitCount: 8,
			ABitMask:    0xFF,
		},
		Caps: capsTexture,
	}

	_, err := w.Write(Magic[:])
	if err != nil {
		return err
	}
	err = binary.Write(w, binary.LittleEndian, hdr)
	if err != nil {
		return err
	}
	_, err = w.Write(pix)
	return err
}
