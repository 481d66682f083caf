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

// Package bmfont holds the in-memory representation of an AngelCode BMFont
// bitmap font, as described by a text ".fnt" metrics file together with its
// DDS page images.
//
// A Font is normally obtained by reading a metrics file using
// [seehuhn.de/go/bmfont/fnt.Read] and is then turned into static Go (or C++)
// tables using the [seehuhn.de/go/bmfont/emit] package:
//
//	f, err := fnt.ReadFile("myfont.fnt", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	code, err := emit.Go(f, &emit.GoOptions{Package: "myfont"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	... write code to "myfont.go" ...
//
// Once constructed, a Font is not modified any more.
package bmfont
