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

package fnt

import (
	"fmt"
	"io"

	"seehuhn.de/go/bmfont"
	"seehuhn.de/go/bmfont/emit"
)

// Language selects the output language of [Export].
type Language int

// These are the supported output languages.
const (
	Go Language = iota
	CPP
)

func (l Language) String() string {
	switch l {
	case Go:
		return "go"
	case CPP:
		return "cpp"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// ParseLanguage converts a language name, as returned by
// [Language.String], into a Language.
func ParseLanguage(s string) (Language, error) {
	switch s {
	case "go":
		return Go, nil
	case "cpp", "c++":
		return CPP, nil
	default:
		return 0, fmt.Errorf("unknown output language %q", s)
	}
}

// ExportOptions control the output of [Export].
type ExportOptions struct {
	Language Language
	Go       emit.GoOptions
	CPP      emit.CPPOptions
}

// Export writes f as static tables to w.  The output is generated
// completely before anything is written to w.
func Export(w io.Writer, f *bmfont.Font, opt *ExportOptions) error {
	if opt == nil {
		opt = &ExportOptions{}
	}

	var code []byte
	switch opt.Language {
	case Go:
		var err error
		code, err = emit.Go(f, &opt.Go)
		if err != nil {
			return err
		}
	case CPP:
		var err error
		code, err = emit.CPP(f, &opt.CPP)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output language %s", opt.Language)
	}

	_, err := w.Write(code)
	return err
}
