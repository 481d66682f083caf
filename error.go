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

package bmfont

import "strconv"

// IOError indicates that a resource could not be opened or read.
type IOError struct {
	Resource string
	Err      error
}

func (err *IOError) Error() string {
	return "cannot read " + strconv.Quote(err.Resource) + ": " + err.Err.Error()
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// FormatError indicates a structural problem with the metrics file or with
// a page image.
//
// Line is the 1-based line number within the metrics file, or 0 if the
// problem is not associated with a line.
type FormatError struct {
	Resource string
	Line     int
	Reason   string
}

func (err *FormatError) Error() string {
	head := ""
	if err.Resource != "" {
		head = err.Resource
		if err.Line > 0 {
			head += ":" + strconv.Itoa(err.Line)
		}
		head += ": "
	} else if err.Line > 0 {
		head = "line " + strconv.Itoa(err.Line) + ": "
	}
	return head + err.Reason
}

// SemanticError indicates that a field has a well-formed value which is not
// supported by this package.
type SemanticError struct {
	Field  string
	Reason string
}

func (err *SemanticError) Error() string {
	return err.Field + ": " + err.Reason
}

// ValueError indicates that a field could not be parsed as an integer.
type ValueError struct {
	Key   string
	Value string
	Err   error
}

func (err *ValueError) Error() string {
	msg := "invalid value " + strconv.Quote(err.Value) + " for " + strconv.Quote(err.Key)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ValueError) Unwrap() error {
	return err.Err
}
