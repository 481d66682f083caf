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

// Package record splits single lines of a BMFont text metrics file into
// a keyword and a list of key/value pairs.
//
// A line looks like this:
//
//	info face="Arial" size=-32 bold=0 italic=0 charset="" unicode=1
//
// Values are separated by spaces.  Values containing spaces must be
// enclosed in double quotes; the quotes are removed, but no other escape
// processing is done.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/bmfont"
)

// Record is one parsed line of a metrics file.
type Record struct {
	Keyword string

	keys []string
	vals map[string]string
}

// Pair is a key/value pair of a Record.
type Pair struct {
	Key, Value string
}

// Parse splits line into key/value pairs.  The line must start with the
// given keyword.  An empty line gives an empty record, without checking
// the keyword.
//
// If a key occurs more than once, the last value is used.
func Parse(line, keyword string) (*Record, error) {
	rec := &Record{vals: make(map[string]string)}
	if line == "" {
		return rec, nil
	}
	if keyword == "" {
		return nil, &bmfont.FormatError{Reason: "empty keyword"}
	}

	s := &scanner{line: line, keyword: keyword, rec: rec}
	state := scanKeyword
	for state != nil {
		state = state(s)
	}
	if s.err != nil {
		return nil, s.err
	}
	return rec, nil
}

// Len returns the number of distinct keys.
func (rec *Record) Len() int {
	return len(rec.keys)
}

// Pairs returns the key/value pairs, in the order the keys first
// appeared on the line.
func (rec *Record) Pairs() []Pair {
	res := make([]Pair, len(rec.keys))
	for i, key := range rec.keys {
		res[i] = Pair{Key: key, Value: rec.vals[key]}
	}
	return res
}

// Has reports whether the record contains the given key.
func (rec *Record) Has(key string) bool {
	_, ok := rec.vals[key]
	return ok
}

// Get returns the value for the given key.
func (rec *Record) Get(key string) (string, bool) {
	val, ok := rec.vals[key]
	return val, ok
}

// String returns the value for key.  A missing key is an error.
func (rec *Record) String(key string) (string, error) {
	val, ok := rec.vals[key]
	if !ok {
		return "", rec.missing(key)
	}
	return val, nil
}

// Int returns the value for key as an integer.
func (rec *Record) Int(key string) (int, error) {
	val, ok := rec.vals[key]
	if !ok {
		return 0, rec.missing(key)
	}
	return parseInt(key, val)
}

// OptionalInt is like [Record.Int], but returns def if the key is
// not present.
func (rec *Record) OptionalInt(key string, def int) (int, error) {
	val, ok := rec.vals[key]
	if !ok {
		return def, nil
	}
	return parseInt(key, val)
}

// Ints returns the value for key as a comma-separated list of exactly n
// integers, as used for the "padding" and "spacing" fields.
func (rec *Record) Ints(key string, n int) ([]int, error) {
	val, ok := rec.vals[key]
	if !ok {
		return nil, rec.missing(key)
	}
	parts := strings.Split(val, ",")
	if len(parts) != n {
		return nil, &bmfont.ValueError{
			Key:   key,
			Value: val,
			Err:   fmt.Errorf("expected %d comma-separated integers", n),
		}
	}
	res := make([]int, n)
	for i, part := range parts {
		x, err := parseInt(key, part)
		if err != nil {
			return nil, &bmfont.ValueError{Key: key, Value: val, Err: errors.Unwrap(err)}
		}
		res[i] = x
	}
	return res, nil
}

func (rec *Record) missing(key string) error {
	kw := rec.Keyword
	if kw == "" {
		kw = "empty"
	}
	return &bmfont.FormatError{
		Reason: fmt.Sprintf("%s record: missing key %q", kw, key),
	}
}

func parseInt(key, val string) (int, error) {
	x, err := strconv.Atoi(val)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok {
			err = numErr.Err
		}
		return 0, &bmfont.ValueError{Key: key, Value: val, Err: err}
	}
	return x, nil
}

func (rec *Record) set(key, val string) {
	if _, seen := rec.vals[key]; !seen {
		rec.keys = append(rec.keys, key)
	}
	rec.vals[key] = val
}

type scanner struct {
	line    string
	keyword string
	rec     *Record

	pos, start int
	key        string
	quoted     bool

	err error
}

func (s *scanner) fail(format string, args ...any) stateFn {
	s.err = &bmfont.FormatError{Reason: fmt.Sprintf(format, args...)}
	return nil
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.line)
}

func (s *scanner) skipSpaces() {
	for !s.atEnd() && s.line[s.pos] == ' ' {
		s.pos++
	}
}

type stateFn func(*scanner) stateFn

func scanKeyword(s *scanner) stateFn {
	for !s.atEnd() && s.line[s.pos] != ' ' {
		s.pos++
	}
	word := s.line[:s.pos]
	if word != s.keyword {
		return s.fail("expected %q record, found %q", s.keyword, word)
	}
	s.rec.Keyword = word
	return scanKeyStart
}

func scanKeyStart(s *scanner) stateFn {
	s.skipSpaces()
	if s.atEnd() {
		return nil
	}
	s.start = s.pos
	return scanKey
}

func scanKey(s *scanner) stateFn {
	for !s.atEnd() && s.line[s.pos] != ' ' && s.line[s.pos] != '=' {
		s.pos++
	}
	s.key = s.line[s.start:s.pos]
	if s.key == "" {
		return s.fail("%s record: empty key", s.keyword)
	}
	return scanEquals
}

func scanEquals(s *scanner) stateFn {
	for !s.atEnd() && s.line[s.pos] != '=' {
		s.pos++
	}
	if s.atEnd() {
		return s.fail("%s record: missing \"=\" after key %q", s.keyword, s.key)
	}
	s.pos++
	return scanValueStart
}

func scanValueStart(s *scanner) stateFn {
	s.skipSpaces()
	if s.atEnd() {
		return s.fail("%s record: missing value for key %q", s.keyword, s.key)
	}
	s.start = s.pos
	s.quoted = s.line[s.pos] == '"'
	s.pos++
	return scanValue
}

func scanValue(s *scanner) stateFn {
	for !s.atEnd() {
		c := s.line[s.pos]
		if c == ' ' && !s.quoted || c == '"' && s.quoted {
			break
		}
		s.pos++
	}

	var val string
	if s.quoted {
		if s.atEnd() {
			return s.fail("%s record: unterminated quoted value for key %q", s.keyword, s.key)
		}
		s.pos++ // closing quote
		val = s.line[s.start+1 : s.pos-1]
	} else {
		val = s.line[s.start:s.pos]
	}

	s.rec.set(s.key, val)
	return scanKeyStart
}
