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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKerningLookup(t *testing.T) {
	var kt KerningTable
	kt.Set('A', 'V', -2)
	kt.Set('A', 'W', -1)
	kt.Set('T', 'o', 0)
	kt.Set(0, 'A', 5)
	kt.Set('A', 0, 5)

	cases := []struct {
		left, right rune
		expected    int
	}{
		{'A', 'V', -2},
		{'A', 'W', -1},
		{'T', 'o', 0},
		{'V', 'A', 0},
		{'A', 'A', 0},
		{'x', 'y', 0},
		{0, 'A', 0},
		{'A', 0, 0},
		{0, 0, 0},
	}
	for _, c := range cases {
		got := kt.Lookup(c.left, c.right)
		if got != c.expected {
			t.Errorf("%q %q: expected %d, got %d", c.left, c.right, c.expected, got)
		}
	}
}

func TestKerningNilTable(t *testing.T) {
	var kt KerningTable
	if kt.Lookup('A', 'V') != 0 {
		t.Error("nil table gave non-zero kerning")
	}
	if kt.Len() != 0 {
		t.Errorf("nil table has length %d", kt.Len())
	}
	if len(kt.Pairs()) != 0 {
		t.Error("nil table has pairs")
	}
}

func TestKerningOverwrite(t *testing.T) {
	var kt KerningTable
	if kt.Set('A', 'V', -2) {
		t.Error("new pair reported as duplicate")
	}
	if !kt.Set('A', 'V', -3) {
		t.Error("duplicate pair not reported")
	}
	if kt.Lookup('A', 'V') != -3 {
		t.Errorf("expected -3, got %d", kt.Lookup('A', 'V'))
	}
	if kt.Len() != 1 {
		t.Errorf("expected 1 pair, got %d", kt.Len())
	}
}

func TestKerningPairsOrder(t *testing.T) {
	var kt KerningTable
	kt.Set('b', 'z', 3)
	kt.Set('a', 'y', 2)
	kt.Set('b', 'a', 1)
	kt.Set('a', 'b', 4)

	expected := []KerningPair{
		{Left: 'a', Right: 'b', Amount: 4},
		{Left: 'a', Right: 'y', Amount: 2},
		{Left: 'b', Right: 'a', Amount: 1},
		{Left: 'b', Right: 'z', Amount: 3},
	}
	if d := cmp.Diff(expected, kt.Pairs()); d != "" {
		t.Errorf("wrong pair order (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]rune{'a', 'b'}, kt.Lefts()); d != "" {
		t.Errorf("wrong left characters (-want +got):\n%s", d)
	}
}
