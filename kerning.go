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

import "slices"

// KerningTable maps pairs of code points to kerning adjustments.
// The outer map is indexed by the left character of a pair, the inner maps
// by the right character.
//
// Entries with a value of zero are allowed and are distinct from missing
// entries, but both give an adjustment of zero when looked up.
type KerningTable map[rune]map[rune]int

// KerningPair is one entry of a [KerningTable].
type KerningPair struct {
	Left, Right rune
	Amount      int
}

// Set records the adjustment for the pair (left, right), replacing any
// previous value.  Set reports whether the pair was already present.
func (kt *KerningTable) Set(left, right rune, amount int) bool {
	if *kt == nil {
		*kt = make(KerningTable)
	}
	sub, ok := (*kt)[left]
	if !ok {
		sub = make(map[rune]int)
		(*kt)[left] = sub
	}
	_, seen := sub[right]
	sub[right] = amount
	return seen
}

// Lookup returns the adjustment for the pair (left, right).
// The result is 0 if the pair is not in the table, or if one of the two
// characters is the null code point.
func (kt KerningTable) Lookup(left, right rune) int {
	if left == 0 || right == 0 {
		return 0
	}
	return kt[left][right]
}

// Len returns the number of pairs in the table.
func (kt KerningTable) Len() int {
	n := 0
	for _, sub := range kt {
		n += len(sub)
	}
	return n
}

// Lefts returns the left characters of all pairs, in increasing order.
func (kt KerningTable) Lefts() []rune {
	res := make([]rune, 0, len(kt))
	for left, sub := range kt {
		if len(sub) > 0 {
			res = append(res, left)
		}
	}
	slices.Sort(res)
	return res
}

// Pairs returns all entries of the table, ordered by the left character
// and then by the right character.
func (kt KerningTable) Pairs() []KerningPair {
	res := make([]KerningPair, 0, kt.Len())
	for _, left := range kt.Lefts() {
		sub := kt[left]
		rights := make([]rune, 0, len(sub))
		for right := range sub {
			rights = append(rights, right)
		}
		slices.Sort(rights)
		for _, right := range rights {
			res = append(res, KerningPair{Left: left, Right: right, Amount: sub[right]})
		}
	}
	return res
}
