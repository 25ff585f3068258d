// Copyright (C) 2026  Nexedi SA and Contributors.
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

// Package fixture prepares lists of values for demos, benchmarks and tests.
package fixture

import (
	"math/rand"
	"strconv"
	"strings"

	"lab.nexedi.com/kirr/go123/exc"
	"lab.nexedi.com/kirr/go123/xerr"

	"lab.nexedi.com/kirr/llist/list"
)

// Rand generates reproducible random values.
type Rand struct {
	r *rand.Rand
}

// NewRand returns generator seeded with seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Ints returns n values in [-max, max].
//
// max <= 0 means full int32 range.
func (r *Rand) Ints(n, max int) []int {
	valuev := make([]int, n)
	for i := range valuev {
		if max <= 0 {
			valuev[i] = int(int32(r.r.Uint32()))
		} else {
			valuev[i] = r.r.Intn(2*max+1) - max
		}
	}
	return valuev
}

// Perm returns shuffled copy of valuev.
func (r *Rand) Perm(valuev []int) []int {
	permv := make([]int, len(valuev))
	for i, j := range r.r.Perm(len(valuev)) {
		permv[i] = valuev[j]
	}
	return permv
}

// ParseInts parses values separated by commas and/or spaces, e.g. "10, 1 22".
//
// Empty string gives no values.
func ParseInts(s string) (_ []int, err error) {
	defer xerr.Contextf(&err, "values %q", s)

	valuev := []int{}
	err = exc.Runx(func() {
		for _, tok := range strings.FieldsFunc(s, isSep) {
			valuev = append(valuev, xatoi(tok))
		}
	})
	if err != nil {
		return nil, err
	}
	return valuev, nil
}

func isSep(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n'
}

// xatoi is strconv.Atoi that raises on error.
func xatoi(tok string) int {
	v, err := strconv.Atoi(tok)
	if err != nil {
		exc.Raisef("invalid value %q", tok)
	}
	return v
}

// Build makes list with valuev items in order.
//
// It returns list head and list nodes in the same order as valuev.
func Build(valuev []int) (head *list.Node, nodev []*list.Node) {
	head = list.New(0)
	nodev = make([]*list.Node, len(valuev))
	for i, v := range valuev {
		nodev[i] = list.New(v)
		nodev[i].AddTail(head)
	}
	return head, nodev
}
