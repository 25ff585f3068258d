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

// Package xtesting provides infrastructure for testing lists.
package xtesting

import (
	"reflect"
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"lab.nexedi.com/kirr/llist/list"
)

// Checker wraps testing.TB with assertions that fail the test immediately.
type Checker struct {
	T testing.TB
}

// Ok1 asserts v is true.
func (c *Checker) Ok1(v bool) {
	c.T.Helper()
	if !v {
		c.T.Fatal("!ok")
	}
}

// AssertEq asserts a and b are deeply equal, reporting difference if not.
func (c *Checker) AssertEq(a, b interface{}) {
	c.T.Helper()
	if !reflect.DeepEqual(a, b) {
		c.T.Fatal("!eq:\n", pretty.Compare(a, b))
	}
}

// AssertList asserts list headed by head is consistently linked and has
// items itemv in order, both walking forward and backward.
func (c *Checker) AssertList(head *list.Node, itemv ...int) {
	c.T.Helper()
	if err := head.Check(); err != nil {
		c.T.Fatal(err)
	}

	if itemv == nil {
		itemv = []int{}
	}

	fwd := head.Items()
	if !reflect.DeepEqual(fwd, itemv) {
		c.T.Fatalf("list forward:\n%s", pretty.Compare(itemv, fwd))
	}

	bwd := Backward(head)
	rev := make([]int, len(itemv))
	for i, v := range itemv {
		rev[len(itemv)-1-i] = v
	}
	if !reflect.DeepEqual(bwd, rev) {
		c.T.Fatalf("list backward:\n%s", pretty.Compare(rev, bwd))
	}

	if l := head.Len(); l != len(itemv) {
		c.T.Fatalf("list len: %d  ; want %d", l, len(itemv))
	}
}

// AssertSelfLoop asserts n is not linked to any other node.
func (c *Checker) AssertSelfLoop(n *list.Node) {
	c.T.Helper()
	if n.Next() != n || n.Prev() != n {
		c.T.Fatal("node is not self-looped")
	}
}

// AssertPanics asserts f panics with message msg.
func (c *Checker) AssertPanics(msg string, f func()) {
	c.T.Helper()
	defer func() {
		c.T.Helper()
		r := recover()
		if r == nil {
			c.T.Fatalf("no panic  ; want %q", msg)
		}
		if r != msg {
			c.T.Fatalf("panic %q  ; want %q", r, msg)
		}
	}()
	f()
}

// Backward returns items of list headed by head walking from its tail.
func Backward(head *list.Node) []int {
	itemv := []int{}
	for n := head.Prev(); n != head; n = n.Prev() {
		itemv = append(itemv, n.Item)
	}
	return itemv
}
