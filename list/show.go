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

package list
// traversal, rendering and consistency checking

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Each calls f for every element of list headed by h in list order.
//
// f must not relink the list.
func (h *Node) Each(f func(n *Node)) {
	h.mustLinked("each")
	for n := h.next; n != h; n = n.next {
		f(n)
	}
}

// Len returns number of elements in list headed by h.
//
// It is O(n).
func (h *Node) Len() int {
	l := 0
	h.Each(func(*Node) { l++ })
	return l
}

// Items returns items of list headed by h in list order.
func (h *Node) Items() []int {
	itemv := []int{}
	h.Each(func(n *Node) { itemv = append(itemv, n.Item) })
	return itemv
}

// String renders list headed by h as "1 -> 2 -> 3".
func (h *Node) String() string {
	if h.next == nil {
		return "(consumed)"
	}
	if h.next == h {
		return "(empty)"
	}

	var b strings.Builder
	h.Each(func(n *Node) {
		if n != h.next {
			b.WriteString(" -> ")
		}
		fmt.Fprintf(&b, "%d", n.Item)
	})
	return b.String()
}

// Show writes list headed by h to w as "1 -> 2 -> Finished".
func Show(w io.Writer, h *Node) error {
	var b strings.Builder
	h.Each(func(n *Node) {
		fmt.Fprintf(&b, "%d -> ", n.Item)
	})
	b.WriteString("Finished\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Check verifies that h and all nodes in its cycle are consistently linked.
//
// For every node n on the list n.next.prev and n.prev.next must be n.
func (h *Node) Check() error {
	if h.next == nil || h.prev == nil {
		return errors.New("list: check: head is uninitialized or consumed")
	}

	i := 0
	n := h
	for {
		switch {
		case n.next == nil || n.prev == nil:
			return errors.Errorf("list: check: #%d: node is uninitialized or consumed", i)
		case n.next.prev != n:
			return errors.Errorf("list: check: #%d: .next.prev does not point back", i)
		case n.prev.next != n:
			return errors.Errorf("list: check: #%d: .prev.next does not point back", i)
		}

		n = n.next
		if n == h {
			return nil
		}
		i++
	}
}
