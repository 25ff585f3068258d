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

// Package list provides intrusive circular doubly-linked lists.
//
// Go standard library has container/list package which already provides
// double-linked lists. However in that implementation list itself is kept
// separate from data structures representing elements. This package provides
// the kernel-style alternative: every Node carries its own .next and .prev
// links, and a list is just a cycle of nodes. Any node can be used as a list
// head (sentinel); the list it heads is formed by all other nodes in its cycle.
// A sentinel's Item is not used.
//
// Besides basic linkage the package provides O(1) splicing of whole lists,
// stable merging of sorted lists and a bottom-up merge sort, all of which
// work by relinking nodes and never allocate storage per element.
//
// Misuse - operating on an uninitialized or consumed node, or inserting a node
// that is still linked somewhere else - panics instead of silently corrupting
// lists. Lists are not safe for concurrent use.
package list

// Node is an element in an intrusive circular doubly-linked list.
//
// Zero Node value is NOT valid - create nodes with New, or call Init before
// using a node.
type Node struct {
	next, prev *Node

	Item int // sort key; unused for a sentinel
}

// New returns new node holding item and linked to itself.
func New(item int) *Node {
	n := &Node{Item: item}
	n.Init()
	return n
}

// Next returns node that follows n in its list.
func (n *Node) Next() *Node { return n.next }

// Prev returns node that precedes n in its list.
func (n *Node) Prev() *Node { return n.prev }

// Init initializes n making it point to itself via .next and .prev .
//
// If n is a list head, the result is an empty list. Init is the only
// operation permitted on a node consumed by Splice, Merge, Sort or Replace.
func (n *Node) Init() {
	n.next = n
	n.prev = n
}

// Empty tells whether list headed by h has no elements.
func (h *Node) Empty() bool {
	h.mustLinked("empty")
	return h.next == h
}

// detached tells whether n is not part of any list with other nodes.
func (n *Node) detached() bool {
	return n.next == nil || n.next == n
}

// mustLinked verifies n was initialized and not consumed.
func (n *Node) mustLinked(op string) {
	if n.next == nil || n.prev == nil {
		panic("list: " + op + ": use of uninitialized or consumed node")
	}
}

// mustDetached verifies n can be inserted into a list.
func (n *Node) mustDetached(op string) {
	if !n.detached() {
		panic("list: " + op + ": node is already on a list")
	}
}

// poison marks n as consumed so that further use, except Init, panics.
func (n *Node) poison() {
	n.next = nil
	n.prev = nil
}

// insertBetween links n in between two known consecutive entries prev and next.
func insertBetween(n, prev, next *Node) {
	if prev.next != next || next.prev != prev {
		panic("list: insert: prev and next are not adjacent")
	}

	next.prev = n
	n.next = next
	n.prev = prev
	prev.next = n
}

// Add inserts n right after head.
//
// This is good for implementing stacks.
func (n *Node) Add(head *Node) {
	head.mustLinked("add")
	n.mustDetached("add")
	insertBetween(n, head, head.next)
}

// AddTail inserts n right before head.
//
// This is good for implementing queues.
func (n *Node) AddTail(head *Node) {
	head.mustLinked("add tail")
	n.mustDetached("add tail")
	insertBetween(n, head.prev, head)
}

// unlink makes n's neighbours point to each other.
//
// n's own links are left as is.
func (n *Node) unlink() {
	n.next.prev = n.prev
	n.prev.next = n.next
}

// DelInit deletes n from its list and reinitializes it.
//
// It is a no-op for a node that is not on any list.
func (n *Node) DelInit() {
	n.mustLinked("delete")
	n.unlink()
	n.Init()
}

// Replace puts new at old's place in old's list.
//
// new must not be on a list. After Replace old is consumed; call Init, or use
// ReplaceInit, to reuse it. If old was not on a list, new ends up not on a
// list either.
func (old *Node) Replace(new *Node) {
	old.mustLinked("replace")
	new.mustDetached("replace")
	if old == new {
		panic("list: replace: old == new")
	}

	if old.next == old {
		new.Init()
	} else {
		new.next = old.next
		new.next.prev = new
		new.prev = old.prev
		new.prev.next = new
	}
	old.poison()
}

// ReplaceInit is like Replace but also reinitializes old.
func (old *Node) ReplaceInit(new *Node) {
	old.Replace(new)
	old.Init()
}

// Swap exchanges positions of a and b.
//
// a and b may be on the same list, adjacent or not, or on different lists.
func Swap(a, b *Node) {
	a.mustLinked("swap")
	b.mustLinked("swap")
	if a == b {
		return
	}

	pos := b.prev
	b.DelInit()
	a.Replace(b)

	switch pos {
	case a:
		// b followed a: a's former place is now taken by b, so a goes right after it.
		pos = b
	case b:
		// b was not on a list
		a.Init()
		return
	}
	a.Add(pos)
}

// Move deletes n from its list and adds it right after head.
func (n *Node) Move(head *Node) {
	n.mustLinked("move")
	head.mustLinked("move")
	if n == head {
		panic("list: move: node == head")
	}

	n.unlink()
	insertBetween(n, head, head.next)
}

// MoveTail deletes n from its list and adds it right before head.
func (n *Node) MoveTail(head *Node) {
	n.mustLinked("move tail")
	head.mustLinked("move tail")
	if n == head {
		panic("list: move tail: node == head")
	}

	n.unlink()
	insertBetween(n, head.prev, head)
}
