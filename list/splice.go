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
// joining whole lists

// splice links elements of non-empty list in between consecutive prev and next.
func splice(list, prev, next *Node) {
	if prev.next != next || next.prev != prev {
		panic("list: splice: prev and next are not adjacent")
	}

	first := list.next
	last := list.prev

	first.prev = prev
	prev.next = first

	last.next = next
	next.prev = last
}

func mustDistinct(op string, list, head *Node) {
	list.mustLinked(op)
	head.mustLinked(op)
	if list == head {
		panic("list: " + op + ": list == head")
	}
}

// Splice joins list into head's list right after head.
//
// Order of list's elements is preserved. If list was not empty its head is
// consumed: call Init, or use SpliceInit, before reusing it.
//
// head must not be on list: the caller must make sure of that, since it is
// not checked (it would cost O(n)) and splicing a list into itself splits
// the cycle. The same applies to SpliceTail and the Init variants.
func Splice(list, head *Node) {
	mustDistinct("splice", list, head)
	if list.next == list {
		return
	}
	splice(list, head, head.next)
	list.poison()
}

// SpliceTail joins list into head's list right before head.
//
// This is good for appending one queue to another.
func SpliceTail(list, head *Node) {
	mustDistinct("splice tail", list, head)
	if list.next == list {
		return
	}
	splice(list, head.prev, head)
	list.poison()
}

// SpliceInit is like Splice but leaves list empty and usable.
func SpliceInit(list, head *Node) {
	Splice(list, head)
	list.Init()
}

// SpliceTailInit is like SpliceTail but leaves list empty and usable.
func SpliceTailInit(list, head *Node) {
	SpliceTail(list, head)
	list.Init()
}
