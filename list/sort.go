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
// merging and sorting

// Ordering is result of comparing two nodes.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = +1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	}
	return "?"
}

// CmpFunc compares two list elements.
//
// It must define a total order, otherwise Merge and Sort still terminate but
// their result is not sorted.
type CmpFunc func(a, b *Node) Ordering

// CmpItem orders nodes by ascending Item.
func CmpItem(a, b *Node) Ordering {
	switch {
	case a.Item < b.Item:
		return Less
	case a.Item > b.Item:
		return Greater
	default:
		return Equal
	}
}

// Reverse returns comparator that orders nodes in reverse of cmp.
func Reverse(cmp CmpFunc) CmpFunc {
	return func(a, b *Node) Ordering {
		return cmp(b, a)
	}
}

// Merge merges sorted lists a and b into one sorted list.
//
// The merge is stable: of elements comparing Equal, those from a go first.
// Heads a and b are consumed and the result is returned under new head.
//
// a and b must head two different lists: the caller must make sure b is not
// a node inside a's list. This is not checked as it would cost O(n).
func Merge(cmp CmpFunc, a, b *Node) *Node {
	a.mustLinked("merge")
	b.mustLinked("merge")
	if a == b {
		panic("list: merge: a == b")
	}

	head := New(0)
	for a.next != a && b.next != b {
		if cmp(a.next, b.next) != Greater {
			a.next.MoveTail(head)
		} else {
			b.next.MoveTail(head)
		}
	}

	// the rest of the non-exhausted side is already sorted
	if a.next != a {
		SpliceTail(a, head)
	}
	if b.next != b {
		SpliceTail(b, head)
	}

	a.poison()
	b.poison()
	return head
}

// Sort sorts list headed by head with stable bottom-up merge sort.
//
// Elements are taken one by one in list order and accumulated into pending
// sorted runs. The runs are merged following bits of the number of taken
// elements, like carries in a binary counter, so that runs being merged
// differ in size at most 2:1 and there are at most O(log n) pending runs.
//
// head is consumed and the result is returned under new head.
func Sort(head *Node, cmp CmpFunc) *Node {
	head.mustLinked("sort")

	var pending []*Node // heads of sorted runs; older runs first
	for count := uint(0); head.next != head; count++ {
		// each trailing 1 in count corresponds to a run waiting for its
		// pair; the first 0 above them tells whether two runs before those
		// are ready to be merged.
		i := len(pending) - 1
		bits := count
		for bits&1 == 1 {
			i--
			bits >>= 1
		}
		if bits != 0 {
			if traceSortMerge != nil {
				traceSortMerge(pending[i-1], pending[i], false)
			}
			pending[i-1] = Merge(cmp, pending[i-1], pending[i])
			pending = append(pending[:i], pending[i+1:]...)
		}

		run := New(0)
		head.next.MoveTail(run)
		pending = append(pending, run)
		if traceSortPending != nil {
			traceSortPending(count+1, len(pending))
		}
	}
	head.poison()

	if len(pending) == 0 {
		return New(0)
	}
	for len(pending) > 1 {
		n := len(pending)
		if traceSortMerge != nil {
			traceSortMerge(pending[n-2], pending[n-1], true)
		}
		pending[n-2] = Merge(cmp, pending[n-2], pending[n-1])
		pending = pending[:n-1]
	}
	return pending[0]
}

// tracing hooks for tests; nil in normal operation.
var (
	// traceSortPending is called after each element is taken with number of
	// elements taken so far and number of pending runs.
	traceSortPending func(taken uint, npending int)

	// traceSortMerge is called right before runs a and b are merged.
	// final tells whether the input is already exhausted.
	traceSortMerge func(a, b *Node, final bool)
)
