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

package list_test

import (
	"fmt"
	"sort"
	"testing"

	"lab.nexedi.com/kirr/llist/internal/fixture"
	"lab.nexedi.com/kirr/llist/internal/xtesting"
	. "lab.nexedi.com/kirr/llist/list"
)

func TestOrdering(t *testing.T) {
	tc := &xtesting.Checker{T: t}

	a, b := New(1), New(2)
	tc.AssertEq(CmpItem(a, b), Less)
	tc.AssertEq(CmpItem(b, a), Greater)
	tc.AssertEq(CmpItem(a, New(1)), Equal)
	tc.AssertEq(Reverse(CmpItem)(a, b), Greater)
	tc.AssertEq(fmt.Sprintf("%v %v %v", Less, Equal, Greater), "< = >")
}

func TestMerge(t *testing.T) {
	tc := &xtesting.Checker{T: t}

	testv := []struct {
		a, b []int
		want []int
	}{
		{[]int{1, 2, 3}, []int{10, 11, 12}, []int{1, 2, 3, 10, 11, 12}},
		{[]int{10, 11, 12}, []int{1, 2, 3}, []int{1, 2, 3, 10, 11, 12}},
		{nil, []int{5}, []int{5}},
		{[]int{5}, nil, []int{5}},
		{nil, nil, nil},
		{[]int{1, 3, 5, 7}, []int{2, 4, 6}, []int{1, 2, 3, 4, 5, 6, 7}},
		{[]int{-5, 0, 0, 9}, []int{0, 9, 9}, []int{-5, 0, 0, 0, 9, 9, 9}},
	}

	for _, tt := range testv {
		a, _ := fixture.Build(tt.a)
		b, _ := fixture.Build(tt.b)

		head := Merge(CmpItem, a, b)
		tc.AssertList(head, tt.want...)

		// inputs are consumed
		tc.Ok1(a.Check() != nil)
		tc.Ok1(b.Check() != nil)
	}
}

func TestMergeStable(t *testing.T) {
	tc := &xtesting.Checker{T: t}

	a, av := fixture.Build([]int{1, 4, 4, 9})
	b, bv := fixture.Build([]int{2, 4, 10})

	head := Merge(CmpItem, a, b)
	tc.AssertList(head, 1, 2, 4, 4, 4, 9, 10)

	var got []*Node
	head.Each(func(n *Node) { got = append(got, n) })
	want := []*Node{av[0], bv[0], av[1], av[2], bv[1], av[3], bv[2]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merge: #%d: wrong node (item %d)", i, got[i].Item)
		}
	}
}

func TestMergeReverse(t *testing.T) {
	tc := &xtesting.Checker{T: t}

	a, _ := fixture.Build([]int{9, 5, 1})
	b, _ := fixture.Build([]int{8, 5, 0})
	tc.AssertList(Merge(Reverse(CmpItem), a, b), 9, 8, 5, 5, 1, 0)

	c := New(0)
	tc.AssertPanics("list: merge: a == b", func() {
		Merge(CmpItem, c, c)
	})
}

func TestSort(t *testing.T) {
	tc := &xtesting.Checker{T: t}

	testv := []struct {
		in   []int
		want []int
	}{
		{[]int{10, 1, 22}, []int{1, 10, 22}},
		{nil, nil},
		{[]int{5}, []int{5}},
		{[]int{2, 1}, []int{1, 2}},
		{[]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{[]int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{[]int{3, -1, 3, 0, -1, 7, 2}, []int{-1, -1, 0, 2, 3, 3, 7}},
	}

	for _, tt := range testv {
		head, _ := fixture.Build(tt.in)
		sorted := Sort(head, CmpItem)
		tc.AssertList(sorted, tt.want...)
		tc.Ok1(head.Check() != nil)

		// sorting sorted list gives the same
		again := Sort(sorted, CmpItem)
		tc.AssertList(again, tt.want...)
	}

	head, _ := fixture.Build([]int{3, 1, 2})
	tc.AssertList(Sort(head, Reverse(CmpItem)), 3, 2, 1)
}

// sortCheck sorts valuev via list Sort and verifies the result against
// sort.Ints and for stability.
func sortCheck(t *testing.T, valuev []int) {
	t.Helper()
	tc := &xtesting.Checker{T: t}

	head, nodev := fixture.Build(valuev)
	index := make(map[*Node]int, len(nodev))
	for i, n := range nodev {
		index[n] = i
	}

	sorted := Sort(head, CmpItem)

	want := append([]int(nil), valuev...)
	sort.Ints(want)
	tc.AssertList(sorted, want...)

	// every node is there exactly once, and equal items keep input order
	seen := make(map[*Node]bool, len(nodev))
	var prev *Node
	sorted.Each(func(n *Node) {
		i, ok := index[n]
		if !ok {
			t.Fatalf("sort: foreign node %d in result", n.Item)
		}
		if seen[n] {
			t.Fatalf("sort: node #%d seen twice", i)
		}
		seen[n] = true

		if prev != nil && prev.Item == n.Item && index[prev] > i {
			t.Fatalf("sort: not stable: #%d goes after #%d (item %d)", i, index[prev], n.Item)
		}
		prev = n
	})
	tc.AssertEq(len(seen), len(nodev))
}

func TestSortRandom(t *testing.T) {
	r := fixture.NewRand(0)

	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 33, 100, 1000, 4097} {
		// small range - many equal items, full range - almost all distinct
		for _, max := range []int{3, 100, 0} {
			valuev := r.Ints(n, max)
			t.Run(fmt.Sprintf("n=%d/max=%d", n, max), func(t *testing.T) {
				sortCheck(t, valuev)
			})
		}
	}
}

func TestSortPermutations(t *testing.T) {
	r := fixture.NewRand(1)

	// every permutation of the same multiset sorts to the same sequence
	valuev := r.Ints(50, 10)
	for i := 0; i < 20; i++ {
		sortCheck(t, r.Perm(valuev))
	}
}

func BenchmarkSort(b *testing.B) {
	valuev := fixture.NewRand(0).Ints(10000, 0)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		head, _ := fixture.Build(valuev)
		b.StartTimer()

		Sort(head, CmpItem)
	}
}
