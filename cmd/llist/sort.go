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

package main
// sort and merge commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"lab.nexedi.com/kirr/go123/prog"
	"lab.nexedi.com/kirr/go123/xerr"

	"lab.nexedi.com/kirr/llist/internal/fixture"
	"lab.nexedi.com/kirr/llist/internal/log"
	"lab.nexedi.com/kirr/llist/list"
)

// SortOptions control how SortValues and MergeValues order and verify lists.
type SortOptions struct {
	Desc  bool // sort in descending order
	Check bool // verify results for consistency and order
}

func (o *SortOptions) cmp() list.CmpFunc {
	if o.Desc {
		return list.Reverse(list.CmpItem)
	}
	return list.CmpItem
}

// verify checks that head is consistent and has the same items as valuev sorted per o.
func (o *SortOptions) verify(head *list.Node, valuev []int) error {
	if err := head.Check(); err != nil {
		return err
	}

	want := append([]int{}, valuev...)
	if o.Desc {
		sort.Sort(sort.Reverse(sort.IntSlice(want)))
	} else {
		sort.Ints(want)
	}

	have := head.Items()
	if !reflect.DeepEqual(have, want) {
		return fmt.Errorf("result is not sorted:\nhave: %v\nwant: %v", have, want)
	}
	return nil
}

// SortValues builds list with valuev, sorts it and prints both.
func SortValues(ctx context.Context, w io.Writer, valuev []int, o SortOptions) (err error) {
	defer log.Running(&ctx, "sort")(&err)

	head, _ := fixture.Build(valuev)
	fmt.Fprintf(w, "input:  %s\n", head)

	sorted := list.Sort(head, o.cmp())
	log.V(1).Infof(ctx, "sorted %d items", len(valuev))
	fmt.Fprintf(w, "sorted: %s\n", sorted)

	if o.Check {
		err = o.verify(sorted, valuev)
	}
	return err
}

// MergeValues sorts av and bv as two separate lists and merges them.
func MergeValues(ctx context.Context, w io.Writer, av, bv []int, o SortOptions) (err error) {
	defer log.Running(&ctx, "merge")(&err)

	a, _ := fixture.Build(av)
	b, _ := fixture.Build(bv)
	a = list.Sort(a, o.cmp())
	b = list.Sort(b, o.cmp())
	fmt.Fprintf(w, "a:      %s\n", a)
	fmt.Fprintf(w, "b:      %s\n", b)

	merged := list.Merge(o.cmp(), a, b)
	fmt.Fprintf(w, "merged: %s\n", merged)

	if o.Check {
		err = o.verify(merged, append(append([]int{}, av...), bv...))
	}
	return err
}

// parseArgs parses command arguments as one list of values.
func parseArgs(argv []string) (_ []int, err error) {
	defer xerr.Context(&err, "parse")
	return fixture.ParseInts(strings.Join(argv, ","))
}

// ----------------------------------------

const sortSummary = "sort a list of values"

func sortUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: llist sort [OPTIONS] [value ...]
Build a list with given values, sort it and print it before and after.

If no values are given, -n random values are used (see 'llist help values').

Options:

    -n      <N>     number of random values                 (default 10)
    -max    <M>     random values are taken from [-M, M]    (default 100)
    -seed   <S>     seed for random values                  (default 1)
    -desc           sort in descending order
    -check          verify the result
    -h  --help      show this help
`)
}

func sortMain(argv []string) {
	var o SortOptions
	flags := flag.FlagSet{Usage: func() { sortUsage(os.Stderr) }}
	flags.Init("", flag.ExitOnError)
	n := flags.Int("n", 10, "number of random values")
	max := flags.Int("max", 100, "random values range")
	seed := flags.Int64("seed", 1, "seed for random values")
	flags.BoolVar(&o.Desc, "desc", false, "sort in descending order")
	flags.BoolVar(&o.Check, "check", false, "verify the result")
	flags.Parse(argv[1:])

	var valuev []int
	if flags.NArg() > 0 {
		var err error
		valuev, err = parseArgs(flags.Args())
		if err != nil {
			prog.Fatal(err)
		}
	} else {
		valuev = fixture.NewRand(*seed).Ints(*n, *max)
	}

	err := SortValues(context.Background(), os.Stdout, valuev, o)
	if err != nil {
		prog.Fatal(err)
	}
}

const mergeSummary = "merge two lists of values"

func mergeUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: llist merge [OPTIONS] <values-a> <values-b>
Sort two lists of values separately and merge them into one.

Each list is given as one argument (see 'llist help values').

Options:

    -desc           sort and merge in descending order
    -check          verify the result
    -h  --help      show this help
`)
}

func mergeMain(argv []string) {
	var o SortOptions
	flags := flag.FlagSet{Usage: func() { mergeUsage(os.Stderr) }}
	flags.Init("", flag.ExitOnError)
	flags.BoolVar(&o.Desc, "desc", false, "sort and merge in descending order")
	flags.BoolVar(&o.Check, "check", false, "verify the result")
	flags.Parse(argv[1:])

	argv = flags.Args()
	if len(argv) != 2 {
		flags.Usage()
		prog.Exit(2)
	}

	av, err := fixture.ParseInts(argv[0])
	if err != nil {
		prog.Fatal(err)
	}
	bv, err := fixture.ParseInts(argv[1])
	if err != nil {
		prog.Fatal(err)
	}

	err = MergeValues(context.Background(), os.Stdout, av, bv, o)
	if err != nil {
		prog.Fatal(err)
	}
}
