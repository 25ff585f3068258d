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

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lab.nexedi.com/kirr/go123/prog"

	"lab.nexedi.com/kirr/llist/list"
)

// Demo walks through basic list operations and prints the resulting cycle.
func Demo(w io.Writer) error {
	first := list.New(1)
	second := list.New(2)
	third := list.New(3)

	if first.Empty() {
		if _, err := fmt.Fprintln(w, "List empty!"); err != nil {
			return err
		}
	}

	second.Add(first)
	third.AddTail(first)
	second.DelInit()
	third.Replace(second)

	// print the whole cycle starting from first, first included
	var b strings.Builder
	n := first
	for {
		fmt.Fprintf(&b, "%d -> ", n.Item)
		n = n.Next()
		if n == first {
			break
		}
	}
	b.WriteString("Finished\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ----------------------------------------

const demoSummary = "walk through basic list operations"

func demoUsage(w io.Writer) {
	fmt.Fprintf(w,
`Usage: llist demo [OPTIONS]
Build a small list with add, add-tail, delete and replace and print it.

Options:

    -h  --help      show this help
`)
}

func demoMain(argv []string) {
	flags := flag.FlagSet{Usage: func() { demoUsage(os.Stderr) }}
	flags.Init("", flag.ExitOnError)
	flags.Parse(argv[1:])

	if flags.NArg() != 0 {
		flags.Usage()
		prog.Exit(2)
	}

	err := Demo(os.Stdout)
	if err != nil {
		prog.Fatal(err)
	}
}
